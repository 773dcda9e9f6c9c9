package desktop

import (
	"errors"
	"fmt"
)

// Generation failure kinds. A *GenerationError matches its kind with errors.Is.
var (
	ErrExecutableNotFound = errors.New("executable not found")
	ErrIconNotFound       = errors.New("icon not found")
	ErrNameEmpty          = errors.New("name must not be empty")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrWriteFailed        = errors.New("write failed")
)

// GenerationError describes why a launcher file could not be generated.
type GenerationError struct {
	Kind error
	Path string
	Err  error
}

func (e *GenerationError) Error() string {
	switch e.Kind {
	case ErrExecutableNotFound:
		return fmt.Sprintf("executable not found: %s", e.Path)
	case ErrIconNotFound:
		return fmt.Sprintf("icon not found: %s", e.Path)
	case ErrNameEmpty:
		return ErrNameEmpty.Error()
	case ErrPermissionDenied:
		return fmt.Sprintf("permission denied writing %s: try again with elevated privileges (e.g. sudo)", e.Path)
	default:
		if e.Err == nil {
			return fmt.Sprintf("failed to write %s", e.Path)
		}
		return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
	}
}

// Unwrap exposes both the failure kind and the underlying cause.
func (e *GenerationError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func executableNotFound(path string) error {
	return &GenerationError{Kind: ErrExecutableNotFound, Path: path}
}

func iconNotFound(path string) error {
	return &GenerationError{Kind: ErrIconNotFound, Path: path}
}

func nameEmpty() error {
	return &GenerationError{Kind: ErrNameEmpty}
}

func permissionDenied(path string, cause error) error {
	return &GenerationError{Kind: ErrPermissionDenied, Path: path, Err: cause}
}

func writeFailed(path string, cause error) error {
	return &GenerationError{Kind: ErrWriteFailed, Path: path, Err: cause}
}
