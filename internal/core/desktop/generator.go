package desktop

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// FileSystem is the filesystem access the generator depends on.
type FileSystem interface {
	// Exists reports whether path names an existing entry.
	Exists(path string) bool
	// Create creates or truncates path for writing.
	Create(path string) (io.WriteCloser, error)
}

// OSFileSystem implements FileSystem on top of the os package.
type OSFileSystem struct{}

// Exists reports whether path can be stat'ed.
func (OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Create creates or truncates the file at path.
func (OSFileSystem) Create(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// Generator validates launcher fields and writes them as a descriptor file.
type Generator struct {
	fs FileSystem
}

// New creates a Generator backed by the local filesystem.
func New() *Generator {
	return NewGenerator(OSFileSystem{})
}

// NewGenerator creates a Generator using the given filesystem.
func NewGenerator(fsys FileSystem) *Generator {
	return &Generator{fs: fsys}
}

// Validate checks fields in a fixed order: executable, icon, name.
// The first failing check is returned.
func (g *Generator) Validate(fields Fields) error {
	if !g.fs.Exists(fields.Exec) {
		return executableNotFound(fields.Exec)
	}
	if icon, ok := fields.Icon.Get(); ok && !g.fs.Exists(icon) {
		return iconNotFound(icon)
	}
	if fields.Name == "" {
		return nameEmpty()
	}
	return nil
}

// Generate validates fields and writes the rendered entry to destination,
// replacing any existing file. Nothing is written when validation fails.
func (g *Generator) Generate(fields Fields, destination string) error {
	if err := g.Validate(fields); err != nil {
		return err
	}

	data := Render(fields)

	f, err := g.fs.Create(destination)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return permissionDenied(destination, err)
		}
		return writeFailed(destination, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return writeFailed(destination, err)
	}
	if err := f.Close(); err != nil {
		return writeFailed(destination, err)
	}

	return nil
}
