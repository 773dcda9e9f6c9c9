package desktop

import (
	"bytes"
	"io"
)

// memFS is an in-memory FileSystem for generator tests.
type memFS struct {
	existing  map[string]bool
	files     map[string][]byte
	createErr error
	writeErr  error
	closeErr  error
	creates   int
}

func newMemFS(existing ...string) *memFS {
	m := &memFS{
		existing: make(map[string]bool),
		files:    make(map[string][]byte),
	}
	for _, p := range existing {
		m.existing[p] = true
	}
	return m
}

func (m *memFS) Exists(path string) bool {
	if m.existing[path] {
		return true
	}
	_, ok := m.files[path]
	return ok
}

func (m *memFS) Create(path string) (io.WriteCloser, error) {
	m.creates++
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.files[path] = nil
	return &memFile{fs: m, path: path}, nil
}

type memFile struct {
	fs   *memFS
	path string
	buf  bytes.Buffer
}

func (f *memFile) Write(p []byte) (int, error) {
	if f.fs.writeErr != nil {
		return 0, f.fs.writeErr
	}
	n, err := f.buf.Write(p)
	f.fs.files[f.path] = append([]byte(nil), f.buf.Bytes()...)
	return n, err
}

func (f *memFile) Close() error {
	return f.fs.closeErr
}
