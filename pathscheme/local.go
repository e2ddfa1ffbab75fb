package pathscheme

import (
	"context"
	"io"
	"os"
)

// FSHandler resolves paths on the local file system.
type FSHandler struct{}

// Exists reports whether path points to an existing file.
func (FSHandler) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Open opens the file at path for reading.
func (FSHandler) Open(_ context.Context, path string) (io.ReadCloser, error) {
	return os.Open(path)
}
