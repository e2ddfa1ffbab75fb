package auxdata

import (
	"context"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/quantpool/pathscheme"
)

// layeredReadCloser closes a decompression layer and the underlying
// stream in order, keeping the first error.
type layeredReadCloser struct {
	io.Reader
	closers []func() error
}

func (l *layeredReadCloser) Close() error {
	var firstErr error
	for _, c := range l.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// open resolves p through the registry and transparently decompresses
// .gz, .zst and .lz4 inputs.
func open(ctx context.Context, registry *pathscheme.Registry, p pathscheme.Path) (io.ReadCloser, error) {
	rc, err := registry.Open(ctx, p)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasSuffix(p.Path, ".gz"):
		zr, err := gzip.NewReader(rc)
		if err != nil {
			rc.Close()
			return nil, err
		}
		return &layeredReadCloser{
			Reader:  zr,
			closers: []func() error{zr.Close, rc.Close},
		}, nil

	case strings.HasSuffix(p.Path, ".zst"):
		zr, err := zstd.NewReader(rc)
		if err != nil {
			rc.Close()
			return nil, err
		}
		return &layeredReadCloser{
			Reader: zr,
			closers: []func() error{
				func() error { zr.Close(); return nil },
				rc.Close,
			},
		}, nil

	case strings.HasSuffix(p.Path, ".lz4"):
		return &layeredReadCloser{
			Reader:  lz4.NewReader(rc),
			closers: []func() error{rc.Close},
		}, nil

	default:
		return rc, nil
	}
}
