package quantpool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoaderRegistry_QuantizedScheme(t *testing.T) {
	ctx := context.Background()
	registry := NewLoaderRegistry()

	loader, err := registry.New(ctx, "quantized", newBasicPool())
	require.NoError(t, err)

	visitor := &recordingVisitor{}
	require.NoError(t, loader.Do(ctx, visitor))
	require.True(t, visitor.finished)
}

func TestLoaderRegistry_UnknownScheme(t *testing.T) {
	registry := NewLoaderRegistry()

	_, err := registry.New(context.Background(), "columnar", newBasicPool())
	require.Error(t, err)
	require.Contains(t, err.Error(), "columnar")
}

func TestLoaderRegistry_CustomConstructor(t *testing.T) {
	ctx := context.Background()
	registry := NewLoaderRegistry()

	var captured *Pool
	registry.Register("recording", func(ctx context.Context, pool *Pool, optFns ...Option) (DatasetLoader, error) {
		captured = pool
		return NewLoader(ctx, pool, optFns...)
	})

	pool := newBasicPool()
	_, err := registry.New(ctx, "recording", pool)
	require.NoError(t, err)
	require.Same(t, pool, captured)
}
