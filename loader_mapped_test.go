package quantpool

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/quantpool/internal/mmap"
)

// newMappedPool writes a two-chunk feature column to disk, maps it and
// builds a pool whose chunk payloads window into the mapping.
func newMappedPool(t *testing.T) (*Pool, int64) {
	t.Helper()

	pageSize := int64(os.Getpagesize())

	data := make([]byte, 2*pageSize)
	for i := range data {
		data[i] = byte(i % 251)
	}

	path := filepath.Join(t.TempDir(), "pool.bin")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	m, err := mmap.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })

	backing := m.Bytes()
	pool := &Pool{
		DocumentCount: uint64(2 * pageSize),
		ColumnIndexToLocalIndex: map[uint32]uint32{
			0: 0,
		},
		Chunks: [][]Chunk{
			{
				{Quants: backing[:pageSize], Offset: 0, DocumentOffset: 0, BitsPerDocument: 8},
				{Quants: backing[pageSize:], Offset: pageSize, DocumentOffset: uint32(pageSize), BitsPerDocument: 8},
			},
		},
		ColumnTypes:                []ColumnType{ColumnQuantizedFeature},
		StringDocIDLocalIndex:      NoLocalIndex,
		StringGroupIDLocalIndex:    NoLocalIndex,
		StringSubgroupIDLocalIndex: NoLocalIndex,
		Backing:                    m,
	}
	return pool, pageSize
}

func TestLoader_MappedPool(t *testing.T) {
	ctx := context.Background()
	pool, pageSize := newMappedPool(t)
	require.False(t, pool.InMemory())

	// A one-page threshold forces an eviction advisory after every chunk.
	loader, err := NewLoader(ctx, pool, WithEvictThreshold(pageSize))
	require.NoError(t, err)

	visitor := &recordingVisitor{}
	require.NoError(t, loader.Do(ctx, visitor))

	require.Len(t, visitor.parts, 2)
	require.EqualValues(t, 0, visitor.parts[0].docOffset)
	require.EqualValues(t, pageSize, visitor.parts[1].docOffset)
	require.Len(t, visitor.parts[0].bytes, int(pageSize))
	for i := int64(0); i < pageSize; i++ {
		if visitor.parts[0].bytes[i] != byte(i%251) {
			t.Fatalf("part byte %d = %d, want %d", i, visitor.parts[0].bytes[i], byte(i%251))
		}
	}

	// The pass consumed the pool: the mapping is closed and released.
	require.Nil(t, pool.Backing)
	require.Nil(t, pool.Chunks)
	require.True(t, visitor.finished)
}

func TestLoader_MappedPoolOutOfOrderChunks(t *testing.T) {
	ctx := context.Background()
	pool, pageSize := newMappedPool(t)

	// Claim the second chunk sits at an offset overlapping the first.
	pool.Chunks[0][1].Offset = pageSize / 2

	loader, err := NewLoader(ctx, pool, WithEvictThreshold(pageSize))
	require.NoError(t, err)

	err = loader.Do(ctx, &recordingVisitor{})
	var order *ErrChunkOrder
	require.ErrorAs(t, err, &order)
	require.Equal(t, pageSize/2, order.ChunkOffset)
}

func TestLoader_MappedPoolBytesSurviveEviction(t *testing.T) {
	// Eviction is advisory: pages read after an advisory still hold the
	// file's bytes. The visitor copy must match the original data.
	ctx := context.Background()
	pool, pageSize := newMappedPool(t)

	want := make([]byte, pageSize)
	for i := range want {
		want[i] = byte((int(pageSize) + i) % 251)
	}

	loader, err := NewLoader(ctx, pool, WithEvictThreshold(1))
	require.NoError(t, err)

	visitor := &recordingVisitor{}
	require.NoError(t, loader.Do(ctx, visitor))

	require.Len(t, visitor.parts, 2)
	require.True(t, bytes.Equal(visitor.parts[1].bytes, want))
}
