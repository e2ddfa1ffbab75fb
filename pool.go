package quantpool

import (
	"github.com/hupe1980/quantpool/internal/mmap"
)

// NoLocalIndex marks an absent string-identifier pseudo-slot.
const NoLocalIndex = -1

// Chunk is an immutable view of one contiguous segment of a column's
// data. The payload is a window into the pool's backing mapping, or into
// an owned buffer when the pool is fully materialized in memory.
type Chunk struct {
	// Quants is the raw chunk payload. For quantized feature columns it
	// holds bit-packed values; for the other column types it holds packed
	// little-endian fixed-width elements at arbitrary alignment.
	Quants []byte

	// Offset is the payload's byte offset within the backing mapping or
	// buffer. It reflects on-disk layout order and is the gatherer's
	// sort key.
	Offset int64

	// DocumentOffset is the position within the column at which this
	// chunk starts.
	DocumentOffset uint32

	// BitsPerDocument is the packed value width. Meaningful only for
	// quantized feature chunks.
	BitsPerDocument uint8
}

// QuantizationSchema describes how feature values were quantized. The
// decoder treats it as opaque and hands it to the visitor unchanged.
type QuantizationSchema struct {
	// Borders holds the bin borders per flat feature index.
	Borders [][]float32

	// ClassNames names the target classes for multi-class pools. Its
	// length determines the per-class shape of baseline data.
	ClassNames []string
}

// Pool is a parsed quantized dataset: the column layout and the chunked
// binary payloads. It is produced by an external format loader and
// consumed destructively by a single Loader pass.
type Pool struct {
	// DocumentCount is the number of objects in the dataset.
	DocumentCount uint64

	// ColumnIndexToLocalIndex maps external column indices to dense
	// local slot indices into Chunks and ColumnTypes.
	ColumnIndexToLocalIndex map[uint32]uint32

	// Chunks holds, per local slot, that column's chunks ordered by
	// document offset.
	Chunks [][]Chunk

	// ColumnTypes holds the semantic type per local slot.
	ColumnTypes []ColumnType

	// StringDocIDLocalIndex, StringGroupIDLocalIndex and
	// StringSubgroupIDLocalIndex are the pseudo-slots holding
	// string-typed identifier data, or NoLocalIndex if absent. These
	// columns exist only for display and never feed quantized features.
	StringDocIDLocalIndex      int
	StringGroupIDLocalIndex    int
	StringSubgroupIDLocalIndex int

	// HasStringColumns reports whether any of the pseudo-slots is set.
	HasStringColumns bool

	// IgnoredFeatures lists flat feature indices the pool itself marks
	// as ignored. Merged with the caller-supplied ignore list.
	IgnoredFeatures []uint32

	// Schema is the quantization schema, opaque to the decoder.
	Schema *QuantizationSchema

	// Backing is the memory mapping the chunk payloads point into, or
	// nil when the pool is fully materialized in owned buffers. Eviction
	// advisories only apply to mapped pools.
	Backing *mmap.Mapping
}

// InMemory reports whether the pool is fully materialized in memory, with
// no backing mapping to advise against.
func (p *Pool) InMemory() bool {
	return p.Backing == nil
}

// Release drops the pool's chunk data and closes the backing mapping so
// the memory can be reclaimed. The pool is unusable afterwards.
func (p *Pool) Release() error {
	p.Chunks = nil
	p.ColumnTypes = nil
	p.ColumnIndexToLocalIndex = nil
	if p.Backing == nil {
		return nil
	}
	m := p.Backing
	p.Backing = nil
	return m.Close()
}
