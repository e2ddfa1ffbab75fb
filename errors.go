package quantpool

import (
	"errors"
	"fmt"
)

var (
	// ErrPoolEmpty is returned when the pool reports zero objects.
	ErrPoolEmpty = errors.New("quantpool: pool is empty")

	// ErrTooManyObjects is returned when the pool's object count does not
	// fit into uint32.
	ErrTooManyObjects = errors.New("quantpool: datasets with more than 4294967295 objects are not supported")

	// ErrNoFeatures is returned when the pool has no feature columns, or
	// when every feature column is ignored.
	ErrNoFeatures = errors.New("quantpool: pool should have at least one usable feature")

	// ErrLoaderDone is returned when Do is called on a loader that has
	// already run. Loaders consume their pool and are not reusable.
	ErrLoaderDone = errors.New("quantpool: loader already consumed its pool")
)

// ErrChunkOrder indicates a chunk whose backing offset lies before the end
// of the range already visited by the evictor. The gatherer guarantees
// ascending offsets, so this is an internal-consistency failure, not a
// recoverable runtime condition.
type ErrChunkOrder struct {
	VisitedBase int64
	VisitedSize int64
	ChunkOffset int64
	ChunkSize   int64
}

func (e *ErrChunkOrder) Error() string {
	return fmt.Sprintf(
		"quantpool: chunk at offset %d (size %d) overlaps visited range [%d, %d)",
		e.ChunkOffset, e.ChunkSize, e.VisitedBase, e.VisitedBase+e.VisitedSize)
}

// ErrUnexpectedColumn indicates a column whose type must not reach the
// dispatcher. Upstream filtering makes this unreachable for well-formed
// pools; seeing it means the pool is corrupted.
type ErrUnexpectedColumn struct {
	ColumnIndex uint32
	Type        ColumnType
}

func (e *ErrUnexpectedColumn) Error() string {
	return fmt.Sprintf(
		"quantpool: unexpected column type %s at column %d; expected QuantizedFeature, Label, Baseline, Weight, GroupWeight, GroupId, or SubgroupId",
		e.Type, e.ColumnIndex)
}

// ErrAuxPathMissing indicates a configured auxiliary-data path that does
// not point to an existing resource. Checked eagerly before streaming.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrAuxPathMissing struct {
	Kind  string // "pairs", "group weights" or "baseline"
	Path  string
	cause error
}

func (e *ErrAuxPathMissing) Error() string {
	return fmt.Sprintf("quantpool: %s path %q does not exist", e.Kind, e.Path)
}

func (e *ErrAuxPathMissing) Unwrap() error { return e.cause }
