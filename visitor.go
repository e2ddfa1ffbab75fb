package quantpool

import "github.com/hupe1980/quantpool/unaligned"

// Pair is one object-preference constraint from the pairs auxiliary file:
// the object at WinnerID should rank above the object at LoserID.
type Pair struct {
	WinnerID uint32
	LoserID  uint32
	Weight   float32
}

// DataVisitor is the push interface the loader drives. Methods are called
// synchronously from a single goroutine, in address order for parts.
//
// Part payloads and views alias the pool's backing memory; a visitor that
// wants to keep them past the call must copy. Returning a non-nil error
// from any method aborts the load.
type DataVisitor interface {
	// Start is called exactly once, before any part.
	Start(meta *MetaInfo, objectCount uint32, order ObjectsOrder, extra []string, schema *QuantizationSchema) error

	// AddQuantizedFeaturePart delivers a feature chunk's bit-packed
	// payload unchanged. The visitor unpacks it using bitsPerDocument
	// and the quantization schema.
	AddQuantizedFeaturePart(featureIdx uint32, documentOffset uint32, bitsPerDocument uint8, quants []byte) error

	// AddLabelPart delivers target values for documents starting at
	// documentOffset.
	AddLabelPart(documentOffset uint32, values unaligned.Float32s) error

	// AddBaselinePart delivers baseline predictions for one class.
	AddBaselinePart(documentOffset uint32, classIdx uint32, values unaligned.Float32s) error

	// AddWeightPart delivers per-object weights.
	AddWeightPart(documentOffset uint32, values unaligned.Float32s) error

	// AddGroupWeightPart delivers per-object group weights.
	AddGroupWeightPart(documentOffset uint32, values unaligned.Float32s) error

	// AddGroupIDPart delivers per-object group identifiers.
	AddGroupIDPart(documentOffset uint32, ids unaligned.Uint64s) error

	// AddSubgroupIDPart delivers per-object subgroup identifiers.
	AddSubgroupIDPart(documentOffset uint32, ids unaligned.Uint32s) error

	// SetGroupWeights forwards the group-weights auxiliary data, one
	// weight per object.
	SetGroupWeights(weights []float32) error

	// SetPairs forwards the pairs auxiliary data.
	SetPairs(pairs []Pair) error

	// SetBaseline forwards the baseline auxiliary data, one slice of
	// objectCount values per class.
	SetBaseline(baseline [][]float32) error

	// Finish is called exactly once, after all parts and all auxiliary
	// data have been delivered.
	Finish() error
}
