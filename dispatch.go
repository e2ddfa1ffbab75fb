package quantpool

import "github.com/hupe1980/quantpool/unaligned"

// addQuantizedFeatureChunk forwards a feature chunk's bit-packed payload
// unchanged at the chunk's document offset.
func (l *Loader) addQuantizedFeatureChunk(chunk *Chunk, featureIdx uint32, visitor DataVisitor) error {
	return visitor.AddQuantizedFeaturePart(featureIdx, chunk.DocumentOffset, chunk.BitsPerDocument, chunk.Quants)
}

// addChunk converts one chunk into a typed part and hands it to the
// visitor. featureIdx and baselineIdx are optional: only quantized
// feature columns carry a flat feature index and only baseline columns
// carry a class index; the other cases ignore them.
//
// Every case except Baseline is zero-copy: the part wraps the chunk's
// raw bytes in an unaligned view the visitor reads in place.
func (l *Loader) addChunk(
	chunk *Chunk,
	columnType ColumnType,
	columnIdx uint32,
	featureIdx *uint32,
	baselineIdx *uint32,
	visitor DataVisitor,
) error {
	switch columnType {
	case ColumnQuantizedFeature:
		return l.addQuantizedFeatureChunk(chunk, *featureIdx, visitor)
	case ColumnLabel:
		return visitor.AddLabelPart(chunk.DocumentOffset, unaligned.NewFloat32s(chunk.Quants))
	case ColumnBaseline:
		// Stored as float64 but the visitor interface takes float32:
		// the one decode path that converts instead of aliasing.
		src := unaligned.NewFloat64s(chunk.Quants)
		tmp := make([]byte, src.Len()*4)
		for i := 0; i < src.Len(); i++ {
			unaligned.PutFloat32(tmp, i*4, float32(src.At(i)))
		}
		return visitor.AddBaselinePart(chunk.DocumentOffset, *baselineIdx, unaligned.NewFloat32s(tmp))
	case ColumnWeight:
		return visitor.AddWeightPart(chunk.DocumentOffset, unaligned.NewFloat32s(chunk.Quants))
	case ColumnGroupWeight:
		return visitor.AddGroupWeightPart(chunk.DocumentOffset, unaligned.NewFloat32s(chunk.Quants))
	case ColumnGroupID:
		return visitor.AddGroupIDPart(chunk.DocumentOffset, unaligned.NewUint64s(chunk.Quants))
	case ColumnSubgroupID:
		return visitor.AddSubgroupIDPart(chunk.DocumentOffset, unaligned.NewUint32s(chunk.Quants))
	default:
		// The orchestrator filters column types before dispatch, so this
		// is unreachable for well-formed pools.
		return &ErrUnexpectedColumn{ColumnIndex: columnIdx, Type: columnType}
	}
}
