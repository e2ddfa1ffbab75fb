package quantpool

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

// MetaInfo describes the dataset the visitor is about to receive.
type MetaInfo struct {
	ObjectCount   uint32
	FeatureCount  uint32
	BaselineCount uint32
	ClassNames    []string

	HasWeights     bool
	HasGroupID     bool
	HasGroupWeight bool
	HasSubgroupIDs bool
	HasPairs       bool
	HasBaseline    bool
}

// deriveMetaInfo computes dataset metadata from the pool's column table
// and the configured auxiliary files.
func deriveMetaInfo(pool *Pool, objectCount uint32, hasGroupWeightsFile, hasPairsFile, hasBaselineFile bool) *MetaInfo {
	meta := &MetaInfo{ObjectCount: objectCount}
	if pool.Schema != nil {
		meta.ClassNames = pool.Schema.ClassNames
	}

	for _, localIdx := range pool.ColumnIndexToLocalIndex {
		switch pool.ColumnTypes[localIdx] {
		case ColumnQuantizedFeature:
			meta.FeatureCount++
		case ColumnBaseline:
			meta.BaselineCount++
			meta.HasBaseline = true
		case ColumnWeight:
			meta.HasWeights = true
		case ColumnGroupWeight:
			meta.HasGroupWeight = true
		case ColumnGroupID:
			meta.HasGroupID = true
		case ColumnSubgroupID:
			meta.HasSubgroupIDs = true
		}
	}

	if hasGroupWeightsFile {
		meta.HasGroupWeight = true
	}
	if hasPairsFile {
		meta.HasPairs = true
	}
	if hasBaselineFile {
		meta.HasBaseline = true
	}

	return meta
}

// buildColumnMaps assigns flat feature indices to quantized feature
// columns and class indices to baseline columns, both in ascending
// external column index order. Columns of other types map to neither:
// an absent index is the expected condition for them, not an error.
func buildColumnMaps(pool *Pool) (featureIdxByColumn, baselineIdxByColumn map[uint32]uint32) {
	cols := make([]uint32, 0, len(pool.ColumnIndexToLocalIndex))
	for columnIdx := range pool.ColumnIndexToLocalIndex {
		cols = append(cols, columnIdx)
	}
	sort.Slice(cols, func(i, j int) bool { return cols[i] < cols[j] })

	featureIdxByColumn = make(map[uint32]uint32)
	baselineIdxByColumn = make(map[uint32]uint32)

	var nextFeature, nextBaseline uint32
	for _, columnIdx := range cols {
		localIdx := pool.ColumnIndexToLocalIndex[columnIdx]
		switch pool.ColumnTypes[localIdx] {
		case ColumnQuantizedFeature:
			featureIdxByColumn[columnIdx] = nextFeature
			nextFeature++
		case ColumnBaseline:
			baselineIdxByColumn[columnIdx] = nextBaseline
			nextBaseline++
		}
	}

	return featureIdxByColumn, baselineIdxByColumn
}

// mergeIgnoredFeatures unions the caller-supplied ignore list with the
// pool-embedded one into a bitmap keyed by flat feature index. Duplicates
// are harmless; indices outside the feature range are dropped. Returns
// ErrNoFeatures when no usable feature remains.
func mergeIgnoredFeatures(callerIgnored, poolIgnored []uint32, featureCount uint32) (*roaring.Bitmap, error) {
	ignored := roaring.New()
	for _, list := range [][]uint32{callerIgnored, poolIgnored} {
		for _, idx := range list {
			if idx < featureCount {
				ignored.Add(idx)
			}
		}
	}

	if ignored.GetCardinality() >= uint64(featureCount) {
		return nil, ErrNoFeatures
	}

	return ignored, nil
}
