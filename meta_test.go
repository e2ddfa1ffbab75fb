package quantpool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newColumnTablePool builds a pool whose columns carry the given types at
// the given external indices. Chunks are irrelevant for metadata tests.
func newColumnTablePool(types map[uint32]ColumnType) *Pool {
	pool := &Pool{
		ColumnIndexToLocalIndex:    make(map[uint32]uint32, len(types)),
		StringDocIDLocalIndex:      NoLocalIndex,
		StringGroupIDLocalIndex:    NoLocalIndex,
		StringSubgroupIDLocalIndex: NoLocalIndex,
	}
	for columnIdx, columnType := range types {
		pool.ColumnIndexToLocalIndex[columnIdx] = uint32(len(pool.ColumnTypes))
		pool.ColumnTypes = append(pool.ColumnTypes, columnType)
		pool.Chunks = append(pool.Chunks, nil)
	}
	return pool
}

func TestDeriveMetaInfo(t *testing.T) {
	pool := newColumnTablePool(map[uint32]ColumnType{
		0: ColumnQuantizedFeature,
		1: ColumnLabel,
		2: ColumnQuantizedFeature,
		3: ColumnWeight,
		4: ColumnBaseline,
		5: ColumnBaseline,
		6: ColumnGroupID,
		7: ColumnSubgroupID,
	})
	pool.Schema = &QuantizationSchema{ClassNames: []string{"cat", "dog"}}

	meta := deriveMetaInfo(pool, 42, false, true, false)

	require.EqualValues(t, 42, meta.ObjectCount)
	require.EqualValues(t, 2, meta.FeatureCount)
	require.EqualValues(t, 2, meta.BaselineCount)
	require.Equal(t, []string{"cat", "dog"}, meta.ClassNames)
	require.True(t, meta.HasWeights)
	require.True(t, meta.HasGroupID)
	require.True(t, meta.HasSubgroupIDs)
	require.True(t, meta.HasBaseline)
	require.True(t, meta.HasPairs)
	require.False(t, meta.HasGroupWeight)
}

func TestDeriveMetaInfo_AuxFilesSetFlags(t *testing.T) {
	pool := newColumnTablePool(map[uint32]ColumnType{0: ColumnQuantizedFeature})

	meta := deriveMetaInfo(pool, 1, true, false, true)

	require.True(t, meta.HasGroupWeight)
	require.True(t, meta.HasBaseline)
	require.False(t, meta.HasPairs)
}

func TestBuildColumnMaps(t *testing.T) {
	// External column order decides the flat indices, not map iteration
	// order: features at columns 7, 2, 9 become flat 1, 0, 2.
	pool := newColumnTablePool(map[uint32]ColumnType{
		2: ColumnQuantizedFeature,
		3: ColumnLabel,
		5: ColumnBaseline,
		7: ColumnQuantizedFeature,
		8: ColumnBaseline,
		9: ColumnQuantizedFeature,
	})

	featureIdx, baselineIdx := buildColumnMaps(pool)

	require.Equal(t, map[uint32]uint32{2: 0, 7: 1, 9: 2}, featureIdx)
	require.Equal(t, map[uint32]uint32{5: 0, 8: 1}, baselineIdx)

	_, ok := featureIdx[3]
	require.False(t, ok)
}

func TestMergeIgnoredFeatures(t *testing.T) {
	ignored, err := mergeIgnoredFeatures([]uint32{0, 2}, []uint32{2, 4}, 5)
	require.NoError(t, err)

	require.EqualValues(t, 3, ignored.GetCardinality())
	require.True(t, ignored.Contains(0))
	require.True(t, ignored.Contains(2))
	require.True(t, ignored.Contains(4))
	require.False(t, ignored.Contains(1))
}

func TestMergeIgnoredFeatures_OutOfRangeDropped(t *testing.T) {
	ignored, err := mergeIgnoredFeatures([]uint32{1, 100}, nil, 3)
	require.NoError(t, err)

	require.EqualValues(t, 1, ignored.GetCardinality())
	require.False(t, ignored.Contains(100))
}

func TestMergeIgnoredFeatures_AllIgnored(t *testing.T) {
	_, err := mergeIgnoredFeatures([]uint32{0, 1}, []uint32{2}, 3)
	require.ErrorIs(t, err, ErrNoFeatures)
}
