package quantpool

import "testing"

func TestGatherAndSortChunks_OrderAndCoverage(t *testing.T) {
	// Two real columns with interleaved layout plus one string
	// pseudo-column. Offsets are deliberately out of per-column order
	// across columns.
	pool := &Pool{
		DocumentCount: 4,
		ColumnIndexToLocalIndex: map[uint32]uint32{
			0: 0,
			1: 1,
		},
		Chunks: [][]Chunk{
			{
				{Quants: make([]byte, 4), Offset: 0, DocumentOffset: 0},
				{Quants: make([]byte, 4), Offset: 20, DocumentOffset: 2},
			},
			{
				{Quants: make([]byte, 16), Offset: 4, DocumentOffset: 0},
			},
			{
				{Quants: make([]byte, 8), Offset: 28, DocumentOffset: 0},
			},
		},
		ColumnTypes:                []ColumnType{ColumnQuantizedFeature, ColumnLabel, ColumnStringIdentifier},
		StringDocIDLocalIndex:      2,
		StringGroupIDLocalIndex:    NoLocalIndex,
		StringSubgroupIDLocalIndex: NoLocalIndex,
		HasStringColumns:           true,
	}

	refs := gatherAndSortChunks(pool)

	if len(refs) != 4 {
		t.Fatalf("expected 4 chunk refs (pseudo-slot included), got %d", len(refs))
	}

	var prev int64 = -1
	var total int
	for i, ref := range refs {
		if ref.chunk.Offset < prev {
			t.Errorf("ref %d at offset %d breaks ascending order (prev %d)", i, ref.chunk.Offset, prev)
		}
		prev = ref.chunk.Offset
		total += len(ref.chunk.Quants)
	}

	if want := 4 + 4 + 16 + 8; total != want {
		t.Errorf("expected total coverage %d bytes, got %d", want, total)
	}

	wantOffsets := []int64{0, 4, 20, 28}
	for i, ref := range refs {
		if ref.chunk.Offset != wantOffsets[i] {
			t.Errorf("ref %d: expected offset %d, got %d", i, wantOffsets[i], ref.chunk.Offset)
		}
	}
}

func TestGatherAndSortChunks_NoPseudoSlots(t *testing.T) {
	pool := &Pool{
		DocumentCount:           1,
		ColumnIndexToLocalIndex: map[uint32]uint32{7: 0},
		Chunks: [][]Chunk{
			{{Quants: make([]byte, 2), Offset: 0}},
		},
		ColumnTypes:                []ColumnType{ColumnQuantizedFeature},
		StringDocIDLocalIndex:      NoLocalIndex,
		StringGroupIDLocalIndex:    NoLocalIndex,
		StringSubgroupIDLocalIndex: NoLocalIndex,
	}

	refs := gatherAndSortChunks(pool)
	if len(refs) != 1 {
		t.Fatalf("expected 1 chunk ref, got %d", len(refs))
	}
	if refs[0].columnIdx != 7 || refs[0].localIdx != 0 {
		t.Errorf("expected columnIdx=7 localIdx=0, got %+v", refs[0])
	}
}
