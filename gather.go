package quantpool

import "sort"

// chunkRef is a gathered record pointing at one chunk of one column.
// Transient: it exists only for the duration of a single decode pass.
type chunkRef struct {
	chunk     *Chunk
	columnIdx uint32
	localIdx  uint32
}

// gatherAndSortChunks flattens every chunk of every real column slot plus
// the string-identifier pseudo-slots into one list sorted by ascending
// backing offset. Offsets reflect on-disk layout order, so visiting in
// this order both keeps the evictor's forward-only invariant and gives
// the best sequential access pattern over the mapping.
func gatherAndSortChunks(pool *Pool) []chunkRef {
	var chunks []chunkRef
	for columnIdx, localIdx := range pool.ColumnIndexToLocalIndex {
		for i := range pool.Chunks[localIdx] {
			chunks = append(chunks, chunkRef{
				chunk:     &pool.Chunks[localIdx][i],
				columnIdx: columnIdx,
				localIdx:  localIdx,
			})
		}
	}

	// The column index attached to pseudo-slot chunks is irrelevant:
	// they are filtered out before reaching the dispatcher.
	fakeIndices := [...]int{
		pool.StringDocIDLocalIndex,
		pool.StringGroupIDLocalIndex,
		pool.StringSubgroupIDLocalIndex,
	}
	for _, fakeIdx := range fakeIndices {
		if fakeIdx == NoLocalIndex {
			continue
		}
		for i := range pool.Chunks[fakeIdx] {
			chunks = append(chunks, chunkRef{
				chunk:    &pool.Chunks[fakeIdx][i],
				localIdx: uint32(fakeIdx),
			})
		}
	}

	sort.Slice(chunks, func(i, j int) bool {
		return chunks[i].chunk.Offset < chunks[j].chunk.Offset
	})

	return chunks
}
