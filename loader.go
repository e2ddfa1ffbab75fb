package quantpool

import (
	"context"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/quantpool/auxdata"
	"github.com/hupe1980/quantpool/pathscheme"
)

// Loader drives one forward decode pass over a quantized pool: it
// validates the pool, derives metadata, streams typed parts to a
// visitor in backing-offset order while advising visited pages away,
// then releases the pool and forwards auxiliary data.
//
// A Loader exclusively owns its pool and consumes it destructively;
// after Do returns the loader is not reusable.
type Loader struct {
	pool         *Pool
	objectCount  uint32
	objectsOrder ObjectsOrder
	meta         *MetaInfo
	ignored      *roaring.Bitmap

	pairsPath        pathscheme.Path
	groupWeightsPath pathscheme.Path
	baselinePath     pathscheme.Path

	registry       *pathscheme.Registry
	logger         *Logger
	evictThreshold int64

	done bool
}

// NewLoader validates the pool and builds dataset metadata. Validation
// is eager: an empty pool, an object count beyond uint32, a missing
// auxiliary file or a fully ignored feature set all fail here, before
// any streaming starts.
func NewLoader(ctx context.Context, pool *Pool, optFns ...Option) (*Loader, error) {
	o := applyOptions(optFns)

	if pool == nil || pool.DocumentCount == 0 {
		return nil, ErrPoolEmpty
	}
	if pool.DocumentCount > math.MaxUint32 {
		return nil, ErrTooManyObjects
	}
	objectCount := uint32(pool.DocumentCount)

	if err := checkAuxPaths(ctx, o.registry, o.pairsPath, o.groupWeightsPath, o.baselinePath); err != nil {
		return nil, err
	}

	meta := deriveMetaInfo(pool, objectCount,
		o.groupWeightsPath.Inited(), o.pairsPath.Inited(), o.baselinePath.Inited())
	if meta.FeatureCount == 0 {
		return nil, ErrNoFeatures
	}

	ignored, err := mergeIgnoredFeatures(o.ignoredFeatures, pool.IgnoredFeatures, meta.FeatureCount)
	if err != nil {
		return nil, err
	}

	return &Loader{
		pool:             pool,
		objectCount:      objectCount,
		objectsOrder:     o.objectsOrder,
		meta:             meta,
		ignored:          ignored,
		pairsPath:        o.pairsPath,
		groupWeightsPath: o.groupWeightsPath,
		baselinePath:     o.baselinePath,
		registry:         o.registry,
		logger:           o.logger,
		evictThreshold:   o.evictThreshold,
	}, nil
}

// MetaInfo returns the derived dataset metadata.
func (l *Loader) MetaInfo() *MetaInfo {
	return l.meta
}

// checkAuxPaths verifies every configured auxiliary path up front so a
// missing file fails the load before streaming, not mid-pass.
func checkAuxPaths(ctx context.Context, registry *pathscheme.Registry, pairs, groupWeights, baseline pathscheme.Path) error {
	g, ctx := errgroup.WithContext(ctx)

	check := func(kind string, p pathscheme.Path) {
		if !p.Inited() {
			return
		}
		g.Go(func() error {
			ok, err := registry.Exists(ctx, p)
			if err != nil {
				return &ErrAuxPathMissing{Kind: kind, Path: p.String(), cause: err}
			}
			if !ok {
				return &ErrAuxPathMissing{Kind: kind, Path: p.String()}
			}
			return nil
		})
	}

	check("pairs", pairs)
	check("group weights", groupWeights)
	check("baseline", baseline)

	return g.Wait()
}

// streamPass carries per-pass state through the chunk loop.
type streamPass struct {
	mapped              bool
	evictor             *sequentialEvictor
	featureIdxByColumn  map[uint32]uint32
	baselineIdxByColumn map[uint32]uint32
	visitor             DataVisitor
	skipped             int
}

// Do runs the decode: Start, the gather-evict-dispatch loop, pool
// release, auxiliary data, Finish. Any error is fatal for the whole
// load; there is no partial-result recovery.
func (l *Loader) Do(ctx context.Context, visitor DataVisitor) error {
	if l.done {
		return ErrLoaderDone
	}

	if err := visitor.Start(l.meta, l.objectCount, l.objectsOrder, nil, l.pool.Schema); err != nil {
		return err
	}

	featureIdxByColumn, baselineIdxByColumn := buildColumnMaps(l.pool)
	chunkRefs := gatherAndSortChunks(l.pool)

	pass := &streamPass{
		// Fully materialized pools have no backing mapping to advise
		// against; the evictor never sees a push then.
		mapped:              !l.pool.InMemory(),
		evictor:             newSequentialEvictor(l.evictThreshold, l.adviseEvict, l.logger),
		featureIdxByColumn:  featureIdxByColumn,
		baselineIdxByColumn: baselineIdxByColumn,
		visitor:             visitor,
	}

	for i := range chunkRefs {
		if err := l.processChunk(&chunkRefs[i], pass); err != nil {
			return err
		}
	}

	pass.evictor.maybeEvict(true)
	l.logger.LogStreamed(len(chunkRefs), pass.skipped)

	// Release pool memory before auxiliary loading so the peaks don't
	// stack.
	if err := l.pool.Release(); err != nil {
		return err
	}
	l.pool = nil
	l.done = true

	if l.groupWeightsPath.Inited() {
		weights, err := auxdata.LoadGroupWeights(ctx, l.registry, l.groupWeightsPath, l.objectCount)
		if err != nil {
			return err
		}
		if err := visitor.SetGroupWeights(weights); err != nil {
			return err
		}
	}

	if l.pairsPath.Inited() {
		pairs, err := auxdata.LoadPairs(ctx, l.registry, l.pairsPath, l.objectCount)
		if err != nil {
			return err
		}
		converted := make([]Pair, len(pairs))
		for i, p := range pairs {
			converted[i] = Pair{WinnerID: p.WinnerID, LoserID: p.LoserID, Weight: p.Weight}
		}
		if err := visitor.SetPairs(converted); err != nil {
			return err
		}
	}

	if l.baselinePath.Inited() {
		baseline, err := auxdata.LoadBaseline(ctx, l.registry, l.baselinePath, l.objectCount, l.meta.ClassNames)
		if err != nil {
			return err
		}
		if err := visitor.SetBaseline(baseline); err != nil {
			return err
		}
	}

	return visitor.Finish()
}

// processChunk handles one gathered chunk. maybeEvict runs via defer so
// the advisory fires even when dispatch for this chunk fails.
func (l *Loader) processChunk(ref *chunkRef, pass *streamPass) error {
	defer pass.evictor.maybeEvict(false)

	if pass.mapped {
		if err := pass.evictor.push(ref.chunk.Offset, int64(len(ref.chunk.Quants))); err != nil {
			return err
		}
	}

	localIdx := int(ref.localIdx)
	if l.pool.HasStringColumns &&
		(localIdx == l.pool.StringDocIDLocalIndex ||
			localIdx == l.pool.StringGroupIDLocalIndex ||
			localIdx == l.pool.StringSubgroupIDLocalIndex) {
		// String columns only exist for display output.
		pass.skipped++
		return nil
	}

	columnType := l.pool.ColumnTypes[ref.localIdx]
	if columnType == ColumnDocumentID {
		// Old pools carry DocId columns; skipped for compatibility.
		pass.skipped++
		return nil
	}

	if !columnType.dispatchable() {
		return &ErrUnexpectedColumn{ColumnIndex: ref.columnIdx, Type: columnType}
	}

	var featureIdx *uint32
	if idx, ok := pass.featureIdxByColumn[ref.columnIdx]; ok {
		if l.ignored.Contains(idx) {
			pass.skipped++
			return nil
		}
		featureIdx = &idx
	}

	var baselineIdx *uint32
	if idx, ok := pass.baselineIdxByColumn[ref.columnIdx]; ok {
		baselineIdx = &idx
	}

	return l.addChunk(ref.chunk, columnType, ref.columnIdx, featureIdx, baselineIdx, pass.visitor)
}

// adviseEvict is the evictor's advisory callback: a best-effort
// madvise(MADV_DONTNEED) on the visited range of the backing mapping.
func (l *Loader) adviseEvict(off, size int64) error {
	return l.pool.Backing.Evict(off, size)
}
