package quantpool

import (
	"time"

	"golang.org/x/time/rate"
)

// defaultEvictThreshold is the visited-range size at which the evictor
// starts advising the kernel to drop pages: 16 MiB.
const defaultEvictThreshold = int64(1) << 24

// adviseFunc issues a best-effort advisory that the byte range
// [off, off+size) of the backing mapping is no longer needed.
type adviseFunc func(off, size int64) error

// sequentialEvictor tracks the contiguous byte range a forward-moving
// decode pass has already visited and advises the kernel to reclaim the
// pages behind the cursor.
//
// The correctness invariant is strictly forward, non-overlapping
// coverage: every pushed chunk must start at or after the end of the
// visited range. The gatherer's offset sort guarantees this; a violation
// means the chunk list is inconsistent and is fatal.
type sequentialEvictor struct {
	minSizeToEvict int64
	advise         adviseFunc
	logger         *Logger
	logLimit       *rate.Limiter

	// evicted is one-shot: set after an advisory, consumed by the next
	// push, which must restart the visited range behind the advised span
	// instead of extending over it.
	evicted bool
	pushed  bool
	base    int64
	size    int64
}

func newSequentialEvictor(minSizeToEvict int64, advise adviseFunc, logger *Logger) *sequentialEvictor {
	return &sequentialEvictor{
		minSizeToEvict: minSizeToEvict,
		advise:         advise,
		logger:         logger,
		logLimit:       rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// push extends the visited range to cover the chunk at [off, off+size).
// Bytes between the previous end and off were skipped over and never need
// to be read, so they count as visited too. Constant time.
func (e *sequentialEvictor) push(off, size int64) error {
	defer func() { e.evicted = false }()

	if e.pushed && off < e.base+e.size {
		return &ErrChunkOrder{
			VisitedBase: e.base,
			VisitedSize: e.size,
			ChunkOffset: off,
			ChunkSize:   size,
		}
	}

	switch {
	case !e.pushed:
		e.base, e.size = off, size
		e.pushed = true
	case e.evicted:
		// The advised span must not be counted again.
		next := e.base + e.size
		e.size = off - next + size
		e.base = next
	default:
		e.size = off - e.base + size
	}

	return nil
}

// maybeEvict advises the kernel that the visited range's pages are no
// longer needed, once the range reaches the configured threshold or when
// forced. Advisory failures are logged at debug level and swallowed;
// memory usage may simply grow if the kernel cannot honor the hint.
func (e *sequentialEvictor) maybeEvict(force bool) {
	if !e.pushed || e.evicted || !force && e.size < e.minSizeToEvict {
		return
	}

	if err := e.advise(e.base, e.size); err != nil && e.logLimit.Allow() {
		e.logger.LogEvictFailed(e.base, e.size, err)
	}

	e.evicted = true
}
