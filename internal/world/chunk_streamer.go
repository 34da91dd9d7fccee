package world

import (
	"runtime"
	"sync"

	"overland/internal/profiling"
)

// ChunkStreamer keeps the neighborhood around the observer generated. The
// synchronous path (EnsureAround) is the correctness guarantee: it runs every
// tick and completes within it. The asynchronous prefetch ring is an
// optimization that warms a wider radius on background workers; it is safe
// because chunk content is a pure function of coordinates.
type ChunkStreamer struct {
	store  *ChunkStore
	radius int // Chebyshev radius of the synchronous guarantee (1 = 3x3)

	jobs       chan ChunkCoord
	pending    map[ChunkCoord]struct{}
	pendingMu  sync.Mutex
	maxPending int

	closeOnce sync.Once
}

// NewChunkStreamer creates a streamer over the store and starts its prefetch
// workers.
func NewChunkStreamer(store *ChunkStore, radius int) *ChunkStreamer {
	cs := &ChunkStreamer{
		store:      store,
		radius:     radius,
		jobs:       make(chan ChunkCoord, 1024),
		pending:    make(map[ChunkCoord]struct{}),
		maxPending: 4096,
	}

	workers := max(runtime.NumCPU()/2, 1)
	for i := 0; i < workers; i++ {
		go cs.worker()
	}
	return cs
}

// Close stops the background prefetch workers.
func (cs *ChunkStreamer) Close() {
	cs.closeOnce.Do(func() { close(cs.jobs) })
}

func (cs *ChunkStreamer) worker() {
	for coord := range cs.jobs {
		cs.store.EnsureGenerated(coord)
		cs.pendingMu.Lock()
		delete(cs.pending, coord)
		cs.pendingMu.Unlock()
	}
}

// EnsureAround synchronously generates every chunk within the configured
// Chebyshev radius of the observer's cell. Idempotent and cheap once the
// neighborhood exists, so callers run it every tick.
func (cs *ChunkStreamer) EnsureAround(center Cell) {
	defer profiling.Track("world.EnsureAround")()
	cc := ChunkOf(center, cs.store.ChunkSize())
	for dy := -cs.radius; dy <= cs.radius; dy++ {
		for dx := -cs.radius; dx <= cs.radius; dx++ {
			cs.store.EnsureGenerated(ChunkCoord{X: cc.X + dx, Y: cc.Y + dy})
		}
	}
}

// PrefetchAround queues chunks out to the given Chebyshev radius for
// background generation, walking outward ring by ring so near chunks land
// first. Already generated and already queued chunks are skipped.
func (cs *ChunkStreamer) PrefetchAround(center Cell, radius int) {
	defer profiling.Track("world.PrefetchAround")()
	cc := ChunkOf(center, cs.store.ChunkSize())

	for r := 0; r <= radius; r++ {
		if r == 0 {
			cs.request(cc)
			continue
		}
		x0, x1 := cc.X-r, cc.X+r
		y0, y1 := cc.Y-r, cc.Y+r

		for x := x0; x <= x1; x++ {
			cs.request(ChunkCoord{X: x, Y: y0})
			cs.request(ChunkCoord{X: x, Y: y1})
		}
		for y := y0 + 1; y <= y1-1; y++ {
			cs.request(ChunkCoord{X: x0, Y: y})
			cs.request(ChunkCoord{X: x1, Y: y})
		}
	}
}

// request enqueues a chunk for prefetch if it is missing, not already queued,
// and the pending cap allows. Returns true when enqueued.
func (cs *ChunkStreamer) request(coord ChunkCoord) bool {
	if cs.store.Has(coord) {
		return false
	}

	cs.pendingMu.Lock()
	if _, ok := cs.pending[coord]; ok {
		cs.pendingMu.Unlock()
		return false
	}
	if cs.maxPending > 0 && len(cs.pending) >= cs.maxPending {
		cs.pendingMu.Unlock()
		return false
	}
	cs.pending[coord] = struct{}{}
	cs.pendingMu.Unlock()

	select {
	case cs.jobs <- coord:
		return true
	default:
		// queue full: rollback
		cs.pendingMu.Lock()
		delete(cs.pending, coord)
		cs.pendingMu.Unlock()
		return false
	}
}

// PendingCount returns the number of queued prefetch jobs.
func (cs *ChunkStreamer) PendingCount() int {
	cs.pendingMu.Lock()
	defer cs.pendingMu.Unlock()
	return len(cs.pending)
}
