package world

import (
	"overland/internal/profiling"
)

// FogState is the visibility of a single cell.
type FogState uint8

const (
	// FogOccluded cells have never been revealed, or fell back out of the
	// reveal radius in transient mode. Cells absent from the tracker's map
	// are occluded.
	FogOccluded FogState = iota
	// FogVisible cells are inside the reveal radius right now. Only exists
	// in transient mode; permanent mode goes straight to FogPermanent.
	FogVisible
	// FogPermanent cells stay revealed forever. Terminal.
	FogPermanent
)

// FogTracker maintains the fog-of-war layer for a single observer. Entries are
// created lazily on first reveal; an update touches only the bounding box of
// the reveal radius, so its cost is O(radius²) regardless of how much world
// has been explored.
type FogTracker struct {
	radius    float64
	permanent bool

	cells map[Cell]FogState
}

// NewFogTracker creates a tracker with the given reveal radius (in cells).
// With permanent set, revealed cells never re-occlude.
func NewFogTracker(radius float64, permanent bool) *FogTracker {
	return &FogTracker{
		radius:    radius,
		permanent: permanent,
		cells:     make(map[Cell]FogState),
	}
}

// State returns the fog state of a cell.
func (f *FogTracker) State(c Cell) FogState {
	return f.cells[c]
}

// Visible reports whether the cell is currently rendered as revealed.
func (f *FogTracker) Visible(c Cell) bool {
	return f.cells[c] != FogOccluded
}

// RevealedCount returns the number of cells currently tracked as visible or
// permanently visible.
func (f *FogTracker) RevealedCount() int {
	return len(f.cells)
}

// Update reveals every cell within Euclidean distance radius of center and,
// in transient mode, re-occludes cells inside the bounding box that fell out
// of range. Cells outside the box are deliberately untouched: a stale visible
// cell far away costs nothing, while scanning the whole explored world every
// update would.
func (f *FogTracker) Update(center Cell) {
	defer profiling.Track("world.FogUpdate")()

	r := int(f.radius)
	r2 := f.radius * f.radius

	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			c := Cell{X: center.X + dx, Y: center.Y + dy}
			inRange := float64(dx*dx+dy*dy) <= r2

			switch {
			case inRange && f.permanent:
				f.cells[c] = FogPermanent
			case inRange:
				if f.cells[c] != FogPermanent {
					f.cells[c] = FogVisible
				}
			case !f.permanent:
				// Transient mode: out of range inside the box re-occludes,
				// unless RevealAll pinned the cell.
				if f.cells[c] == FogVisible {
					delete(f.cells, c)
				}
			}
		}
	}
}

// RevealAll forces every cell in the inclusive extent [min, max] to
// PermanentlyVisible, in both fog modes. The reveal is monotone: no later
// update can undo it. This is an O(extent²) sweep intended for debug and rare
// game events, not the per-tick path.
func (f *FogTracker) RevealAll(min, max Cell) {
	for y := min.Y; y <= max.Y; y++ {
		for x := min.X; x <= max.X; x++ {
			f.cells[Cell{X: x, Y: y}] = FogPermanent
		}
	}
}
