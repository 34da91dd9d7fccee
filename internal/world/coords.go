package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Cell is a world-space grid coordinate. All core APIs operate on cells;
// continuous positions are converted at the boundary via CellAt.
type Cell struct {
	X, Y int
}

// ChunkCoord identifies a chunk in the infinite grid of chunks.
type ChunkCoord struct {
	X, Y int
}

// ChunkOf returns the chunk containing the given cell. Uses floor division so
// negative cells map correctly (e.g. cell -1 with size 16 belongs to chunk -1).
func ChunkOf(c Cell, size int) ChunkCoord {
	return ChunkCoord{X: floorDiv(c.X, size), Y: floorDiv(c.Y, size)}
}

// Origin returns the world cell at the chunk's minimum corner.
func (cc ChunkCoord) Origin(size int) Cell {
	return Cell{X: cc.X * size, Y: cc.Y * size}
}

// CellAt converts a continuous world position to the cell containing it.
func CellAt(pos mgl64.Vec2) Cell {
	return Cell{X: int(math.Floor(pos.X())), Y: int(math.Floor(pos.Y()))}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// mod returns the non-negative remainder of a/b.
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
