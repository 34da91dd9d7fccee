package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestFloorDivNegative(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{0, 16, 0},
		{15, 16, 0},
		{16, 16, 1},
		{-1, 16, -1},
		{-16, 16, -1},
		{-17, 16, -2},
	}
	for _, c := range cases {
		if got := floorDiv(c.a, c.b); got != c.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestChunkOfContainsCell(t *testing.T) {
	const size = 16
	// Every cell must fall inside [origin, origin+size) of its own chunk,
	// including negative coordinates.
	for _, c := range []Cell{
		{0, 0}, {15, 15}, {16, 16}, {-1, -1}, {-16, -16}, {-17, 5}, {100, -233},
	} {
		cc := ChunkOf(c, size)
		origin := cc.Origin(size)
		if c.X < origin.X || c.X >= origin.X+size || c.Y < origin.Y || c.Y >= origin.Y+size {
			t.Errorf("cell %v not contained in chunk %v (origin %v)", c, cc, origin)
		}
	}
}

func TestModNonNegative(t *testing.T) {
	for _, c := range []Cell{{-1, -16}, {-17, 31}, {0, -100}} {
		for _, v := range []int{c.X, c.Y} {
			m := mod(v, 16)
			if m < 0 || m >= 16 {
				t.Errorf("mod(%d, 16) = %d, out of [0,16)", v, m)
			}
		}
	}
}

func TestCellAtFloors(t *testing.T) {
	cases := []struct {
		pos  mgl64.Vec2
		want Cell
	}{
		{mgl64.Vec2{0, 0}, Cell{0, 0}},
		{mgl64.Vec2{0.9, 0.9}, Cell{0, 0}},
		{mgl64.Vec2{-0.1, -0.1}, Cell{-1, -1}},
		{mgl64.Vec2{16.0, -16.5}, Cell{16, -17}},
	}
	for _, c := range cases {
		if got := CellAt(c.pos); got != c.want {
			t.Errorf("CellAt(%v) = %v, want %v", c.pos, got, c.want)
		}
	}
}
