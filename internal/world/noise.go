package world

import (
	"math"
)

// Simple deterministic 2D value noise plus per-cell hash draws.
// Integer hashing only; no math/rand, so results are stable across runs
// and independent of evaluation order.

// fade is the smoothstep-like curve 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// hash2 mixes two lattice coordinates and a seed, SplitMix64 style.
func hash2(x, y int64, seed int64) uint64 {
	v := uint64(x) + (uint64(y) << 1) + uint64(seed)*0x9E3779B97F4A7C15
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	v = v ^ (v >> 31)
	return v
}

func latticeValue(x, y int64, seed int64) float64 {
	h := hash2(x, y, seed)
	return float64(h&0xFFFFFFFF) / float64(0x100000000) // [0,1)
}

func valueNoise2D(x, y float64, seed int64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	x1 := x0 + 1
	y1 := y0 + 1

	fx := fade(x - x0)
	fy := fade(y - y0)

	v00 := latticeValue(int64(x0), int64(y0), seed)
	v10 := latticeValue(int64(x1), int64(y0), seed)
	v01 := latticeValue(int64(x0), int64(y1), seed)
	v11 := latticeValue(int64(x1), int64(y1), seed)

	i0 := lerp(v00, v10, fx)
	i1 := lerp(v01, v11, fx)
	return lerp(i0, i1, fy) // [0,1)
}

// Purpose tags decorrelate the per-cell draws made during generation. A single
// cell needs several independent random values; mixing a distinct tag into the
// hash gives each draw its own stream.
const (
	tagGround = iota + 1
	tagResourceRoll
	tagResourceKind
)

// cellHash returns a stable hash of (seed, cell, purpose tag). Every stochastic
// decision during generation funnels through here, so chunk content is a pure
// function of seed and coordinates regardless of generation order.
func cellHash(seed int64, c Cell, tag int64) uint64 {
	v := uint64(int64(c.X))*0x9E3779B97F4A7C15 +
		uint64(int64(c.Y))*0x6C62272E07BB0142 +
		uint64(seed) + uint64(tag)*0x517CC1B727220A95
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	v = v ^ (v >> 31)
	return v
}

// cellRand01 returns a uniform value in [0,1) for the given cell and tag.
func cellRand01(seed int64, c Cell, tag int64) float64 {
	h := cellHash(seed, c, tag)
	return float64(h&0xFFFFFFFF) / float64(0x100000000)
}

// cellRandN returns a uniform int in [0,n) for the given cell and tag.
// n must be positive.
func cellRandN(seed int64, c Cell, tag int64, n int) int {
	return int(cellHash(seed, c, tag) % uint64(n))
}
