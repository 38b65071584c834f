package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampF(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minF(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func absF(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func sqrtF(v float32) float32 { return float32(math.Sqrt(float64(v))) }
func expF(v float32) float32  { return float32(math.Exp(float64(v))) }
func sinF(v float32) float32  { return float32(math.Sin(float64(v))) }
func cosF(v float32) float32  { return float32(math.Cos(float64(v))) }
func powF(b, e float32) float32 {
	return float32(math.Pow(float64(b), float64(e)))
}

// smoothStep is the Hermite 3t²-2t³ ramp of v between lo and hi.
func smoothStep(lo, hi, v float32) float32 {
	t := clampF((v-lo)/(hi-lo), 0, 1)
	return t * t * (3 - 2*t)
}

// linearStep is the linear ramp of v between lo and hi, clamped to [0,1].
func linearStep(lo, hi, v float32) float32 {
	return clampF((v-lo)/(hi-lo), 0, 1)
}

func lerpF(a, b, t float32) float32 {
	return a + (b-a)*t
}

// ceilPowerOfTwo returns the smallest power of two >= v (v > 0).
func ceilPowerOfTwo(v int) int {
	p := 1
	for p < v {
		p <<= 1
	}
	return p
}

// ceilSquarePowerOfTwo returns the smallest even power of two >= v,
// i.e. the smallest 4^k >= v.
func ceilSquarePowerOfTwo(v int) int {
	p := 1
	for p < v {
		p <<= 2
	}
	return p
}

// vec2 is shorthand for the single-precision 2D vector used everywhere.
type vec2 = mgl32.Vec2

// normalizeRecip normalizes v given a precomputed reciprocal of its length.
func normalizeRecip(v vec2, recipLen float32) vec2 {
	return vec2{v[0] * recipLen, v[1] * recipLen}
}

// perpendicular returns v rotated 90 degrees counter-clockwise.
func perpendicular(v vec2) vec2 { return vec2{-v[1], v[0]} }

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU64() % uint64(n))
}

func (r *Rand) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

func (r *Rand) Float32() float32 {
	return float32(r.Float64())
}

func (r *Rand) RangeF(min, max float32) float32 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float32()
}

// Bool returns true with the given probability.
func (r *Rand) Bool(p float32) bool {
	return r.Float32() < p
}

// Exponential draws from an exponential distribution with the given mean.
func (r *Rand) Exponential(mean float32) float32 {
	u := r.Float64()
	if u <= 0 {
		u = 1e-12
	}
	return float32(-float64(mean) * math.Log(u))
}
