package ashrand

import "math"

// Floating-point derivation. The half-open variants take the top 53 (24)
// bits of one raw draw and scale by 2^-53 (2^-24), which yields every
// representable multiple of the step with equal probability. Inclusive
// and exclusive variants adjust the denominator and the boundary handling
// rather than resampling.

// Float64 returns a uniform value in [0, 1).
func Float64(g Generator) float64 {
	return float64(g.NextU64()>>11) * 0x1p-53
}

// Float32 returns a uniform value in [0, 1).
func Float32(g Generator) float32 {
	return float32(g.NextU64()>>40) * 0x1p-24
}

// Float64N returns a uniform value in [0, outer). A zero outer always
// yields 0.
func Float64N(g Generator, outer float64) float64 {
	return Float64(g) * outer
}

// Float64Range returns a value between inner (inclusive) and outer
// (exclusive), accepting the bounds in either order.
func Float64Range(g Generator, inner, outer float64) float64 {
	return inner + Float64(g)*(outer-inner)
}

// Float32Range is Float64Range for float32.
func Float32Range(g Generator, inner, outer float32) float32 {
	return inner + Float32(g)*(outer-inner)
}

// InclusiveFloat64 returns a uniform value in [0, 1]. The divisor is
// 2^53-1 rather than 2^53, so exactly 1.0 is returned with probability
// 2^-53.
func InclusiveFloat64(g Generator) float64 {
	return float64(g.NextU64()>>11) / float64(1<<53-1)
}

// InclusiveFloat32 returns a uniform value in [0, 1], reaching 1.0 with
// probability 2^-24.
func InclusiveFloat32(g Generator) float32 {
	return float32(g.NextU64()>>40) / float32(1<<24-1)
}

// InclusiveFloat64Range returns a value in [inner, outer], bounds in
// either order, both endpoints reachable.
func InclusiveFloat64Range(g Generator, inner, outer float64) float64 {
	return inner + InclusiveFloat64(g)*(outer-inner)
}

// ExclusiveFloat64 returns a uniform value in (0, 1): neither endpoint is
// ever returned. The scaling math alone already avoids 1.0, but both ends
// are checked on the scaled result and nudged one representable unit
// toward the interior, not assumed away.
func ExclusiveFloat64(g Generator) float64 {
	v := Float64(g)
	switch v {
	case 0:
		return math.Nextafter(0, 1)
	case 1:
		return math.Nextafter(1, 0)
	}
	return v
}

// ExclusiveFloat32 returns a uniform value in (0, 1).
func ExclusiveFloat32(g Generator) float32 {
	v := Float32(g)
	switch v {
	case 0:
		return math.Nextafter32(0, 1)
	case 1:
		return math.Nextafter32(1, 0)
	}
	return v
}

// ExclusiveFloat64Range returns a value strictly between inner and outer,
// bounds in either order. A result landing on a bound after scaling is
// nudged one unit in the last place toward the opposite bound.
func ExclusiveFloat64Range(g Generator, inner, outer float64) float64 {
	v := inner + Float64(g)*(outer-inner)
	switch v {
	case inner:
		return math.Nextafter(inner, outer)
	case outer:
		return math.Nextafter(outer, inner)
	}
	return v
}

// ExclusiveFloat32Range is ExclusiveFloat64Range for float32.
func ExclusiveFloat32Range(g Generator, inner, outer float32) float32 {
	v := inner + Float32(g)*(outer-inner)
	switch v {
	case inner:
		return math.Nextafter32(inner, outer)
	case outer:
		return math.Nextafter32(outer, inner)
	}
	return v
}
