package ashrand

import "math"

// Normal returns a normally distributed value with the given mean and
// standard deviation, produced by the probit transform of one inclusive
// uniform draw. The extreme draws 0.0 and 1.0 (each probability 2^-53)
// map to -Inf and +Inf, matching the tails of the ideal inverse CDF.
func Normal(g Generator, mean, stddev float64) float64 {
	u := InclusiveFloat64(g)
	return mean + stddev*probit(u)
}

// probit is the inverse CDF of the standard normal distribution.
func probit(u float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*u-1)
}

// Triangular returns a triangularly distributed value between min and max
// with the mode at the midpoint.
func Triangular(g Generator, min, max float64) float64 {
	return TriangularMode(g, min, max, (min+max)/2)
}

// TriangularMode returns a triangularly distributed value between min and
// max with the peak at mode. Inverted bounds are swapped and mode is
// clamped into [min, max]. One uniform draw is mapped through the
// two-piece inverse CDF, taking the square-root branch matching the side
// of the mode it falls on; a draw landing exactly on the mode's quantile
// resolves to the descending branch.
func TriangularMode(g Generator, min, max, mode float64) float64 {
	u := Float64(g)
	if max < min {
		min, max = max, min
	}
	if mode < min {
		mode = min
	} else if mode > max {
		mode = max
	}
	span := max - min
	if span == 0 {
		return min
	}
	if c := (mode - min) / span; u < c {
		return min + math.Sqrt(u*span*(mode-min))
	}
	return max - math.Sqrt((1-u)*span*(max-mode))
}
