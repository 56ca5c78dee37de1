package unitconv

import "math"

// maxExact is the largest magnitude at which every integer is exactly
// representable in a float64.
const maxExact = 1 << 53

// round rounds x half away from zero to places decimal places.
func round(x float64, places int) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	scale := math.Pow10(places)
	scaled := x * scale
	if math.Abs(scaled) >= maxExact {
		return x
	}
	r := math.Round(scaled) / scale
	if r == 0 {
		// normalise -0
		return 0
	}
	return r
}

// Round exposes the package rounding policy for callers that derive values
// outside a Domain.
func Round(x float64, places int) float64 {
	return round(x, places)
}
