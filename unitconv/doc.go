// Package unitconv converts a value in one unit into every unit of its
// dimensional domain.
//
// Each domain (length, weight, temperature, ...) is a closed, immutable set of
// units related to a single canonical unit. A conversion routes the input
// through the canonical unit and derives every other unit from the same
// canonical value, so all fields of a Result are mutually consistent.
//
// # Quick Start
//
//	res, err := unitconv.Length.Convert(1, "km")
//	if err != nil {
//		log.Fatal(err)
//	}
//	ft, _ := res.Get("ft")
//	fmt.Println(ft) // 3280.83989501
//
// Domains can also be looked up by name, which is how the HTTP API, the MCP
// server and the CLI reach them:
//
//	d, ok := unitconv.Lookup("fuel-economy")
//
// # Unit Relations
//
// Most units are purely multiplicative: canonical = value * Factor. Two other
// relations are supported:
//
//   - Affine units (temperature): canonical = (value + Offset) * Factor
//   - Inverse units (litres per 100 km): canonical = Factor / value
//
// # Validation
//
// Convert validates in a fixed order and reports the first failure as a
// classified error from the xuerrors package:
//
//  1. the unit must belong to the domain (xuerrors.ErrInvalidUnit)
//  2. the value must be finite (xuerrors.ErrNonFinite)
//  3. the value must satisfy the domain constraint (xuerrors.ErrOutOfDomain)
//  4. canonical and derived values must be finite (xuerrors.ErrOverflow)
//
// Constraints are Positive (value > 0, most domains), NonNegative (area) and
// AboveAbsoluteZero (temperature, checked on the Kelvin value).
//
// # Rounding
//
// Derived values are rounded half away from zero to the domain precision:
// 8 decimal places, or 4 for temperature. Values whose magnitude is too large
// to carry that many decimals in a float64 are returned unrounded.
//
// # Concurrency
//
// Domains are immutable after construction and safe for concurrent use.
package unitconv
