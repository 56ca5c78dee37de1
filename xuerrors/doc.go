// Package xuerrors provides structured error types for xutil.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), so callers can tell a bad unit from a bad value, and a bad value
// from an internal failure, without matching on message text.
//
// # Error Categories
//
//   - UnitError: the unit name is not part of the conversion domain
//   - ValueError: the value is non-finite, outside the domain, or overflows
//   - InputError: malformed input to an encoder, generator, or format converter
//   - TokenError: a JWT failed signature or expiry verification
//
// # Usage with errors.Is
//
//	res, err := unitconv.Length.Convert(-5, "m")
//	if errors.Is(err, xuerrors.ErrOutOfDomain) {
//	    // reject the request as a validation failure
//	}
//
// # Usage with errors.As
//
//	var unitErr *xuerrors.UnitError
//	if errors.As(err, &unitErr) {
//	    fmt.Println("supported:", unitErr.Supported)
//	}
package xuerrors
