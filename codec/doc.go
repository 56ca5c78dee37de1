// Package codec implements reversible text encodings, classical ciphers,
// numeric radix conversion, message digests and JSON Web Tokens.
//
// Every function is pure and safe for concurrent use. Invalid input is
// reported as a *xuerrors.InputError, so callers can map failures with
// errors.Is(err, xuerrors.ErrInvalidInput).
package codec
