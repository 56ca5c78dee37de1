package xuerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrInvalidUnit indicates the unit is not part of the domain.
	ErrInvalidUnit = errors.New("invalid unit")

	// ErrNonFinite indicates the value is NaN or infinite.
	ErrNonFinite = errors.New("non-finite value")

	// ErrOutOfDomain indicates the value violates the domain constraint.
	ErrOutOfDomain = errors.New("value out of domain")

	// ErrOverflow indicates a canonical or derived value is not representable.
	ErrOverflow = errors.New("overflow")

	// ErrInvalidInput indicates malformed input to a non-unit utility.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnprocessable indicates well-formed input that cannot be processed,
	// such as cipher text with nothing to shift.
	ErrUnprocessable = errors.New("unprocessable input")

	// ErrUnauthorized indicates a token failed verification.
	ErrUnauthorized = errors.New("unauthorized")
)

// UnitError reports a unit name that the conversion domain does not define.
type UnitError struct {
	// Domain is the name of the conversion domain (e.g. "length")
	Domain string
	// Unit is the rejected unit name as supplied by the caller
	Unit string
	// Supported lists the domain's units in declaration order
	Supported []string
}

// Error returns a message enumerating the supported units.
func (e *UnitError) Error() string {
	msg := "invalid unit: " + e.Unit
	if e.Domain != "" {
		msg += " for " + e.Domain
	}
	if len(e.Supported) > 0 {
		msg += ". Supported units: " + strings.Join(e.Supported, ", ")
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *UnitError) Is(target error) bool {
	return target == ErrInvalidUnit
}

// ValueKind classifies a ValueError.
type ValueKind int

const (
	// NonFinite marks NaN or infinite input.
	NonFinite ValueKind = iota
	// OutOfDomain marks a finite value the domain does not accept.
	OutOfDomain
	// Overflow marks a result that is not representable as a finite float64.
	Overflow
)

// String returns the kind name.
func (k ValueKind) String() string {
	switch k {
	case NonFinite:
		return "non-finite"
	case OutOfDomain:
		return "out-of-domain"
	case Overflow:
		return "overflow"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// ValueError reports a numeric value rejected by a conversion.
type ValueError struct {
	Kind ValueKind
	// Domain is the name of the conversion domain
	Domain string
	// Value is the offending input value
	Value float64
	// Message describes the constraint that was violated
	Message string
}

// Error returns a human-readable error message.
func (e *ValueError) Error() string {
	msg := e.Kind.String() + " value"
	if e.Domain != "" {
		msg += " for " + e.Domain
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error's kind.
func (e *ValueError) Is(target error) bool {
	switch e.Kind {
	case NonFinite:
		return target == ErrNonFinite
	case OutOfDomain:
		return target == ErrOutOfDomain
	case Overflow:
		return target == ErrOverflow
	}
	return false
}

// InputError reports malformed input to an encoder, generator, or converter.
type InputError struct {
	// Field names the offending input (e.g. "text", "count")
	Field string
	// Message describes the problem
	Message string
	// Unprocessable marks input that parsed but cannot be transformed
	Unprocessable bool
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *InputError) Error() string {
	msg := "invalid input"
	if e.Field != "" {
		msg += " for " + e.Field
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *InputError) Unwrap() error {
	return e.Cause
}

// Is matches ErrInvalidInput, and ErrUnprocessable when flagged.
func (e *InputError) Is(target error) bool {
	if target == ErrInvalidInput {
		return true
	}
	return target == ErrUnprocessable && e.Unprocessable
}

// TokenError reports a token that failed verification.
type TokenError struct {
	// Expired is true when the token's exp claim is in the past
	Expired bool
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *TokenError) Error() string {
	msg := "token rejected"
	if e.Expired {
		msg = "token has expired"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *TokenError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *TokenError) Is(target error) bool {
	return target == ErrUnauthorized
}

// Input returns an *InputError for field with a formatted message.
func Input(field, format string, args ...any) error {
	return &InputError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a caller mistake rather than an
// internal failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidUnit) ||
		errors.Is(err, ErrNonFinite) ||
		errors.Is(err, ErrOutOfDomain) ||
		errors.Is(err, ErrOverflow) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrUnauthorized)
}
