package unitconv

import (
	"fmt"
	"math"

	"github.com/erraggy/xutil/xuerrors"
)

// DefaultFontSize is the browser default font size in pixels.
const DefaultFontSize = 16

// CSSPrecision is the rounding precision of CSS length conversions.
const CSSPrecision = 4

// CSSKind selects the input unit of a CSS length conversion.
type CSSKind string

const (
	PxToRemEm CSSKind = "px-to-rem-em"
	RemToPxEm CSSKind = "rem-to-px-em"
	EmToPxRem CSSKind = "em-to-px-rem"
)

// CSSKinds lists the supported CSS conversion kinds.
func CSSKinds() []CSSKind {
	return []CSSKind{PxToRemEm, RemToPxEm, EmToPxRem}
}

// CSSResult holds a length expressed in px, rem and em.
type CSSResult struct {
	Px  float64 `json:"px" yaml:"px"`
	Rem float64 `json:"rem" yaml:"rem"`
	Em  float64 `json:"em" yaml:"em"`
}

// ConvertCSS converts a CSS length between px, rem and em. rem is relative to
// rootFontSize and em to parentFontSize. All inputs must be greater than zero.
// The input value is echoed unrounded.
func ConvertCSS(kind CSSKind, value, rootFontSize, parentFontSize float64) (CSSResult, error) {
	for _, f := range []struct {
		name string
		v    float64
	}{{"value", value}, {"root_font_size", rootFontSize}, {"parent_font_size", parentFontSize}} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return CSSResult{}, &xuerrors.ValueError{Kind: xuerrors.NonFinite, Domain: "css", Value: f.v,
				Message: f.name + " must be a finite number"}
		}
		if f.v <= 0 {
			return CSSResult{}, &xuerrors.ValueError{Kind: xuerrors.OutOfDomain, Domain: "css", Value: f.v,
				Message: f.name + " must be greater than zero"}
		}
	}

	switch kind {
	case PxToRemEm:
		return CSSResult{
			Px:  value,
			Rem: round(value/rootFontSize, CSSPrecision),
			Em:  round(value/parentFontSize, CSSPrecision),
		}, nil
	case RemToPxEm:
		px := value * rootFontSize
		return CSSResult{
			Px:  round(px, CSSPrecision),
			Rem: value,
			Em:  round(px/parentFontSize, CSSPrecision),
		}, nil
	case EmToPxRem:
		px := value * parentFontSize
		return CSSResult{
			Px:  round(px, CSSPrecision),
			Rem: round(px/rootFontSize, CSSPrecision),
			Em:  value,
		}, nil
	default:
		return CSSResult{}, &xuerrors.InputError{
			Field:   "conversion_type",
			Message: fmt.Sprintf("unsupported conversion %q, expected one of %v", kind, CSSKinds()),
		}
	}
}
