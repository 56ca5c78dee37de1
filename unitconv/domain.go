package unitconv

import (
	"fmt"
	"math"
	"strings"

	"github.com/erraggy/xutil/xuerrors"
)

// DefaultPrecision is the number of decimal places results are rounded to.
const DefaultPrecision = 8

// Constraint restricts the values a domain accepts.
type Constraint int

const (
	// Positive requires value > 0.
	Positive Constraint = iota
	// NonNegative requires value >= 0.
	NonNegative
	// AboveAbsoluteZero requires the canonical value to be >= 0.
	// It is meant for temperature domains whose canonical unit is Kelvin.
	AboveAbsoluteZero
)

// String returns the constraint name.
func (c Constraint) String() string {
	switch c {
	case Positive:
		return "positive"
	case NonNegative:
		return "non-negative"
	case AboveAbsoluteZero:
		return "above-absolute-zero"
	default:
		return fmt.Sprintf("Constraint(%d)", int(c))
	}
}

// Unit is a single member of a Domain.
type Unit struct {
	// Name is the unit key used in requests and results.
	Name string
	// Factor relates the unit to the canonical unit.
	// For plain units canonical = value * Factor.
	Factor float64
	// Offset is added to the value before applying Factor (affine units).
	Offset float64
	// Inverse marks units where canonical = Factor / value.
	Inverse bool
	// Aliases are alternative spellings accepted on input.
	Aliases []string
}

func (u Unit) toCanonical(v float64) float64 {
	if u.Inverse {
		return u.Factor / v
	}
	return (v + u.Offset) * u.Factor
}

func (u Unit) fromCanonical(c float64) float64 {
	if u.Inverse {
		return u.Factor / c
	}
	return c/u.Factor - u.Offset
}

// Domain is a closed set of mutually convertible units.
type Domain struct {
	name          string
	title         string
	canonical     string
	precision     int
	constraint    Constraint
	caseSensitive bool
	units         []Unit
	index         map[string]int
}

// DomainOption configures a Domain built by NewDomain.
type DomainOption func(*Domain)

// WithPrecision sets the number of decimal places results are rounded to.
func WithPrecision(places int) DomainOption {
	return func(d *Domain) {
		d.precision = places
	}
}

// WithConstraint sets the value constraint. The default is Positive.
func WithConstraint(c Constraint) DomainOption {
	return func(d *Domain) {
		d.constraint = c
	}
}

// WithCaseSensitiveUnits disables lower-casing of unit names on lookup.
func WithCaseSensitiveUnits() DomainOption {
	return func(d *Domain) {
		d.caseSensitive = true
	}
}

// WithTitle sets the human-readable domain title.
func WithTitle(title string) DomainOption {
	return func(d *Domain) {
		d.title = title
	}
}

// NewDomain builds a Domain from its units. The canonical unit must be one
// of units. Unit order is preserved in results.
func NewDomain(name, canonical string, units []Unit, opts ...DomainOption) (*Domain, error) {
	d := &Domain{
		name:      name,
		title:     name,
		canonical: canonical,
		precision: DefaultPrecision,
		units:     append([]Unit(nil), units...),
		index:     make(map[string]int, len(units)),
	}
	for _, opt := range opts {
		opt(d)
	}

	if name == "" {
		return nil, fmt.Errorf("unitconv: domain name is required")
	}
	if len(units) == 0 {
		return nil, fmt.Errorf("unitconv: domain %s has no units", name)
	}
	if d.precision < 0 || d.precision > 15 {
		return nil, fmt.Errorf("unitconv: domain %s: precision %d out of range", name, d.precision)
	}

	for i, u := range d.units {
		if u.Name == "" {
			return nil, fmt.Errorf("unitconv: domain %s: unit %d has no name", name, i)
		}
		if u.Factor == 0 || math.IsNaN(u.Factor) || math.IsInf(u.Factor, 0) {
			return nil, fmt.Errorf("unitconv: domain %s: unit %s has invalid factor %v", name, u.Name, u.Factor)
		}
		for _, key := range append([]string{u.Name}, u.Aliases...) {
			k := d.key(key)
			if _, dup := d.index[k]; dup {
				return nil, fmt.Errorf("unitconv: domain %s: duplicate unit %s", name, key)
			}
			d.index[k] = i
		}
	}

	c, ok := d.index[d.key(canonical)]
	if !ok {
		return nil, fmt.Errorf("unitconv: domain %s: canonical unit %s is not defined", name, canonical)
	}
	if cu := d.units[c]; cu.Inverse || cu.Offset != 0 || cu.Factor != 1 {
		return nil, fmt.Errorf("unitconv: domain %s: canonical unit %s must have factor 1", name, canonical)
	}
	d.canonical = d.units[c].Name

	return d, nil
}

func mustDomain(name, canonical string, units []Unit, opts ...DomainOption) *Domain {
	d, err := NewDomain(name, canonical, units, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Domain) key(unit string) string {
	unit = strings.TrimSpace(unit)
	if d.caseSensitive {
		return unit
	}
	return strings.ToLower(unit)
}

// Name returns the domain identifier, e.g. "fuel-economy".
func (d *Domain) Name() string { return d.name }

// Title returns the human-readable domain title.
func (d *Domain) Title() string { return d.title }

// Canonical returns the name of the canonical unit.
func (d *Domain) Canonical() string { return d.canonical }

// Precision returns the number of decimal places results are rounded to.
func (d *Domain) Precision() int { return d.precision }

// Constraint returns the value constraint of the domain.
func (d *Domain) Constraint() Constraint { return d.constraint }

// Units returns the unit names in declaration order.
func (d *Domain) Units() []string {
	names := make([]string, len(d.units))
	for i, u := range d.units {
		names[i] = u.Name
	}
	return names
}

// Resolve maps a unit name or alias to its declared name.
func (d *Domain) Resolve(unit string) (string, bool) {
	i, ok := d.index[d.key(unit)]
	if !ok {
		return "", false
	}
	return d.units[i].Name, true
}

func (d *Domain) lookup(unit string) (Unit, error) {
	i, ok := d.index[d.key(unit)]
	if !ok {
		return Unit{}, &xuerrors.UnitError{Domain: d.name, Unit: unit, Supported: d.Units()}
	}
	return d.units[i], nil
}

// canonicalValue validates value in unit u and returns the canonical value.
func (d *Domain) canonicalValue(value float64, u Unit) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &xuerrors.ValueError{
			Kind:    xuerrors.NonFinite,
			Domain:  d.name,
			Value:   value,
			Message: "value must be a finite number (not NaN or infinity)",
		}
	}

	switch d.constraint {
	case Positive:
		if value <= 0 {
			return 0, &xuerrors.ValueError{
				Kind: xuerrors.OutOfDomain, Domain: d.name, Value: value,
				Message: "value must be greater than zero",
			}
		}
	case NonNegative:
		if value < 0 {
			return 0, &xuerrors.ValueError{
				Kind: xuerrors.OutOfDomain, Domain: d.name, Value: value,
				Message: "value cannot be negative",
			}
		}
	}

	canonical := u.toCanonical(value)
	if math.IsNaN(canonical) || math.IsInf(canonical, 0) {
		return 0, &xuerrors.ValueError{
			Kind: xuerrors.Overflow, Domain: d.name, Value: value,
			Message: "conversion resulted in non-finite value (possible overflow)",
		}
	}

	if d.constraint == AboveAbsoluteZero && canonical < 0 {
		return 0, &xuerrors.ValueError{
			Kind: xuerrors.OutOfDomain, Domain: d.name, Value: value,
			Message: fmt.Sprintf("%v %s is below absolute zero", value, u.Name),
		}
	}
	return canonical, nil
}

func (d *Domain) derive(canonical, value float64, u Unit) (float64, error) {
	v := u.fromCanonical(canonical)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &xuerrors.ValueError{
			Kind: xuerrors.Overflow, Domain: d.name, Value: value,
			Message: fmt.Sprintf("value in %s is not representable (possible overflow)", u.Name),
		}
	}
	return round(v, d.precision), nil
}

// Convert converts value in unit to every unit of the domain.
func (d *Domain) Convert(value float64, unit string) (Result, error) {
	from, err := d.lookup(unit)
	if err != nil {
		return Result{}, err
	}
	canonical, err := d.canonicalValue(value, from)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Domain: d.name,
		From:   from.Name,
		Value:  value,
		units:  d.Units(),
		values: make([]float64, len(d.units)),
	}
	for i, u := range d.units {
		v, err := d.derive(canonical, value, u)
		if err != nil {
			return Result{}, err
		}
		res.values[i] = v
	}
	return res, nil
}

// ConvertBetween converts value from one unit to a single target unit.
// It agrees with Convert(value, from).Get(to).
func (d *Domain) ConvertBetween(value float64, from, to string) (float64, error) {
	src, err := d.lookup(from)
	if err != nil {
		return 0, err
	}
	dst, err := d.lookup(to)
	if err != nil {
		return 0, err
	}
	canonical, err := d.canonicalValue(value, src)
	if err != nil {
		return 0, err
	}
	return d.derive(canonical, value, dst)
}
