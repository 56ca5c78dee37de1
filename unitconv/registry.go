package unitconv

import (
	"strings"

	"github.com/erraggy/xutil/xuerrors"
)

var registry = []*Domain{
	Angle,
	Area,
	BitByte,
	Energy,
	Frequency,
	FuelEconomy,
	Length,
	Power,
	Pressure,
	Speed,
	Temperature,
	Time,
	Volume,
	Weight,
}

var byName = func() map[string]*Domain {
	m := make(map[string]*Domain, len(registry))
	for _, d := range registry {
		m[d.name] = d
	}
	return m
}()

// Domains returns the built-in domains in alphabetical order.
func Domains() []*Domain {
	return append([]*Domain(nil), registry...)
}

// Names returns the names of the built-in domains.
func Names() []string {
	names := make([]string, len(registry))
	for i, d := range registry {
		names[i] = d.name
	}
	return names
}

// Lookup finds a built-in domain by name. Underscores are accepted in place
// of hyphens, so "fuel_economy" resolves to "fuel-economy".
func Lookup(name string) (*Domain, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	d, ok := byName[key]
	return d, ok
}

// Convert looks up the named domain and converts value in unit.
func Convert(domain string, value float64, unit string) (Result, error) {
	d, ok := Lookup(domain)
	if !ok {
		return Result{}, &xuerrors.InputError{
			Field:   "domain",
			Message: "unknown domain " + domain + ". Supported domains: " + strings.Join(Names(), ", "),
		}
	}
	return d.Convert(value, unit)
}
