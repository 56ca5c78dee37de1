package unitconv

import "math"

// TemperaturePrecision is the rounding precision of the temperature domain.
const TemperaturePrecision = 4

// Angle converts through radians.
var Angle = mustDomain("angle", "rad", []Unit{
	{Name: "deg", Factor: math.Pi / 180},
	{Name: "rad", Factor: 1},
	{Name: "grad", Factor: math.Pi / 200},
	{Name: "arcmin", Factor: math.Pi / 10800},
	{Name: "arcsec", Factor: math.Pi / 648000},
	{Name: "turn", Factor: 2 * math.Pi},
}, WithTitle("Angle"))

// Area converts through square metres. Zero is accepted.
var Area = mustDomain("area", "m2", []Unit{
	{Name: "m2", Factor: 1},
	{Name: "km2", Factor: 1e6},
	{Name: "ft2", Factor: 0.09290304},
	{Name: "yd2", Factor: 0.83612736},
	{Name: "acre", Factor: 4046.8564224},
	{Name: "hectare", Factor: 10000, Aliases: []string{"ha"}},
}, WithTitle("Area"), WithConstraint(NonNegative))

// BitByte converts through bits. Unit names are case-sensitive so that
// kilobits (Kb) and kilobytes (KB) stay distinct.
var BitByte = mustDomain("bit-byte", "Bit", []Unit{
	{Name: "Bit", Factor: 1},
	{Name: "Byte", Factor: 8},
	{Name: "Kb", Factor: 1 << 10},
	{Name: "KB", Factor: 8 << 10},
	{Name: "Mb", Factor: 1 << 20},
	{Name: "MB", Factor: 8 << 20},
	{Name: "Gb", Factor: 1 << 30},
	{Name: "GB", Factor: 8 << 30},
	{Name: "Tb", Factor: 1 << 40},
	{Name: "TB", Factor: 8 << 40},
	{Name: "Pb", Factor: 1 << 50},
	{Name: "PB", Factor: 8 << 50},
}, WithTitle("Bit / Byte"), WithCaseSensitiveUnits())

// Energy converts through joules.
var Energy = mustDomain("energy", "j", []Unit{
	{Name: "j", Factor: 1},
	{Name: "kj", Factor: 1000},
	{Name: "cal", Factor: 4.184},
	{Name: "kcal", Factor: 4184},
	{Name: "wh", Factor: 3600},
	{Name: "kwh", Factor: 3.6e6},
	{Name: "ev", Factor: 1.602176634e-19},
	{Name: "btu", Factor: 1055.05585262},
}, WithTitle("Energy"))

// Frequency converts through hertz.
var Frequency = mustDomain("frequency", "hz", []Unit{
	{Name: "hz", Factor: 1},
	{Name: "khz", Factor: 1e3},
	{Name: "mhz", Factor: 1e6},
	{Name: "ghz", Factor: 1e9},
	{Name: "rpm", Factor: 1.0 / 60},
}, WithTitle("Frequency"))

// FuelEconomy converts through kilometres per litre. Litres per 100 km is an
// inverse unit: a higher value means worse economy.
var FuelEconomy = mustDomain("fuel-economy", "km_l", []Unit{
	{Name: "mpg_us", Factor: 0.425144},
	{Name: "mpg_uk", Factor: 0.354006},
	{Name: "km_l", Factor: 1},
	{Name: "l_100km", Factor: 100, Inverse: true},
}, WithTitle("Fuel Economy"))

// Length converts through metres.
var Length = mustDomain("length", "m", []Unit{
	{Name: "mm", Factor: 0.001},
	{Name: "cm", Factor: 0.01},
	{Name: "m", Factor: 1},
	{Name: "km", Factor: 1000},
	{Name: "inch", Factor: 0.0254, Aliases: []string{"in"}},
	{Name: "ft", Factor: 0.3048},
	{Name: "yd", Factor: 0.9144},
	{Name: "mi", Factor: 1609.344},
	{Name: "nm", Factor: 1852},
}, WithTitle("Length"))

// Power converts through watts.
var Power = mustDomain("power", "w", []Unit{
	{Name: "w", Factor: 1},
	{Name: "kw", Factor: 1000},
	{Name: "hp_metric", Factor: 735.49875},
	{Name: "hp_imperial", Factor: 745.69987158227022},
	{Name: "mw", Factor: 1e6},
	{Name: "ft_lb_s", Factor: 1.3558179483314004},
}, WithTitle("Power"))

// Pressure converts through pascals.
var Pressure = mustDomain("pressure", "pa", []Unit{
	{Name: "pa", Factor: 1},
	{Name: "kpa", Factor: 1000},
	{Name: "atm", Factor: 101325},
	{Name: "bar", Factor: 100000},
	{Name: "mbar", Factor: 100},
	{Name: "psi", Factor: 6894.757293168},
	{Name: "mmhg", Factor: 133.322387415},
	{Name: "torr", Factor: 133.322387415},
}, WithTitle("Pressure"))

// Speed converts through metres per second.
var Speed = mustDomain("speed", "m_s", []Unit{
	{Name: "m_s", Factor: 1},
	{Name: "km_h", Factor: 1000.0 / 3600},
	{Name: "mph", Factor: 0.44704},
	{Name: "ft_s", Factor: 0.3048},
	{Name: "kn", Factor: 1852.0 / 3600},
}, WithTitle("Speed"))

// Temperature converts through kelvin with affine units. Values below
// absolute zero are rejected.
var Temperature = mustDomain("temperature", "kelvin", []Unit{
	{Name: "celsius", Factor: 1, Offset: 273.15, Aliases: []string{"c"}},
	{Name: "fahrenheit", Factor: 5.0 / 9, Offset: 459.67, Aliases: []string{"f"}},
	{Name: "kelvin", Factor: 1, Aliases: []string{"k"}},
}, WithTitle("Temperature"), WithConstraint(AboveAbsoluteZero), WithPrecision(TemperaturePrecision))

// Time converts through seconds. Months and years are Gregorian averages.
var Time = mustDomain("time", "s", []Unit{
	{Name: "ns", Factor: 1e-9},
	{Name: "μs", Factor: 1e-6, Aliases: []string{"us"}},
	{Name: "ms", Factor: 1e-3},
	{Name: "s", Factor: 1},
	{Name: "min", Factor: 60},
	{Name: "hr", Factor: 3600},
	{Name: "day", Factor: 86400},
	{Name: "week", Factor: 604800},
	{Name: "month", Factor: 2629746},
	{Name: "year", Factor: 31556952},
	{Name: "decade", Factor: 315569520},
	{Name: "century", Factor: 3155695200},
}, WithTitle("Time"))

// Volume converts through litres.
var Volume = mustDomain("volume", "l", []Unit{
	{Name: "m3", Factor: 1000},
	{Name: "cm3", Factor: 0.001},
	{Name: "l", Factor: 1},
	{Name: "ml", Factor: 0.001},
	{Name: "ft3", Factor: 28.316846592},
	{Name: "in3", Factor: 0.016387064},
	{Name: "gal", Factor: 3.785411784},
	{Name: "qt", Factor: 0.946352946},
	{Name: "pt", Factor: 0.473176473},
	{Name: "fl_oz", Factor: 0.0295735295625},
}, WithTitle("Volume"))

// Weight converts through grams.
var Weight = mustDomain("weight", "g", []Unit{
	{Name: "mg", Factor: 0.001},
	{Name: "g", Factor: 1},
	{Name: "kg", Factor: 1000},
	{Name: "t", Factor: 1e6},
	{Name: "oz", Factor: 28.349523125},
	{Name: "lb", Factor: 453.59237},
	{Name: "st", Factor: 6350.29318},
}, WithTitle("Weight"))
