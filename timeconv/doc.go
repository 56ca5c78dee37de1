// Package timeconv converts between Unix timestamps, UTC date-times and IANA
// time zones.
//
// Zone data is embedded in the binary, so conversions do not depend on the
// host's zoneinfo database.
package timeconv
