package timeconv

import (
	"math"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/erraggy/xutil/xuerrors"
)

// Layouts used for input and output.
const (
	DateTimeLayout = time.DateTime
	ZonedLayout    = "2006-01-02 15:04:05 MST"
	isoLayout      = "2006-01-02T15:04:05-07:00"
)

// Bounds of representable Unix timestamps (years 1 through 9999).
var (
	MinUnix = time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	MaxUnix = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC).Unix()
)

// UnixTime pairs a Unix timestamp with its UTC date-time.
type UnixTime struct {
	DatetimeUTC string `json:"datetime_utc" yaml:"datetime_utc"`
	Timestamp   int64  `json:"timestamp" yaml:"timestamp"`
}

func unixTime(t time.Time) UnixTime {
	t = t.UTC()
	return UnixTime{DatetimeUTC: t.Format(isoLayout), Timestamp: t.Unix()}
}

// UnixToUTC formats a Unix timestamp in seconds as an ISO 8601 UTC date-time
// with a "+00:00" offset.
func UnixToUTC(ts int64) (UnixTime, error) {
	if ts < MinUnix || ts > MaxUnix {
		return UnixTime{}, xuerrors.Input("timestamp", "invalid timestamp: %d is outside years 1 to 9999", ts)
	}
	return unixTime(time.Unix(ts, 0)), nil
}

// UnixFloatToUTC is UnixToUTC for fractional timestamps; the fraction is
// truncated.
func UnixFloatToUTC(ts float64) (UnixTime, error) {
	if math.IsNaN(ts) || math.IsInf(ts, 0) || ts < float64(MinUnix) || ts > float64(MaxUnix) {
		return UnixTime{}, xuerrors.Input("timestamp", "invalid timestamp: %v", ts)
	}
	return UnixToUTC(int64(ts))
}

// UTCToUnix parses "YYYY-MM-DD HH:MM:SS" as UTC.
func UTCToUnix(datetime string) (UnixTime, error) {
	t, err := time.Parse(DateTimeLayout, strings.TrimSpace(datetime))
	if err != nil {
		return UnixTime{}, &xuerrors.InputError{
			Field:   "datetime_utc",
			Message: "invalid datetime format, use 'YYYY-MM-DD HH:MM:SS'",
			Cause:   err,
		}
	}
	return unixTime(t), nil
}

// ZoneResult is a date-time converted to another zone.
type ZoneResult struct {
	Result string    `json:"result" yaml:"result"`
	Time   time.Time `json:"-" yaml:"-"`
}

func loadZone(field, name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "local") {
		return nil, xuerrors.Input(field, "unknown time zone %q", name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, &xuerrors.InputError{Field: field, Message: "unknown time zone " + name, Cause: err}
	}
	return loc, nil
}

// ConvertTimezone reads datetime ("YYYY-MM-DD HH:MM:SS") as wall-clock time in
// zone from and returns the same instant in zone to, formatted as
// "YYYY-MM-DD HH:MM:SS ZONE". Wall-clock times skipped or repeated by a
// daylight saving transition are rejected.
func ConvertTimezone(datetime, from, to string) (ZoneResult, error) {
	wall, err := time.Parse(DateTimeLayout, strings.TrimSpace(datetime))
	if err != nil {
		return ZoneResult{}, &xuerrors.InputError{
			Field:   "datetime_str",
			Message: "invalid datetime format, use 'YYYY-MM-DD HH:MM:SS'",
			Cause:   err,
		}
	}
	src, err := loadZone("from_timezone", from)
	if err != nil {
		return ZoneResult{}, err
	}
	dst, err := loadZone("to_timezone", to)
	if err != nil {
		return ZoneResult{}, err
	}

	t, err := localize(wall, src)
	if err != nil {
		return ZoneResult{}, err
	}
	out := t.In(dst)
	return ZoneResult{Result: out.Format(ZonedLayout), Time: out}, nil
}

// localize interprets the wall clock of w (a UTC time) in loc. It fails when
// the wall clock does not exist in loc or maps to more than one instant.
func localize(w time.Time, loc *time.Location) (time.Time, error) {
	wallSec := w.Unix()

	// Offsets in force a day either side cover any single transition.
	offsets := make(map[int]struct{}, 3)
	for _, d := range []int64{-86400, 0, 86400} {
		_, off := time.Unix(wallSec+d, 0).In(loc).Zone()
		offsets[off] = struct{}{}
	}

	var matches []time.Time
	for off := range offsets {
		t := time.Unix(wallSec-int64(off), 0).In(loc)
		if _, got := t.Zone(); got == off {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 0:
		return time.Time{}, &xuerrors.InputError{
			Field:   "datetime_str",
			Message: "non-existent time (DST transition), please specify a valid time",
		}
	case 1:
		return matches[0], nil
	default:
		return time.Time{}, &xuerrors.InputError{
			Field:   "datetime_str",
			Message: "ambiguous time (DST transition), please specify a non-ambiguous time",
		}
	}
}
