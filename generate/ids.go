package generate

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/erraggy/xutil/xuerrors"
)

// Bulk bounds for UUIDs and ULIDs.
const (
	MinBulk = 1
	MaxBulk = 1000
)

func checkCount(count int) error {
	if count < MinBulk || count > MaxBulk {
		return xuerrors.Input("count", "count must be between %d and %d", MinBulk, MaxBulk)
	}
	return nil
}

// UUID returns a random version 4 UUID in canonical form.
func UUID() string {
	return uuid.NewString()
}

// UUIDs returns count random version 4 UUIDs.
func UUIDs(count int) ([]string, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	out := make([]string, count)
	for i := range out {
		out[i] = uuid.NewString()
	}
	return out, nil
}

// ULID returns a new ULID for the current time.
func ULID() string {
	return ulid.Make().String()
}

// ULIDs returns count ULIDs that sort in generation order.
func ULIDs(count int) ([]string, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	entropy := ulid.Monotonic(rand.Reader, 0)
	out := make([]string, count)
	for i := range out {
		id, err := ulid.New(ulid.Now(), entropy)
		if err != nil {
			// The monotonic reader overflows only after 2^80 ids in one ms.
			return nil, err
		}
		out[i] = id.String()
	}
	return out, nil
}

// ULIDTime returns the UTC time encoded in a ULID, with millisecond precision.
func ULIDTime(s string) (time.Time, error) {
	id, err := ulid.ParseStrict(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, &xuerrors.InputError{Field: "ulid", Message: "invalid ULID string", Cause: err}
	}
	return ulid.Time(id.Time()).UTC(), nil
}
