package timeconv

import (
	_ "embed"
	"strings"
	"sync"
	"time"
)

// zoneNames is the list of zone and link names of the IANA tz database.
//
//go:embed zones.txt
var zoneNames string

var loadable = sync.OnceValue(func() []string {
	names := strings.Fields(zoneNames)
	out := names[:0]
	for _, name := range names {
		if _, err := time.LoadLocation(name); err == nil {
			out = append(out, name)
		}
	}
	return out
})

// Timezones returns the sorted IANA zone names this binary can load.
func Timezones() []string {
	return append([]string(nil), loadable()...)
}
