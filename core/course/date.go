package course

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-module/carbon/v2"
)

// accepted layouts for session dates, values without an offset are UTC
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
	time.RFC3339Nano,
	"2006-01-02",
}

// ParseDate parses a session date in any of the accepted layouts and
// returns it in UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range dateLayouts {
		c := carbon.ParseByLayout(value, layout, carbon.UTC)
		if c.Error == nil {
			return c.Carbon2Time(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date %q, expected formats: 2006-01-02T15:04:05, RFC 3339 or 2006-01-02", value)
}
