// Package cutoff turns a user-supplied point in time into a string bound
// that can be compared lexicographically against the API's fixed-width
// timestamps.
package cutoff

import (
	"fmt"
	"time"
)

// Tilde sorts after every character a timestamp can contain (digits and
// - : . T Z), so prefix+"~" is an inclusive upper bound for the whole
// period the prefix names.
const periodEnd = "~"

var periodLayouts = []string{
	"2006",
	"2006-01",
	"2006-01-02",
}

// Exact instants. time.Parse accepts trailing fractional seconds after a
// seconds element without them appearing in the layout.
var instantLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Normalize validates a cutoff string and returns the bound submissions are
// compared against. A bare year, year-month or date means the whole of that
// period; a full date-time is used as-is. "now" (the default) is the
// current UTC time.
func Normalize(s string) (string, error) {
	if s == "" || s == "now" {
		return time.Now().UTC().Format(time.RFC3339), nil
	}
	for _, layout := range periodLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return s + periodEnd, nil
		}
	}
	for _, layout := range instantLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return s, nil
		}
	}
	return "", fmt.Errorf(
		"unrecognised cutoff %q: accepted forms are YYYY, YYYY-MM, YYYY-MM-DD or a full date-time such as 2021-06-01T12:00, 2021-06-01T12:00:30.250 or 2021-06-01T12:00:30Z",
		s,
	)
}
