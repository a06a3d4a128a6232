package model

import (
	"fmt"
	"regexp"
	"strconv"
)

var clockTimeRE = regexp.MustCompile(`^(\d{1,2})([:.]?(\d{1,2}))?$`)

// Start and end of a range; minutes are always two digits here
var timeRangeRE = regexp.MustCompile(`(\d{1,2}[:.]\d{2})\s*-\s*(\d{1,2}[:.]\d{2})`)

// ParseClockTime parses "9", "9:30" or "09.5" into hour and minute.
// There is no range check, "25:99" yields (25, 99).
func ParseClockTime(token string) (hour, minute int, err error) {
	m := clockTimeRE.FindStringSubmatch(token)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrParseFailure, token)
	}

	hour, _ = strconv.Atoi(m[1])
	if m[3] != "" {
		minute, _ = strconv.Atoi(m[3])
	}
	return hour, minute, nil
}

// ParseTimeRange returns the raw tokens of the first "HH:MM - HH:MM" in line.
// ok is false when line is not a time line.
func ParseTimeRange(line string) (start, end string, ok bool) {
	m := timeRangeRE.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
