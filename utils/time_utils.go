package utils

import (
	"fmt"
	"strings"
	"time"
)

// IntervalLayout day format of the -interval flag
const IntervalLayout = "02.01.2006"

// Layouts accepted for the date column of a calendar grid
var dateLayouts = []string{
	"2006-01-02",
	IntervalLayout,
	"01/02/2006",
	"1/2/2006",
	time.RFC3339,
	"2006-01-02 15:04:05",
	// Date.toString() of spreadsheet exports
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	"Mon Jan 02 2006",
}

// GetInterval parses "dd.mm.yyyy[-dd.mm.yyyy]". Either side may be omitted.
func GetInterval(str string) (f *time.Time, s *time.Time, err error) {
	if str == "" {
		return nil, nil, nil
	}

	spl := strings.SplitN(str, "-", 2)
	if spl[0] != "" {
		fS, err := time.ParseInLocation(IntervalLayout, strings.TrimSpace(spl[0]), time.Local)
		if err != nil {
			return nil, nil, fmt.Errorf("interval start: %w", err)
		}
		f = &fS
	}
	if len(spl) > 1 && spl[1] != "" {
		sS, err := time.ParseInLocation(IntervalLayout, strings.TrimSpace(spl[1]), time.Local)
		if err != nil {
			return nil, nil, fmt.Errorf("interval end: %w", err)
		}
		s = &sS
	}
	if f != nil && s != nil && s.Before(*f) {
		return nil, nil, fmt.Errorf("interval end %s is before start %s", spl[1], spl[0])
	}
	return f, s, nil
}

// ParseDate reads a grid date cell, ok is false for anything that is not a date
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	// Drop the "(Zone Name)" suffix of Date.toString()
	if i := strings.Index(value, " ("); i > 0 {
		value = value[:i]
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
