package config

import (
	"fmt"
	"time"

	"github.com/notaneet/roomstats/utils"
)

// SplitMode how a cell is cut into event blocks
type SplitMode string

const (
	// SplitMarker a separator line holds only whitespace and an optional "&"
	SplitMarker SplitMode = "marker"
	// SplitBlank legacy sheets, a separator line holds only whitespace
	SplitBlank SplitMode = "blank"
)

// DefaultSheet tab that holds the calendar grid
const DefaultSheet = "Calendar"

type ParserConfig struct {
	RoomMatcher Matcher

	Source    string
	Sheet     string
	SplitMode SplitMode

	Interval string

	// Resolved from Interval by Init
	StartTime *time.Time
	EndTime   *time.Time
}

func (cfg *ParserConfig) Init() error {
	if cfg.Sheet == "" {
		cfg.Sheet = DefaultSheet
	}
	switch cfg.SplitMode {
	case "":
		cfg.SplitMode = SplitMarker
	case SplitMarker, SplitBlank:
	default:
		return fmt.Errorf("unknown split mode %q", cfg.SplitMode)
	}

	if err := cfg.RoomMatcher.Compile(); err != nil {
		return err
	}

	if cfg.Interval != "" && cfg.StartTime == nil && cfg.EndTime == nil {
		var err error
		cfg.StartTime, cfg.EndTime, err = utils.GetInterval(cfg.Interval)
		if err != nil {
			return err
		}
	}
	return nil
}

// Range the inclusive day range, open ends become the zero time and the far future
func (cfg *ParserConfig) Range() (start, end time.Time) {
	end = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.Local)
	if cfg.StartTime != nil {
		start = *cfg.StartTime
	}
	if cfg.EndTime != nil {
		end = *cfg.EndTime
	}
	return start, end
}
