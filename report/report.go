package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/notaneet/roomstats/config"
	"github.com/notaneet/roomstats/model"
	"github.com/notaneet/roomstats/stats"
)

// Kind of report
type Kind string

const (
	KindRoom  Kind = "room"
	KindCount Kind = "count"
	KindHours Kind = "hours"
)

// AllKinds in the order they are produced
var AllKinds = []Kind{KindRoom, KindCount, KindHours}

// Report names used by converters
var reportNames = map[Kind]string{
	KindRoom:  "Room Report",
	KindCount: "Program Count Report",
	KindHours: "Program Hour Report",
}

// ParseKinds "room,hours" -> kinds, empty means all
func ParseKinds(values []string) ([]Kind, error) {
	if len(values) == 0 {
		return append([]Kind(nil), AllKinds...), nil
	}
	var kinds []Kind
	for _, v := range values {
		k := Kind(strings.ToLower(strings.TrimSpace(v)))
		if _, ok := reportNames[k]; !ok {
			return nil, fmt.Errorf("unknown report %q", v)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Build renders the requested reports of s
func Build(s *stats.Stats, tax *config.Taxonomy, kinds []Kind, regionFilter string, start, end time.Time) model.ReportSet {
	set := model.ReportSet{Start: start, End: end}
	for _, k := range kinds {
		var table model.Table
		switch k {
		case KindRoom:
			table = RoomReport(s.Rooms)
		case KindCount:
			table = ProgramCountReport(s.Programs, tax, regionFilter)
		case KindHours:
			table = ProgramHourReport(s.Programs, tax)
		default:
			continue
		}
		set.Reports = append(set.Reports, model.Report{Name: reportNames[k], Table: table})
	}
	return set
}
