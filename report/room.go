package report

import (
	"go.uber.org/zap"

	"github.com/notaneet/roomstats/model"
	"github.com/notaneet/roomstats/stats"
	"github.com/notaneet/roomstats/utils"
)

// Room report rows
const (
	MetricDaysUsed    = "Days Used"
	MetricLiveCount   = "Live Count"
	MetricDryRunCount = "Dry Run Count"
	MetricLiveHours   = "Live Hours"
	MetricDryRunHours = "Dry Run Hours"
)

var roomMetrics = []struct {
	name  string
	value func(stats.RoomStats) int
}{
	{MetricDaysUsed, func(s stats.RoomStats) int { return s.DaysUsed }},
	{MetricLiveCount, func(s stats.RoomStats) int { return s.LiveCount }},
	{MetricDryRunCount, func(s stats.RoomStats) int { return s.DryRunCount }},
	// hours are truncated, not rounded
	{MetricLiveHours, func(s stats.RoomStats) int { return s.LiveMin / 60 }},
	{MetricDryRunHours, func(s stats.RoomStats) int { return s.DryRunMin / 60 }},
}

// RoomReport one column per room, one row per metric. Zeros stay 0.
func RoomReport(rooms *stats.RoomTable) model.Table {
	header := []any{""}
	for _, room := range rooms.Rooms {
		header = append(header, room)
	}
	table := model.Table{header}

	for _, metric := range roomMetrics {
		row := []any{metric.name}
		for _, room := range rooms.Rooms {
			row = append(row, metric.value(rooms.Get(room)))
		}
		table = append(table, row)
	}

	utils.GetLogger().Debug("room report", zap.Any("table", table))
	return table
}
