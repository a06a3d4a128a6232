package stats

import (
	"time"

	"go.uber.org/zap"

	"github.com/notaneet/roomstats/config"
	"github.com/notaneet/roomstats/model"
	"github.com/notaneet/roomstats/parser"
	"github.com/notaneet/roomstats/utils"
)

// Stats both projections of one grid snapshot
type Stats struct {
	Rooms    *RoomTable    `json:"roomStats"`
	Programs *ProgramStats `json:"programStats"`
}

// GetStats filters grid to [start, end], parses it and folds the programs.
// The grid is not modified; equal input gives equal stats.
func GetStats(p *parser.Parser, grid model.Grid, start, end time.Time) (*Stats, error) {
	data := parser.FilterRange(grid, start, end)

	programs, err := p.ParseGrid(data)
	if err != nil {
		return nil, err
	}
	return Collect(p.RoomNames(grid.Headers()), programs)
}

// Collect folds already parsed programs
func Collect(rooms []string, programs []model.Program) (*Stats, error) {
	roomStats, err := GetRoomStats(rooms, programs)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Debug("room stats", zap.Any("stats", roomStats))

	programStats, err := GetProgramStats(config.Regions, programs)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Debug("program stats", zap.Any("stats", programStats))

	return &Stats{Rooms: roomStats, Programs: programStats}, nil
}
