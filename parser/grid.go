package parser

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/notaneet/roomstats/model"
	"github.com/notaneet/roomstats/utils"
)

// FilterRange keeps the header and the rows dated inside [start, end], by day.
// Rows whose first cell is not a date are dropped.
func FilterRange(grid model.Grid, start, end time.Time) model.Grid {
	headers := grid.Headers()
	if headers == nil {
		return nil
	}
	from, to := model.Day(start), model.Day(end)

	out := model.Grid{headers}
	for _, row := range grid.Rows() {
		date, ok := utils.ParseDate(utils.GetOrString(row, 0, ""))
		if !ok {
			continue
		}
		day := model.Day(date)
		if day.Before(from) || day.After(to) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// RoomNames canonical rooms of the header row in column order, duplicates and
// empty or unmatched headers left out
func (p *Parser) RoomNames(headers []string) []string {
	var rooms []string
	seen := map[string]bool{}
	for col := 1; col < len(headers); col++ {
		room, ok := p.roomAt(headers, col)
		if !ok || seen[room] {
			continue
		}
		seen[room] = true
		rooms = append(rooms, room)
	}
	return rooms
}

func (p *Parser) roomAt(headers []string, col int) (string, bool) {
	room := model.CanonicalRoom(utils.GetOrString(headers, col, ""))
	if room == "" || !p.rooms.Match(room) {
		return "", false
	}
	return room, true
}

// ParseGrid runs ParseCell over every room cell, row by row
func (p *Parser) ParseGrid(grid model.Grid) ([]model.Program, error) {
	headers := grid.Headers()
	programs := make([]model.Program, 0)

	for i, row := range grid.Rows() {
		rawDate := utils.GetOrString(row, 0, "")
		date, ok := utils.ParseDate(rawDate)
		if !ok {
			utils.GetLogger().Debug("row without date skipped", zap.Int("row", i+1), zap.String("value", rawDate))
			continue
		}

		for col := 1; col < len(row); col++ {
			room, ok := p.roomAt(headers, col)
			if !ok {
				continue
			}

			cell, err := p.ParseCell(row[col], date, room)
			if err != nil {
				return nil, fmt.Errorf("row %d (%s), column %d (%s): %w", i+1, rawDate, col, room, err)
			}
			programs = append(programs, cell...)
		}
	}

	utils.GetLogger().Debug("grid parsed", zap.Int("rows", len(grid.Rows())), zap.Int("programs", len(programs)))
	return programs, nil
}
