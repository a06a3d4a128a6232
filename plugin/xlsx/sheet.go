package xlsx

import (
	"fmt"
	"strings"

	"github.com/tealeg/xlsx/v3"

	"github.com/notaneet/roomstats/model"
)

// ReadWorkbook grid of the named sheet
func ReadWorkbook(wb *xlsx.File, sheet string) (model.Grid, error) {
	sh, ok := wb.Sheet[sheet]
	if !ok {
		return nil, fmt.Errorf("sheet %q not found", sheet)
	}
	return ReadSheet(sh)
}

// ReadSheet copies a sheet into a grid. Date cells become yyyy-mm-dd,
// trailing empty rows are dropped.
func ReadSheet(sh *xlsx.Sheet) (model.Grid, error) {
	grid := make(model.Grid, 0, sh.MaxRow)

	for row := 0; row < sh.MaxRow; row++ {
		values := make([]string, sh.MaxCol)
		for col := 0; col < sh.MaxCol; col++ {
			cell, err := sh.Cell(row, col)
			if err != nil {
				return nil, fmt.Errorf("cell %d:%d: %w", row, col, err)
			}
			values[col] = cellValue(cell, col)
		}
		grid = append(grid, values)
	}

	for len(grid) > 1 && isEmptyRow(grid[len(grid)-1]) {
		grid = grid[:len(grid)-1]
	}
	return grid, nil
}

func cellValue(cell *xlsx.Cell, col int) string {
	// Only the date column is read as a time, free text may look numeric
	if col == 0 && cell.IsTime() {
		if t, err := cell.GetTime(false); err == nil {
			return t.Format(model.DateLayout)
		}
	}
	if col > 0 {
		// room cells hold free text only, numbers and dates are not events
		switch cell.Type() {
		case xlsx.CellTypeString, xlsx.CellTypeStringFormula, xlsx.CellTypeInline:
		default:
			return ""
		}
	}
	return cell.String()
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
