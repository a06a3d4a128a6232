package xlsx

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"

	"github.com/notaneet/roomstats/config"
	"github.com/notaneet/roomstats/model"
)

func addRow(sh *xlsx.Sheet, values ...string) *xlsx.Row {
	row := sh.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
	return row
}

func calendar(t *testing.T) *xlsx.File {
	t.Helper()
	wb := xlsx.NewFile()
	sh, err := wb.AddSheet(config.DefaultSheet)
	require.NoError(t, err)

	addRow(sh, "Date", "Hall - AM", "Studio")

	dated := sh.AddRow()
	dated.AddCell().SetDate(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	dated.AddCell().SetString("Satsang\n9:00 - 10:00")
	dated.AddCell().SetString("")

	addRow(sh, "2024-03-02", "", "7 Day Ger\n18:00 - 19:00")
	return wb
}

func TestReadWorkbook(t *testing.T) {
	grid, err := ReadWorkbook(calendar(t), config.DefaultSheet)
	require.NoError(t, err)
	assert.Equal(t, model.Grid{
		{"Date", "Hall - AM", "Studio"},
		{"2024-03-01", "Satsang\n9:00 - 10:00", ""},
		{"2024-03-02", "", "7 Day Ger\n18:00 - 19:00"},
	}, grid)

	_, err = ReadWorkbook(calendar(t), "Schedule")
	assert.Error(t, err)
}

func TestReadSheetDropsTrailingEmptyRows(t *testing.T) {
	wb := xlsx.NewFile()
	sh, err := wb.AddSheet("Calendar")
	require.NoError(t, err)
	addRow(sh, "Date", "Hall")
	addRow(sh, "2024-03-01", "Satsang")
	addRow(sh, "", " ")
	addRow(sh, "")

	grid, err := ReadSheet(sh)
	require.NoError(t, err)
	assert.Equal(t, model.Grid{{"Date", "Hall"}, {"2024-03-01", "Satsang"}}, grid)
}

func TestReadSheetSkipsNonTextRoomCells(t *testing.T) {
	wb := xlsx.NewFile()
	sh, err := wb.AddSheet(config.DefaultSheet)
	require.NoError(t, err)
	addRow(sh, "Date", "Hall", "Studio", "Terrace")

	row := addRow(sh, "2024-03-01")
	row.AddCell().SetInt(42)
	row.AddCell().SetDate(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	row.AddCell().SetString("Satsang")

	grid, err := ReadSheet(sh)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-01", "", "", "Satsang"}, grid[1])
}

func TestPluginGetGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar.xlsx")
	require.NoError(t, calendar(t).Save(path))

	p := GetPlugin(config.ParserConfig{Source: path, Sheet: config.DefaultSheet})
	assert.Equal(t, Name, p.GetName())

	grid, err := p.GetGrid(context.Background())
	require.NoError(t, err)
	require.Len(t, grid, 3)
	assert.Equal(t, "2024-03-01", grid[1][0])
	assert.Equal(t, "Satsang\n9:00 - 10:00", grid[1][1])
	assert.Equal(t, "7 Day Ger\n18:00 - 19:00", grid[2][2])
}

func TestPluginGetGridErrors(t *testing.T) {
	_, err := GetPlugin(config.ParserConfig{}).GetGrid(context.Background())
	assert.Error(t, err)

	_, err = GetPlugin(config.ParserConfig{Source: filepath.Join(t.TempDir(), "missing.xlsx")}).GetGrid(context.Background())
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = GetPlugin(config.ParserConfig{Source: "calendar.xlsx"}).GetGrid(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
