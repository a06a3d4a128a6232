package report

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/notaneet/roomstats/config"
	"github.com/notaneet/roomstats/model"
	"github.com/notaneet/roomstats/stats"
	"github.com/notaneet/roomstats/utils"
)

// ProgramCountReport estimated program instances per region and language.
// A live program spans several sessions, so counts are divided by the
// expected sessions of the type. A non-empty regionFilter keeps that region
// only and drops the Region column.
func ProgramCountReport(s *stats.ProgramStats, tax *config.Taxonomy, regionFilter string) model.Table {
	types := tax.ProgramNames()
	header := append([]any{"Region", "Language"}, toAny(types)...)
	table := model.Table{header}

	for _, region := range s.Regions {
		if regionFilter != "" && region != regionFilter {
			continue
		}

		type countRow struct {
			cells []any
			sum   int
		}
		var rows []countRow
		for _, lang := range s.Languages(region) {
			r := countRow{cells: []any{region, lang}}
			for _, typ := range types {
				v := 0
				if b, ok := s.Bucket(region, lang, typ); ok {
					v = round(float64(b.Count) / float64(tax.SessionsPerProgram(typ)))
				}
				r.sum += v
				r.cells = append(r.cells, v)
			}
			rows = append(rows, r)
		}

		sort.SliceStable(rows, func(i, j int) bool { return rows[i].sum > rows[j].sum })
		for _, r := range rows {
			table = append(table, blankZeros(r.cells))
		}
	}

	if regionFilter != "" {
		for i, row := range table {
			table[i] = row[1:]
		}
	}

	utils.GetLogger().Debug("program count report", zap.Any("table", table))
	return table
}

// ProgramHourReport hours per region and program type, languages summed
func ProgramHourReport(s *stats.ProgramStats, tax *config.Taxonomy) model.Table {
	types := tax.ProgramNames()
	header := append([]any{"Region"}, toAny(types)...)
	table := model.Table{header}

	for _, region := range s.Regions {
		row := []any{region}
		for _, typ := range types {
			hours := 0
			for _, lang := range s.Languages(region) {
				if b, ok := s.Bucket(region, lang, typ); ok {
					// rounded per language, then summed
					hours += round(float64(b.Min) / 60)
				}
			}
			row = append(row, hours)
		}
		table = append(table, blankZeros(row))
	}

	utils.GetLogger().Debug("program hour report", zap.Any("table", table))
	return table
}

// round half up, inputs are never negative
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

func blankZeros(row []any) []any {
	for i, v := range row {
		if n, ok := v.(int); ok && n == 0 {
			row[i] = ""
		}
	}
	return row
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
