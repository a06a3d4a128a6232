package converter

import (
	"fmt"

	"github.com/tealeg/xlsx/v3"

	"github.com/notaneet/roomstats/model"
)

// Excel caps sheet names at 31 characters
const maxSheetName = 31

// XLSXConverter one sheet per report
type XLSXConverter struct{}

func (x XLSXConverter) Write(set model.ReportSet, out string) error {
	if out == "" {
		return fmt.Errorf("-output can not be empty")
	}

	wb := xlsx.NewFile()
	for _, r := range set.Reports {
		name := r.Name
		if len(name) > maxSheetName {
			name = name[:maxSheetName]
		}
		sh, err := wb.AddSheet(name)
		if err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}

		for _, row := range r.Table {
			xr := sh.AddRow()
			for _, v := range row {
				c := xr.AddCell()
				switch val := v.(type) {
				case int:
					c.SetInt(val)
				case string:
					c.SetString(val)
				default:
					c.SetString(fmt.Sprint(val))
				}
			}
		}
	}

	return wb.Save(out)
}
