package xlsx

import (
	"context"
	"fmt"

	"github.com/tealeg/xlsx/v3"
	"go.uber.org/zap"

	"github.com/notaneet/roomstats/config"
	"github.com/notaneet/roomstats/model"
	"github.com/notaneet/roomstats/utils"
)

// Name of the plugin in the factory
const Name = "xlsx"

type _XLSXPlugin struct {
	config config.ParserConfig
}

func GetPlugin(cfg config.ParserConfig) *_XLSXPlugin {
	return &_XLSXPlugin{config: cfg}
}

func (p _XLSXPlugin) GetName() string {
	return Name
}

// GetGrid reads the calendar sheet of a local workbook
func (p *_XLSXPlugin) GetGrid(ctx context.Context) (model.Grid, error) {
	if p.config.Source == "" {
		return nil, fmt.Errorf("-source can not be empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	wb, err := xlsx.OpenFile(p.config.Source)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", p.config.Source, err)
	}
	utils.GetLogger().Info("workbook opened", zap.String("source", p.config.Source), zap.Int("sheets", len(wb.Sheets)))

	return ReadWorkbook(wb, p.config.Sheet)
}
