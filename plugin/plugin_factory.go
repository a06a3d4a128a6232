package plugin

import (
	"github.com/notaneet/roomstats/config"
	"github.com/notaneet/roomstats/plugin/web"
	"github.com/notaneet/roomstats/plugin/xlsx"
)

func NewPlugin(name string, cfg config.ParserConfig) Plugin {
	switch name {
	case xlsx.Name:
		return xlsx.GetPlugin(cfg)
	case web.Name:
		return web.GetPlugin(cfg)
	default:
		return nil
	}
}
