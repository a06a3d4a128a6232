package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/notaneet/roomstats/config"
	"github.com/notaneet/roomstats/converter"
	"github.com/notaneet/roomstats/parser"
	"github.com/notaneet/roomstats/plugin"
	"github.com/notaneet/roomstats/report"
	"github.com/notaneet/roomstats/stats"
	"github.com/notaneet/roomstats/utils"
)

func main() {
	var cfg = config.ParserConfig{}
	var reports utils.StringEnum

	flag.Var(&cfg.RoomMatcher.MatchRaw, "room", "Rooms to report (exact name or ~regexp, repeatable)")
	flag.StringVar(&cfg.Interval, "interval", "", "Days to report [dd.mm.yyyy[-dd.mm.yyyy]]")
	flag.StringVar(&cfg.Source, "source", "", "Workbook path or URL")
	flag.StringVar(&cfg.Sheet, "sheet", config.DefaultSheet, "Sheet that holds the calendar")
	flag.StringVar((*string)(&cfg.SplitMode), "split", string(config.SplitMarker), "Event separator in cells [marker|blank]")
	flag.Var(&reports, "report", "Reports to build [room,count,hours], all by default")

	var (
		output,
		pluginName,
		converterName,
		taxonomyPath,
		region string
		debug bool
	)

	flag.StringVar(&output, "output", "", "Where the result is written, stdout for the text converter")
	flag.StringVar(&pluginName, "plugin", "xlsx", "Grid source [xlsx|web]")
	flag.StringVar(&converterName, "converter", "text", "Output type [text|json|pjson|xlsx|pgsql]")
	flag.StringVar(&taxonomyPath, "taxonomy", "", "YAML file with programs and languages")
	flag.StringVar(&region, "region", "", "Limit the program count report to one region")
	flag.BoolVar(&debug, "debug", false, "Log parsed stats and tables")

	flag.Parse()

	if cfg.Source == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := utils.InitializeLogger(debug); err != nil {
		fmt.Println("Logger init failed, ", err)
		os.Exit(1)
	}
	log := utils.GetLogger()
	defer log.Sync()

	if err := run(cfg, reports, pluginName, converterName, taxonomyPath, region, output); err != nil {
		log.Error("report failed", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

func run(cfg config.ParserConfig, reports []string, pluginName, converterName, taxonomyPath, region, output string) error {
	if err := cfg.Init(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	kinds, err := report.ParseKinds(reports)
	if err != nil {
		return err
	}

	tax, err := config.LoadTaxonomy(taxonomyPath)
	if err != nil {
		return err
	}

	p, err := parser.NewParser(&cfg, tax)
	if err != nil {
		return err
	}

	plug := plugin.NewPlugin(pluginName, cfg)
	if plug == nil {
		return fmt.Errorf("plugin %s not found", pluginName)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	grid, err := plug.GetGrid(ctx)
	if err != nil {
		return fmt.Errorf("read grid: %w", err)
	}

	start, end := cfg.Range()
	s, err := stats.GetStats(p, grid, start, end)
	if err != nil {
		return fmt.Errorf("parse grid: %w", err)
	}

	var from, to time.Time
	if cfg.StartTime != nil {
		from = *cfg.StartTime
	}
	if cfg.EndTime != nil {
		to = *cfg.EndTime
	}
	set := report.Build(s, tax, kinds, region, from, to)

	utils.GetLogger().Info("reports built",
		zap.String("plugin", plug.GetName()),
		zap.Int("rows", len(grid)),
		zap.Int("rooms", len(s.Rooms.Rooms)),
		zap.Int("reports", len(set.Reports)),
	)

	if err := converter.Converter(converterName).Write(set, output); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
