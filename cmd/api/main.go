package main

import (
	"log"

	"github.com/joho/godotenv"

	"chartcore/adapters/excel"
	"chartcore/adapters/geojson"
	"chartcore/adapters/postgres"
	"chartcore/adapters/statsapi"
	"chartcore/app"
	"chartcore/internal"
	"chartcore/internal/config"
	"chartcore/ports"
	"chartcore/ui"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := internal.NewDefaultLogger()

	source, err := buildSource(cfg, logger)
	if err != nil {
		log.Fatalf("record source: %v", err)
	}

	var remote ports.StatsService
	if cfg.Remote.StatsURL != "" {
		remote = statsapi.NewClient(cfg.Remote.StatsURL, nil)
	}

	notifier := app.NewLogNotifier(logger)
	charts := app.NewChartService(source, notifier, logger, cfg.Data.RecordLimit)
	stats := app.NewStatsService(remote, source, logger)
	geo := app.NewGeoService(source, geojson.NewLoader(nil), logger, cfg.Data.RecordLimit, cfg.Remote.GeographyURL)

	server := ui.NewServer(charts, stats, geo, logger)
	if err := server.ListenAndServe(cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func buildSource(cfg *config.Config, logger *internal.Logger) (ports.RecordSource, error) {
	if cfg.Database.URL != "" {
		logger.Info("using postgres record source")
		return postgres.Open(cfg.Database.URL)
	}
	logger.Info("using file record source: %s", cfg.Data.DataFile)
	return excel.NewRecordSource(cfg.Data.DataFile), nil
}
