package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"parts-analyzer/app"
	"parts-analyzer/config"
	"parts-analyzer/market"
	"parts-analyzer/models"
	"parts-analyzer/pricebook"
	"parts-analyzer/services"
	"parts-analyzer/storage"
	"parts-analyzer/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== eBay Car Parts Profit Analyzer starting ===")
	logger.Info("Config — prices: %s | saved: %s (%s) | filter: %s | pace: %dms",
		cfg.JunkyardPricesCSV, cfg.SavedPartsDB, cfg.SavedBackend, cfg.FilterMode, cfg.PaceMs)

	book := pricebook.New(cfg.JunkyardPricesCSV, logger)
	if book.Len() == 0 {
		logger.Warn("Junkyard price list is empty — analysis will find no priced parts")
	}

	var resolver market.Resolver
	if cfg.HasEbayCredentials() {
		resolver = market.NewEbayResolver(cfg, logger)
		logger.Info("eBay Finding API client ready (%s)", cfg.EbayEnvironment)
	} else {
		resolver = market.DemoResolver{}
		logger.Warn("eBay API credentials not configured — running in demo mode")
	}

	var saved storage.SavedStore
	if cfg.SavedBackend == "postgres" {
		pg, err := storage.NewPostgresStore(cfg.DSN(), logger)
		if err != nil {
			logger.Error("Failed to connect to PostgreSQL: %v", err)
			logger.Error("Make sure Docker is running: docker compose up -d")
			os.Exit(1)
		}
		saved = pg
	} else {
		saved = storage.NewJSONStore(cfg.SavedPartsDB, logger)
	}
	defer saved.Close()

	pacer := utils.NewPacer(time.Duration(cfg.PaceMs) * time.Millisecond)
	analyzer := services.NewAnalyzer(book, resolver, pacer, logger)
	analyzer.OnProgress = func(current, total int, partName string) {
		logger.Info("[%d/%d] Analyzing: %s", current, total, partName)
	}

	importer := services.NewImporter(book, market.NewLinkParser(logger), logger)
	reports := services.NewReportService(logger)
	application := app.New(analyzer, importer, reports, saved, logger)

	vehicle := models.Vehicle{
		Year:  cfg.VehicleYear,
		Make:  cfg.VehicleMake,
		Model: cfg.VehicleModel,
	}

	resp, err := application.Analyze(context.Background(), vehicle, cfg.VehicleType, cfg.FilterMode)
	if err != nil {
		logger.Error("Analysis failed: %v", err)
		os.Exit(1)
	}

	reports.Print(resp.Summary, resp.Results)

	if cfg.MinSaveROI > 0 {
		for _, r := range services.FilterByROI(resp.Results, cfg.MinSaveROI) {
			if application.SaveResult(vehicle, cfg.VehicleType, r) {
				logger.Info("Auto-saved %s (ROI %.2fx)", r.PartName, r.ROI)
			}
		}
	}

	if err := storage.ExportCSV(cfg.CSVExportPath, application.List()); err != nil {
		logger.Error("CSV export failed: %v", err)
	} else {
		logger.Info("Saved parts exported to %s", cfg.CSVExportPath)
	}

	fmt.Printf("  Done. %d parts analyzed | %d on the saved list | export → %s\n\n",
		len(resp.Results), len(application.List()), cfg.CSVExportPath)
}
