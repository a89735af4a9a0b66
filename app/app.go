// Package app exposes the analysis engine to its consumers (CLI, HTTP, or
// exports) as one composition-friendly facade.
package app

import (
	"context"
	"fmt"

	"parts-analyzer/models"
	"parts-analyzer/services"
	"parts-analyzer/storage"
	"parts-analyzer/utils"
)

// Filter dispatch modes for Filter.
const (
	FilterROI       = "roi_filter"
	FilterFrequency = "sort_frequency"
)

// App wires the five long-lived components together. There are no ambient
// singletons: the composition root constructs one App and hands it around.
type App struct {
	analyzer *services.Analyzer
	importer *services.Importer
	reports  *services.ReportService
	saved    storage.SavedStore
	logger   *utils.Logger
}

// New builds the facade from already-constructed components.
func New(analyzer *services.Analyzer, importer *services.Importer, reports *services.ReportService, saved storage.SavedStore, logger *utils.Logger) *App {
	return &App{
		analyzer: analyzer,
		importer: importer,
		reports:  reports,
		saved:    saved,
		logger:   logger,
	}
}

// AnalyzeResponse bundles ranked results with their summary.
type AnalyzeResponse struct {
	Results []*models.PartAnalysis
	Summary *models.Report
}

// Analyze runs a full vehicle analysis and summarizes it.
func (a *App) Analyze(ctx context.Context, vehicle models.Vehicle, vehicleType, filterMode string) (*AnalyzeResponse, error) {
	results, err := a.analyzer.AnalyzeVehicle(ctx, vehicle, vehicleType, filterMode)
	if err != nil {
		return nil, err
	}
	return &AnalyzeResponse{
		Results: results,
		Summary: a.reports.Generate(vehicle, results),
	}, nil
}

// SaveResult promotes one analysis result into the curated list.
func (a *App) SaveResult(vehicle models.Vehicle, vehicleType string, r *models.PartAnalysis) bool {
	return a.saved.Add(&models.SavedPart{
		PartName:         r.PartName,
		EbayTitle:        r.BestListingTitle,
		EbayURL:          r.BestListingURL,
		BestListingImage: r.BestListingImage,
		EbayPrice:        r.MedianSoldPrice,
		JunkyardPrice:    r.JunkyardPrice,
		ROI:              r.ROI,
		ROIRating:        r.ROIRating,
		VehicleType:      vehicleType,
		Year:             vehicle.Year,
		Make:             vehicle.Make,
		Model:            vehicle.Model,
	})
}

// SavePart adds a caller-assembled entry, subject to the duplicate check.
func (a *App) SavePart(entry *models.SavedPart) bool {
	return a.saved.Add(entry)
}

// ManualAdd saves a manually priced part, bypassing the duplicate check.
func (a *App) ManualAdd(partName string, junkyardPrice, soldPrice float64) *models.SavedPart {
	return a.saved.AddManual(partName, junkyardPrice, soldPrice)
}

// AddFromListing imports one marketplace listing URL into the curated list.
func (a *App) AddFromListing(ctx context.Context, req services.ImportRequest) (*models.SavedPart, error) {
	entry, err := a.importer.BuildEntry(ctx, req)
	if err != nil {
		return nil, err
	}
	if !a.saved.Add(entry) {
		return nil, fmt.Errorf("part already saved: %s", entry.PartName)
	}
	return entry, nil
}

// List returns the curated list in insertion order.
func (a *App) List() []*models.SavedPart {
	return a.saved.All()
}

// Remove deletes a curated entry by position.
func (a *App) Remove(index int) bool {
	return a.saved.Remove(index)
}

// Update replaces the media link and notes of one curated entry.
func (a *App) Update(index int, youtubeLink, notes string) bool {
	return a.saved.UpdateNotes(index, youtubeLink, notes)
}

// Clear empties the curated list.
func (a *App) Clear() {
	a.saved.Clear()
}

// Filter applies a named post-processing mode to analysis results.
func (a *App) Filter(results []*models.PartAnalysis, filterType string, minROI float64) []*models.PartAnalysis {
	switch filterType {
	case FilterROI:
		return services.FilterByROI(results, minROI)
	case FilterFrequency:
		return services.SortByFrequency(results)
	default:
		return results
	}
}
