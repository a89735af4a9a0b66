package services

import (
	"context"
	"errors"
	"sort"

	"parts-analyzer/market"
	"parts-analyzer/models"
	"parts-analyzer/utils"
)

// ErrPartNotPriced reports a candidate missing from the junkyard price
// list. It is a data gap, not a fault: batch callers drop these results.
var ErrPartNotPriced = errors.New("part not found in junkyard price list")

// ProgressFunc observes a long-running vehicle analysis. current is
// 1-based.
type ProgressFunc func(current, total int, partName string)

// Analyzer joins junkyard acquisition prices with resolved market signals
// and ranks the outcome by ROI.
type Analyzer struct {
	book     PriceBook
	resolver market.Resolver
	pacer    *utils.Pacer
	logger   *utils.Logger

	// OnProgress, when set, is called before each part is analyzed.
	OnProgress ProgressFunc
}

// NewAnalyzer wires the analysis pipeline.
func NewAnalyzer(book PriceBook, resolver market.Resolver, pacer *utils.Pacer, logger *utils.Logger) *Analyzer {
	return &Analyzer{book: book, resolver: resolver, pacer: pacer, logger: logger}
}

// AnalyzePart evaluates one candidate. Returns ErrPartNotPriced when the
// junkyard list has no entry for it.
func (a *Analyzer) AnalyzePart(ctx context.Context, vehicle models.Vehicle, partName string) (*models.PartAnalysis, error) {
	junkyardPrice, ok := a.book.Price(partName)
	if !ok {
		return nil, ErrPartNotPriced
	}

	signal := a.resolver.Resolve(ctx, vehicle, partName)
	roi := models.ComputeROI(junkyardPrice, signal.MedianPrice)

	result := &models.PartAnalysis{
		PartName:         partName,
		JunkyardPrice:    junkyardPrice,
		MedianSoldPrice:  signal.MedianPrice,
		AverageSoldPrice: signal.AveragePrice,
		SoldCount:        signal.SoldCount,
		ActiveListings:   signal.ActiveListings,
		ROI:              roi,
		ROIRating:        models.TierFor(roi),
	}
	if signal.BestListing != nil {
		result.BestListingTitle = signal.BestListing.Title
		result.BestListingURL = signal.BestListing.URL
		result.BestListingImage = signal.BestListing.ImageURL
	}
	return result, nil
}

// AnalyzeVehicle evaluates every candidate for one vehicle, sequentially
// and paced between resolver calls, and returns the survivors sorted by
// ROI descending (stable on ties). Depending on the filter mode this runs
// for minutes; watch it through OnProgress.
func (a *Analyzer) AnalyzeVehicle(ctx context.Context, vehicle models.Vehicle, vehicleType, filterMode string) ([]*models.PartAnalysis, error) {
	parts := SelectParts(a.book, vehicleType, filterMode)
	total := len(parts)

	a.logger.Info("[analyzer] Analyzing %d parts for %s — filter: %s", total, vehicle, filterMode)

	results := make([]*models.PartAnalysis, 0, total)
	for i, part := range parts {
		if a.OnProgress != nil {
			a.OnProgress(i+1, total, part)
		}

		result, err := a.AnalyzePart(ctx, vehicle, part)
		if err != nil {
			a.logger.Debug("[analyzer] Skipping %s: %v", part, err)
		} else {
			results = append(results, result)
		}

		// No trailing delay after the final item.
		if i < total-1 {
			if err := a.pacer.Wait(ctx); err != nil {
				return results, err
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ROI > results[j].ROI
	})

	a.logger.Info("[analyzer] Analysis complete — %d parts with data", len(results))
	return results, nil
}

// FilterByROI returns the subsequence with ROI >= minROI, order preserved.
func FilterByROI(results []*models.PartAnalysis, minROI float64) []*models.PartAnalysis {
	filtered := make([]*models.PartAnalysis, 0, len(results))
	for _, r := range results {
		if r.ROI >= minROI {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// SortByFrequency returns a new slice sorted by sold count descending,
// stable on ties.
func SortByFrequency(results []*models.PartAnalysis) []*models.PartAnalysis {
	sorted := append([]*models.PartAnalysis{}, results...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SoldCount > sorted[j].SoldCount
	})
	return sorted
}

// TopParts returns the first n of an already-sorted result list.
func TopParts(results []*models.PartAnalysis, n int) []*models.PartAnalysis {
	if n > len(results) {
		n = len(results)
	}
	return results[:n]
}
