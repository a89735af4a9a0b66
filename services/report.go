package services

import (
	"fmt"
	"strings"

	"parts-analyzer/models"
	"parts-analyzer/utils"
)

// ReportService summarizes and prints a vehicle analysis run.
type ReportService struct {
	logger *utils.Logger
}

func NewReportService(logger *utils.Logger) *ReportService {
	return &ReportService{logger: logger}
}

// Generate builds the analysis summary: totals, High-tier count, top 5.
func (s *ReportService) Generate(vehicle models.Vehicle, results []*models.PartAnalysis) *models.Report {
	report := &models.Report{
		VehicleInfo: vehicle.String(),
		TotalParts:  len(results),
	}

	for _, r := range results {
		if r.ROIRating == models.TierHigh {
			report.HighROICount++
		}
	}

	for _, r := range TopParts(results, 5) {
		report.TopParts = append(report.TopParts, models.TopPart{
			Name: r.PartName,
			ROI:  r.ROI,
		})
	}

	return report
}

// Print renders the report and the ranked results to the terminal.
func (s *ReportService) Print(report *models.Report, results []*models.PartAnalysis) {
	sep := strings.Repeat("═", 64)
	thin := strings.Repeat("─", 64)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  🔧 PARTS PROFIT ANALYSIS — %s\033[0m\n", report.VehicleInfo)
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Parts with data : \033[1m%d\033[0m\n", report.TotalParts)
	fmt.Printf("  High-ROI parts  : \033[1m%d\033[0m\n", report.HighROICount)
	fmt.Println()

	fmt.Printf("\033[1;33m  Top 5 Parts by ROI\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(report.TopParts) == 0 {
		fmt.Printf("  No parts with market data\n")
	} else {
		for i, p := range report.TopParts {
			fmt.Printf("  \033[1m%d.\033[0m %-40s \033[1;32m%.2fx\033[0m\n",
				i+1, truncate(p.Name, 38), p.ROI)
		}
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Ranked Results\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  %-34s %10s %10s %6s %s\n", "PART", "JUNKYARD", "MEDIAN", "ROI", "RATING")
	for _, r := range results {
		fmt.Printf("  %-34s %9.2f$ %9.2f$ %5.2fx %s\n",
			truncate(r.PartName, 32), r.JunkyardPrice, r.MedianSoldPrice, r.ROI, ratingBadge(r.ROIRating))
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func ratingBadge(tier models.Tier) string {
	switch tier {
	case models.TierHigh:
		return "\033[1;32mHigh\033[0m"
	case models.TierMedium:
		return "\033[1;33mMedium\033[0m"
	default:
		return "\033[1;31mLow\033[0m"
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
