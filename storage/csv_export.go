package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"parts-analyzer/models"
)

var exportHeader = []string{
	"Part Name", "eBay Title", "eBay URL", "eBay Image", "eBay Price",
	"Junkyard Parts", "Junkyard Price", "ROI", "ROI Rating", "Vehicle Type",
	"Year", "Make", "Model", "YouTube Tutorial", "Notes", "Date Added",
}

// ExportCSV writes the curated list to a CSV file, creating intermediate
// directories as needed.
func ExportCSV(path string, parts []*models.SavedPart) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("csv: create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: create file %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(exportHeader); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	for _, p := range parts {
		row := []string{
			p.PartName,
			p.EbayTitle,
			p.EbayURL,
			p.BestListingImage,
			strconv.FormatFloat(p.EbayPrice, 'f', 2, 64),
			strings.Join(p.JunkyardParts, ", "),
			strconv.FormatFloat(p.JunkyardPrice, 'f', 2, 64),
			strconv.FormatFloat(p.ROI, 'f', 2, 64),
			string(p.ROIRating),
			p.VehicleType,
			p.Year,
			p.Make,
			p.Model,
			p.YoutubeLink,
			p.Notes,
			p.SavedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
