package storage

import (
	"time"

	"parts-analyzer/models"
)

// hasDuplicate reports whether the collection already holds an entry for
// the same vehicle and part.
func hasDuplicate(parts []*models.SavedPart, entry *models.SavedPart) bool {
	for _, p := range parts {
		if p.Year == entry.Year &&
			p.Make == entry.Make &&
			p.Model == entry.Model &&
			p.PartName == entry.PartName {
			return true
		}
	}
	return false
}

// newManualEntry builds a manually priced entry using the central ROI
// thresholds.
func newManualEntry(partName string, junkyardPrice, soldPrice float64, savedAt time.Time) *models.SavedPart {
	roi := models.ComputeROI(junkyardPrice, soldPrice)
	return &models.SavedPart{
		PartName:      partName,
		JunkyardPrice: junkyardPrice,
		EbayPrice:     soldPrice,
		ROI:           roi,
		ROIRating:     models.TierFor(roi),
		ManualEntry:   true,
		SavedAt:       savedAt,
	}
}
