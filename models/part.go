package models

import (
	"strings"
	"time"
)

// Vehicle identifies the car whose parts are being analyzed. Fields are
// free-form strings and may be empty.
type Vehicle struct {
	Year  string
	Make  string
	Model string
}

func (v Vehicle) String() string {
	return strings.Join(strings.Fields(v.Year+" "+v.Make+" "+v.Model), " ")
}

// Listing is one marketplace listing as returned by the market data provider.
type Listing struct {
	Title    string
	Price    float64
	URL      string
	ImageURL string
}

// PriceSignal is the resolved resale-price evidence for one part. A zero
// value means "no data" — analysis proceeds with ROI 0 rather than failing.
type PriceSignal struct {
	MedianPrice    float64
	AveragePrice   float64
	SoldCount      int
	ActiveListings int
	BestListing    *Listing
	AllPrices      []float64
}

// PartAnalysis is one evaluated candidate. Never mutated after creation.
type PartAnalysis struct {
	PartName         string
	JunkyardPrice    float64
	MedianSoldPrice  float64
	AverageSoldPrice float64
	SoldCount        int
	ActiveListings   int
	ROI              float64
	ROIRating        Tier
	BestListingTitle string
	BestListingURL   string
	BestListingImage string
}

// SavedPart is a user-curated record persisted to the saved list. JSON tags
// match the on-disk format of the saved-parts database.
type SavedPart struct {
	PartName         string    `json:"part_name"`
	EbayTitle        string    `json:"ebay_title,omitempty"`
	EbayURL          string    `json:"ebay_url,omitempty"`
	EbayPrice        float64   `json:"ebay_price"`
	BestListingImage string    `json:"best_listing_image,omitempty"`
	JunkyardPrice    float64   `json:"junkyard_price"`
	JunkyardParts    []string  `json:"junkyard_parts,omitempty"`
	ROI              float64   `json:"roi"`
	ROIRating        Tier      `json:"roi_rating"`
	VehicleType      string    `json:"vehicle_type,omitempty"`
	Year             string    `json:"year,omitempty"`
	Make             string    `json:"make,omitempty"`
	Model            string    `json:"model,omitempty"`
	YoutubeLink      string    `json:"youtube_link,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	ManualEntry      bool      `json:"manual_entry,omitempty"`
	SavedAt          time.Time `json:"saved_at"`
}

// Report summarizes one vehicle analysis run.
type Report struct {
	VehicleInfo  string
	TotalParts   int
	HighROICount int
	TopParts     []TopPart
}

// TopPart is one line of the report's top-5 section.
type TopPart struct {
	Name string
	ROI  float64
}
