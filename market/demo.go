package market

import (
	"context"

	"parts-analyzer/models"
)

// DemoResolver stands in when eBay credentials are not configured. It
// returns the zero signal with a placeholder best listing so the analysis
// pipeline runs end to end without market data.
type DemoResolver struct{}

func (DemoResolver) Resolve(_ context.Context, _ models.Vehicle, partName string) models.PriceSignal {
	return models.PriceSignal{
		BestListing: &models.Listing{
			Title: "[DEMO MODE] " + partName,
			URL:   "https://ebay.com",
		},
	}
}
