package market

import (
	"math"
	"sort"

	"parts-analyzer/models"
)

// BuildSignal derives the price metrics for one part from its sold listings
// (expected in upstream price-ascending order) and the active-listing count.
func BuildSignal(sold []models.Listing, activeCount int) models.PriceSignal {
	if len(sold) == 0 {
		return models.PriceSignal{ActiveListings: activeCount}
	}

	prices := make([]float64, 0, len(sold))
	for _, l := range sold {
		prices = append(prices, l.Price)
	}
	kept := removeOutliers(prices)

	// Best example is the cheapest sold listing, before outlier removal.
	best := sold[0]

	return models.PriceSignal{
		MedianPrice:    median(kept),
		AveragePrice:   mean(kept),
		SoldCount:      len(sold),
		ActiveListings: activeCount,
		BestListing:    &best,
		AllPrices:      kept,
	}
}

// removeOutliers keeps prices within 3 sample standard deviations of the
// mean. Samples of 3 or fewer are kept whole.
func removeOutliers(prices []float64) []float64 {
	if len(prices) <= 3 {
		return prices
	}
	m := mean(prices)
	sd := stdev(prices, m)

	kept := make([]float64, 0, len(prices))
	for _, p := range prices {
		if math.Abs(p-m) <= 3*sd {
			kept = append(kept, p)
		}
	}
	return kept
}

func mean(prices []float64) float64 {
	if len(prices) == 0 {
		return 0
	}
	var total float64
	for _, p := range prices {
		total += p
	}
	return total / float64(len(prices))
}

// stdev is the sample standard deviation (n-1 denominator).
func stdev(prices []float64, m float64) float64 {
	if len(prices) < 2 {
		return 0
	}
	var sum float64
	for _, p := range prices {
		d := p - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(prices)-1))
}

// median averages the two middle values for even-sized sets.
func median(prices []float64) float64 {
	if len(prices) == 0 {
		return 0
	}
	sorted := append([]float64{}, prices...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
