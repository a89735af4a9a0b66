package models

// Tier is the ordinal profitability classification of an ROI ratio.
type Tier string

const (
	TierLow    Tier = "Low"
	TierMedium Tier = "Medium"
	TierHigh   Tier = "High"
)

// ComputeROI returns resale/acquisition when both prices are strictly
// positive, 0 otherwise. All ROI math goes through this function and
// TierFor.
func ComputeROI(acquisition, resale float64) float64 {
	if acquisition > 0 && resale > 0 {
		return resale / acquisition
	}
	return 0
}

// TierFor classifies an ROI ratio: <2 Low, 2–5 Medium, >=5 High.
func TierFor(roi float64) Tier {
	switch {
	case roi < 2:
		return TierLow
	case roi < 5:
		return TierMedium
	default:
		return TierHigh
	}
}
