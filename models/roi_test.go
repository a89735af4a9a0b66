package models

import "testing"

func TestComputeROI(t *testing.T) {
	tests := []struct {
		acquisition float64
		resale      float64
		want        float64
	}{
		{40, 180, 4.5},
		{50, 100, 2.0},
		{40, 0, 0},
		{0, 180, 0},
		{0, 0, 0},
	}

	for _, tt := range tests {
		got := ComputeROI(tt.acquisition, tt.resale)
		if got != tt.want {
			t.Errorf("ComputeROI(%.2f, %.2f) = %.2f; want %.2f",
				tt.acquisition, tt.resale, got, tt.want)
		}
	}
}

func TestTierBoundaries(t *testing.T) {
	tests := []struct {
		roi  float64
		want Tier
	}{
		{0, TierLow},
		{1.9, TierLow},
		{2.0, TierMedium},
		{4.99, TierMedium},
		{5.0, TierHigh},
		{12, TierHigh},
	}

	for _, tt := range tests {
		got := TierFor(tt.roi)
		if got != tt.want {
			t.Errorf("TierFor(%.2f) = %s; want %s", tt.roi, got, tt.want)
		}
	}
}

func TestVehicleString(t *testing.T) {
	v := Vehicle{Year: "2015", Make: "Honda", Model: "Civic"}
	if v.String() != "2015 Honda Civic" {
		t.Errorf("String: got %q", v.String())
	}

	partial := Vehicle{Make: "Ford"}
	if partial.String() != "Ford" {
		t.Errorf("partial String: got %q", partial.String())
	}
}
