package storage

import (
	"path/filepath"
	"testing"
	"time"

	"parts-analyzer/models"
	"parts-analyzer/utils"
)

func newTestStore(t *testing.T) *JSONStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "saved_parts.json")
	store := NewJSONStore(path, utils.NewLogger())
	store.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return store
}

func civicHeadlight() *models.SavedPart {
	return &models.SavedPart{
		PartName:      "HEADLIGHT",
		EbayTitle:     "2015 Honda Civic Headlight OEM",
		EbayURL:       "https://ebay.com/itm/1",
		EbayPrice:     180,
		JunkyardPrice: 40,
		JunkyardParts: []string{"HEADLIGHT"},
		ROI:           4.5,
		ROIRating:     models.TierMedium,
		VehicleType:   "car",
		Year:          "2015",
		Make:          "Honda",
		Model:         "Civic",
	}
}

func TestAddRejectsDuplicateVehiclePart(t *testing.T) {
	store := newTestStore(t)

	if !store.Add(civicHeadlight()) {
		t.Fatal("first Add must succeed")
	}
	if store.Add(civicHeadlight()) {
		t.Error("second Add of the same vehicle+part must be rejected")
	}
	if got := len(store.All()); got != 1 {
		t.Errorf("entries: got %d, want 1", got)
	}

	// A different vehicle with the same part name is not a duplicate.
	other := civicHeadlight()
	other.Year = "2017"
	if !store.Add(other) {
		t.Error("same part on a different vehicle must be accepted")
	}
}

func TestAddManualBypassesDuplicateCheck(t *testing.T) {
	store := newTestStore(t)

	first := store.AddManual("RADIO", 20, 120)
	second := store.AddManual("RADIO", 20, 120)

	if first == nil || second == nil {
		t.Fatal("AddManual must always return the created entry")
	}
	if got := len(store.All()); got != 2 {
		t.Errorf("entries: got %d, want 2 (manual adds skip dedup)", got)
	}
	if !first.ManualEntry {
		t.Error("manual entries must be flagged")
	}
	if first.ROI != 6 || first.ROIRating != models.TierHigh {
		t.Errorf("manual ROI: got %.2f %s", first.ROI, first.ROIRating)
	}
}

func TestRemoveBounds(t *testing.T) {
	store := newTestStore(t)
	store.Add(civicHeadlight())

	if store.Remove(1) {
		t.Error("out-of-range remove must report false")
	}
	if store.Remove(-1) {
		t.Error("negative index must report false")
	}
	if got := len(store.All()); got != 1 {
		t.Errorf("failed removes must not change the list, got %d entries", got)
	}
	if !store.Remove(0) {
		t.Error("in-range remove must succeed")
	}
	if got := len(store.All()); got != 0 {
		t.Errorf("entries after remove: got %d, want 0", got)
	}
}

func TestUpdateNotes(t *testing.T) {
	store := newTestStore(t)
	store.Add(civicHeadlight())

	if store.UpdateNotes(5, "x", "y") {
		t.Error("out-of-range update must report false")
	}
	if !store.UpdateNotes(0, "https://youtube.com/watch?v=abc", "pulls easily") {
		t.Fatal("in-range update must succeed")
	}

	got := store.All()[0]
	if got.YoutubeLink != "https://youtube.com/watch?v=abc" || got.Notes != "pulls easily" {
		t.Errorf("update not applied: %q %q", got.YoutubeLink, got.Notes)
	}
}

func TestClear(t *testing.T) {
	store := newTestStore(t)
	store.Add(civicHeadlight())
	store.AddManual("RADIO", 20, 120)

	store.Clear()
	if got := len(store.All()); got != 0 {
		t.Errorf("entries after clear: got %d, want 0", got)
	}
}

func TestReloadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved_parts.json")
	logger := utils.NewLogger()

	store := NewJSONStore(path, logger)
	store.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	entry := civicHeadlight()
	entry.YoutubeLink = "https://youtube.com/watch?v=abc"
	entry.Notes = "driver side"
	store.Add(entry)

	reloaded := NewJSONStore(path, logger)
	parts := reloaded.All()
	if len(parts) != 1 {
		t.Fatalf("reloaded entries: got %d, want 1", len(parts))
	}

	got := parts[0]
	if got.PartName != entry.PartName ||
		got.EbayTitle != entry.EbayTitle ||
		got.EbayURL != entry.EbayURL ||
		got.EbayPrice != entry.EbayPrice ||
		got.JunkyardPrice != entry.JunkyardPrice ||
		got.ROI != entry.ROI ||
		got.ROIRating != entry.ROIRating ||
		got.VehicleType != entry.VehicleType ||
		got.Year != entry.Year ||
		got.Make != entry.Make ||
		got.Model != entry.Model ||
		got.YoutubeLink != entry.YoutubeLink ||
		got.Notes != entry.Notes {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, entry)
	}
	if len(got.JunkyardParts) != 1 || got.JunkyardParts[0] != "HEADLIGHT" {
		t.Errorf("JunkyardParts: got %v", got.JunkyardParts)
	}
	if !got.SavedAt.Equal(entry.SavedAt) {
		t.Errorf("SavedAt: got %v, want %v", got.SavedAt, entry.SavedAt)
	}
}

func TestLoadIgnoresMissingFile(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "does-not-exist.json"), utils.NewLogger())
	if got := len(store.All()); got != 0 {
		t.Errorf("fresh store entries: got %d, want 0", got)
	}
}
