package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"parts-analyzer/models"
)

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exports", "saved_parts.csv")

	entry := civicHeadlight()
	entry.SavedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	manual := &models.SavedPart{
		PartName:      "RADIO",
		EbayPrice:     120,
		JunkyardPrice: 20,
		ROI:           6,
		ROIRating:     models.TierHigh,
		ManualEntry:   true,
		SavedAt:       time.Date(2024, 6, 2, 9, 30, 0, 0, time.UTC),
	}

	if err := ExportCSV(path, []*models.SavedPart{entry, manual}); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows: got %d, want header + 2 entries", len(rows))
	}

	if len(rows[0]) != len(exportHeader) || rows[0][0] != "Part Name" {
		t.Errorf("header: got %v", rows[0])
	}

	first := rows[1]
	if first[0] != "HEADLIGHT" {
		t.Errorf("part name: got %q", first[0])
	}
	if first[4] != "180.00" || first[6] != "40.00" || first[7] != "4.50" {
		t.Errorf("prices: got %q %q %q", first[4], first[6], first[7])
	}
	if first[8] != "Medium" {
		t.Errorf("rating: got %q", first[8])
	}
	if first[15] != "2024-06-01T12:00:00Z" {
		t.Errorf("date: got %q", first[15])
	}

	if rows[2][0] != "RADIO" || rows[2][8] != "High" {
		t.Errorf("second row: got %v", rows[2])
	}
}

func TestExportCSVEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	if err := ExportCSV(path, nil); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("empty export keeps the header only, got %d rows", len(rows))
	}
}
