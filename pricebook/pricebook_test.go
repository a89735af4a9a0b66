package pricebook

import (
	"os"
	"path/filepath"
	"testing"

	"parts-analyzer/utils"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prices.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleCSV = `Junkyard Export 2024,,
Part,Price
headlight ,"$1,234.56"
TAILLIGHT,$40
,$10
RADIO,
BUMPER COVER,12.5
`

func TestLoadNormalizesRows(t *testing.T) {
	b := New(writeTempCSV(t, sampleCSV), utils.NewLogger())

	if b.Len() != 3 {
		t.Fatalf("Len: got %d, want 3 (rows missing part or price must be dropped)", b.Len())
	}

	price, ok := b.Price("  Headlight ")
	if !ok || price != 1234.56 {
		t.Errorf("Price(headlight) = %.2f, %v; want 1234.56, true", price, ok)
	}

	if _, ok := b.Price("DOES NOT EXIST"); ok {
		t.Error("Price should miss on unknown part")
	}
}

func TestAllPartsSorted(t *testing.T) {
	b := New(writeTempCSV(t, sampleCSV), utils.NewLogger())

	got := b.AllParts()
	want := []string{"BUMPER COVER", "HEADLIGHT", "TAILLIGHT"}
	if len(got) != len(want) {
		t.Fatalf("AllParts len: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AllParts[%d]: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSearchSubstring(t *testing.T) {
	b := New(writeTempCSV(t, sampleCSV), utils.NewLogger())

	matches := b.Search("light")
	if len(matches) != 2 {
		t.Errorf("Search(light): got %d matches, want 2", len(matches))
	}
	if _, ok := matches["TAILLIGHT"]; !ok {
		t.Error("Search(light) should include TAILLIGHT")
	}
}

func TestLoadMissingFileFailsSoft(t *testing.T) {
	b := New(filepath.Join(t.TempDir(), "nope.csv"), utils.NewLogger())
	if b.Len() != 0 {
		t.Errorf("missing file should leave an empty table, got %d entries", b.Len())
	}
}

func TestLoadWithoutHeaderFailsSoft(t *testing.T) {
	b := New(writeTempCSV(t, "just,some\nrandom,cells\n"), utils.NewLogger())
	if b.Len() != 0 {
		t.Errorf("file without Part/Price header should leave an empty table, got %d entries", b.Len())
	}
}

func TestReloadReplacesTable(t *testing.T) {
	path := writeTempCSV(t, sampleCSV)
	b := New(path, utils.NewLogger())

	if err := os.WriteFile(path, []byte("Part,Price\nHOOD,$25\n"), 0644); err != nil {
		t.Fatal(err)
	}
	b.Load()

	if b.Len() != 1 {
		t.Fatalf("reload must replace, not merge: got %d entries", b.Len())
	}
	if _, ok := b.Price("HEADLIGHT"); ok {
		t.Error("old entries should be gone after reload")
	}
}
