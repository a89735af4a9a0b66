// Package pricebook loads and serves the junkyard acquisition price table.
package pricebook

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"parts-analyzer/utils"
)

// Book maps normalized part names to junkyard acquisition prices. It is
// built once from a CSV export and immutable except by explicit Load.
type Book struct {
	logger *utils.Logger
	path   string
	prices map[string]float64
}

// New creates a Book and loads the price list at path. A load failure
// leaves an empty table; callers must tolerate zero entries.
func New(path string, logger *utils.Logger) *Book {
	b := &Book{logger: logger, path: path, prices: map[string]float64{}}
	b.Load()
	return b
}

// Load re-reads the CSV file, replacing the whole table. On any parse
// error the table is reset to empty rather than left half-filled.
func (b *Book) Load() {
	prices, err := b.parse()
	if err != nil {
		b.logger.Error("[pricebook] Failed to load %s: %v", b.path, err)
		b.prices = map[string]float64{}
		return
	}
	b.prices = prices
	b.logger.Info("[pricebook] Loaded %d parts from junkyard price list", len(b.prices))
}

func (b *Book) parse() (map[string]float64, error) {
	f, err := os.Open(b.path)
	if err != nil {
		return nil, fmt.Errorf("open price list: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read price list: %w", err)
	}

	// The export carries a junk lead row before the header, so the header
	// is located by its column names rather than assumed at row 0.
	partCol, priceCol, start := locateHeader(rows)
	if partCol < 0 {
		return nil, fmt.Errorf("no Part/Price header row found in %s", b.path)
	}

	prices := make(map[string]float64)
	for _, row := range rows[start:] {
		if len(row) <= partCol || len(row) <= priceCol {
			continue
		}
		name := NormalizeName(row[partCol])
		price, ok := parsePrice(row[priceCol])
		if name == "" || !ok {
			continue
		}
		prices[name] = price
	}
	return prices, nil
}

// Price returns the acquisition price for a part using an exact
// case/whitespace-normalized match.
func (b *Book) Price(name string) (float64, bool) {
	price, ok := b.prices[NormalizeName(name)]
	return price, ok
}

// Search returns all entries whose normalized name contains term.
func (b *Book) Search(term string) map[string]float64 {
	term = NormalizeName(term)
	matches := make(map[string]float64)
	for name, price := range b.prices {
		if strings.Contains(name, term) {
			matches[name] = price
		}
	}
	return matches
}

// AllParts returns every part name in lexicographic order.
func (b *Book) AllParts() []string {
	parts := make([]string, 0, len(b.prices))
	for name := range b.prices {
		parts = append(parts, name)
	}
	sort.Strings(parts)
	return parts
}

// Len returns the number of loaded parts.
func (b *Book) Len() int {
	return len(b.prices)
}

// NormalizeName trims and upper-cases a part name for matching.
func NormalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func locateHeader(rows [][]string) (partCol, priceCol, start int) {
	for i, row := range rows {
		p, q := -1, -1
		for j, cell := range row {
			switch strings.ToLower(strings.TrimSpace(cell)) {
			case "part":
				p = j
			case "price":
				q = j
			}
		}
		if p >= 0 && q >= 0 {
			return p, q, i + 1
		}
	}
	return -1, -1, 0
}

// parsePrice normalizes currency text ("$1,234.56") to a non-negative amount.
func parsePrice(text string) (float64, bool) {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(text))
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
