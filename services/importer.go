package services

import (
	"context"
	"fmt"
	"strings"

	"parts-analyzer/market"
	"parts-analyzer/models"
	"parts-analyzer/utils"
)

// LinkResolver is the single-listing ingestion contract.
type LinkResolver interface {
	ParseLink(ctx context.Context, url string) market.ParsedListing
}

// ImportRequest carries the user-supplied fields for a listing import.
type ImportRequest struct {
	URL            string
	CustomPartName string
	VehicleType    string
	// JunkyardParts are user-selected price-list entries whose prices are
	// summed into the acquisition cost.
	JunkyardParts []string
	YoutubeLink   string
	Notes         string
}

// Importer turns one marketplace listing URL into a curated entry.
type Importer struct {
	book   PriceBook
	parser LinkResolver
	logger *utils.Logger
}

// NewImporter wires a listing importer.
func NewImporter(book PriceBook, parser LinkResolver, logger *utils.Logger) *Importer {
	return &Importer{book: book, parser: parser, logger: logger}
}

// BuildEntry parses the listing and assembles a curated entry. The part
// name priority is custom name > first selected junkyard part > extracted
// from the listing title. When no junkyard parts were selected the
// acquisition cost is auto-matched against the price list.
func (im *Importer) BuildEntry(ctx context.Context, req ImportRequest) (*models.SavedPart, error) {
	parsed := im.parser.ParseLink(ctx, req.URL)
	if !parsed.Success {
		return nil, fmt.Errorf("parse listing: %s", parsed.Error)
	}

	partName := strings.TrimSpace(req.CustomPartName)
	if partName == "" && len(req.JunkyardParts) > 0 {
		partName = req.JunkyardParts[0]
	}
	if partName == "" {
		partName = market.ExtractPartName(parsed.Title)
	}

	junkyardPrice, junkyardParts := im.sumSelected(req.JunkyardParts)
	if junkyardPrice == 0 {
		junkyardPrice, junkyardParts = im.autoMatch(partName)
	}

	roi := models.ComputeROI(junkyardPrice, parsed.Price)

	return &models.SavedPart{
		PartName:      partName,
		EbayTitle:     parsed.Title,
		EbayURL:       req.URL,
		EbayPrice:     parsed.Price,
		JunkyardPrice: junkyardPrice,
		JunkyardParts: junkyardParts,
		ROI:           roi,
		ROIRating:     models.TierFor(roi),
		VehicleType:   req.VehicleType,
		Year:          parsed.Year,
		Make:          parsed.Make,
		Model:         parsed.Model,
		YoutubeLink:   req.YoutubeLink,
		Notes:         req.Notes,
	}, nil
}

// sumSelected totals the prices of user-selected junkyard parts, keeping
// only the names that priced.
func (im *Importer) sumSelected(names []string) (float64, []string) {
	var total float64
	var priced []string
	for _, name := range names {
		if price, ok := im.book.Price(name); ok {
			total += price
			priced = append(priced, name)
		}
	}
	return total, priced
}

// autoMatch finds an acquisition price for a part name: exact lookup
// first, then bidirectional substring containment over the full key set.
func (im *Importer) autoMatch(partName string) (float64, []string) {
	if price, ok := im.book.Price(partName); ok {
		return price, nil
	}

	upper := strings.ToUpper(strings.TrimSpace(partName))
	for _, junkPart := range im.book.AllParts() {
		ju := strings.ToUpper(junkPart)
		if !strings.Contains(ju, upper) && !strings.Contains(upper, ju) {
			continue
		}
		if price, ok := im.book.Price(junkPart); ok {
			im.logger.Debug("[importer] Auto-matched %q to price-list entry %q", partName, junkPart)
			return price, []string{junkPart}
		}
	}
	return 0, nil
}
