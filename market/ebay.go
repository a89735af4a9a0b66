package market

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"parts-analyzer/config"
	"parts-analyzer/models"
	"parts-analyzer/utils"
)

const (
	productionEndpoint = "https://svcs.ebay.com/services/search/FindingService/v1"
	sandboxEndpoint    = "https://svcs.sandbox.ebay.com/services/search/FindingService/v1"

	defaultPageSize = 100
)

// EbayResolver queries the eBay Finding API for completed (sold) and active
// listings. Every upstream failure degrades to the zero signal; a missing
// price for one part must never abort a whole vehicle batch.
type EbayResolver struct {
	client   *resty.Client
	logger   *utils.Logger
	retry    *utils.RetryConfig
	pageSize int
}

// NewEbayResolver builds a resolver against the production or sandbox
// Finding endpoint depending on cfg.EbayEnvironment.
func NewEbayResolver(cfg *config.Config, logger *utils.Logger) *EbayResolver {
	endpoint := productionEndpoint
	if cfg.EbayEnvironment != "production" {
		endpoint = sandboxEndpoint
	}

	client := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(15 * time.Second).
		SetQueryParam("SECURITY-APPNAME", cfg.EbayAppID).
		SetQueryParam("SERVICE-VERSION", "1.13.0").
		SetQueryParam("RESPONSE-DATA-FORMAT", "JSON")

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &EbayResolver{
		client: client,
		logger: logger,
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   2 * time.Second,
			Logger:      logger,
		},
		pageSize: pageSize,
	}
}

// Resolve searches sold and active listings for "{year} {make} {model}
// {part} used" and derives the price signal.
func (r *EbayResolver) Resolve(ctx context.Context, vehicle models.Vehicle, partName string) models.PriceSignal {
	query := fmt.Sprintf("%s %s %s %s used", vehicle.Year, vehicle.Make, vehicle.Model, partName)

	sold, err := r.searchSold(ctx, query)
	if err != nil {
		r.logger.Error("[ebay] Sold search failed for %q: %v", query, err)
		return models.PriceSignal{}
	}

	active, err := r.countActive(ctx, query)
	if err != nil {
		// Sold data alone is still worth a signal.
		r.logger.Warn("[ebay] Active search failed for %q: %v", query, err)
		active = 0
	}

	return BuildSignal(sold, active)
}

// searchSold requests completed listings sorted by price plus shipping,
// cheapest first.
func (r *EbayResolver) searchSold(ctx context.Context, query string) ([]models.Listing, error) {
	var payload completedResponse
	err := r.retry.Do(ctx, "ebay-sold-search", func() error {
		return r.call(ctx, map[string]string{
			"OPERATION-NAME":                 "findCompletedItems",
			"keywords":                       query,
			"itemFilter(0).name":             "SoldItemsOnly",
			"itemFilter(0).value":            "true",
			"sortOrder":                      "PricePlusShippingLowest",
			"paginationInput.entriesPerPage": strconv.Itoa(r.pageSize),
		}, &payload)
	})
	if err != nil {
		return nil, err
	}
	if len(payload.Response) == 0 {
		return nil, fmt.Errorf("empty findCompletedItems response")
	}
	return parseListings(payload.Response[0]), nil
}

// countActive returns the upstream total-entries for currently active
// listings matching the query.
func (r *EbayResolver) countActive(ctx context.Context, query string) (int, error) {
	var payload advancedResponse
	err := r.retry.Do(ctx, "ebay-active-search", func() error {
		return r.call(ctx, map[string]string{
			"OPERATION-NAME":                 "findItemsAdvanced",
			"keywords":                       query,
			"paginationInput.entriesPerPage": strconv.Itoa(r.pageSize),
		}, &payload)
	})
	if err != nil {
		return 0, err
	}
	if len(payload.Response) == 0 {
		return 0, fmt.Errorf("empty findItemsAdvanced response")
	}
	return totalEntries(payload.Response[0]), nil
}

func (r *EbayResolver) call(ctx context.Context, params map[string]string, result any) error {
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(result).
		Get("")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("ebay returned %s", resp.Status())
	}
	return nil
}

// The Finding API's JSON format wraps every value in a single-element
// array and renders numbers as strings.

type findingItem struct {
	Title         []string `json:"title"`
	GalleryURL    []string `json:"galleryURL"`
	ViewItemURL   []string `json:"viewItemURL"`
	SellingStatus []struct {
		CurrentPrice []struct {
			CurrencyID string `json:"@currencyId"`
			Value      string `json:"__value__"`
		} `json:"currentPrice"`
	} `json:"sellingStatus"`
}

type findingResult struct {
	Ack          []string `json:"ack"`
	SearchResult []struct {
		Count string        `json:"@count"`
		Item  []findingItem `json:"item"`
	} `json:"searchResult"`
	PaginationOutput []struct {
		TotalEntries []string `json:"totalEntries"`
	} `json:"paginationOutput"`
}

type completedResponse struct {
	Response []findingResult `json:"findCompletedItemsResponse"`
}

type advancedResponse struct {
	Response []findingResult `json:"findItemsAdvancedResponse"`
}

func parseListings(res findingResult) []models.Listing {
	var listings []models.Listing
	for _, sr := range res.SearchResult {
		for _, item := range sr.Item {
			price, err := strconv.ParseFloat(itemPrice(item), 64)
			if err != nil {
				continue
			}
			listings = append(listings, models.Listing{
				Title:    first(item.Title),
				Price:    price,
				URL:      first(item.ViewItemURL),
				ImageURL: first(item.GalleryURL),
			})
		}
	}
	return listings
}

func totalEntries(res findingResult) int {
	for _, po := range res.PaginationOutput {
		if n, err := strconv.Atoi(first(po.TotalEntries)); err == nil {
			return n
		}
	}
	return 0
}

func itemPrice(item findingItem) string {
	for _, ss := range item.SellingStatus {
		for _, cp := range ss.CurrentPrice {
			return cp.Value
		}
	}
	return ""
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
