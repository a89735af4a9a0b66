package market

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"

	"parts-analyzer/utils"
)

var (
	priceExpr = regexp.MustCompile(`\$?([\d,]+\.?\d*)`)
	// Model years between 1900 and 2029.
	yearExpr = regexp.MustCompile(`\b(19\d{2}|20[0-2]\d)\b`)
)

// knownMakes is the fixed vocabulary used to spot a manufacturer in a
// listing title.
var knownMakes = []string{
	"Honda", "Toyota", "Ford", "Chevy", "Chevrolet", "Dodge",
	"Nissan", "BMW", "Mercedes", "Audi", "Volkswagen", "VW",
	"Mazda", "Subaru", "Kia", "Hyundai", "Jeep", "GMC", "RAM",
}

// partKeywords maps a listing title to a likely part name.
var partKeywords = []string{
	"headlight", "taillight", "bumper", "fender", "hood", "door",
	"mirror", "grille", "radio", "stereo", "cluster", "speedometer",
	"wheel", "rim", "seat", "console", "dashboard", "steering wheel",
	"ecm", "tcm", "pcm", "module", "sensor", "switch", "airbag",
}

// ParsedListing is the outcome of single-listing ingestion. Failures are
// reported through Success/Error, never raised: Title is "Error" and Price
// 0 when the listing could not be fetched or parsed.
type ParsedListing struct {
	Success bool
	Error   string
	Title   string
	Price   float64
	Year    string
	Make    string
	Model   string
	URL     string
}

// LinkParser resolves a single listing URL into a title/price record with
// best-effort vehicle detection from the title text.
type LinkParser struct {
	logger *utils.Logger
	retry  *utils.RetryConfig

	// fetch is swappable in tests; the default renders the page headless.
	fetch func(ctx context.Context, url string) (string, error)
}

// NewLinkParser creates a LinkParser that fetches pages with a headless
// browser, since listing markup is assembled client-side.
func NewLinkParser(logger *utils.Logger) *LinkParser {
	p := &LinkParser{
		logger: logger,
		retry: &utils.RetryConfig{
			MaxAttempts: 2,
			BaseDelay:   2 * time.Second,
			Logger:      logger,
		},
	}
	p.fetch = p.fetchRendered
	return p
}

// ParseLink fetches one listing URL and extracts title, price and vehicle
// tokens.
func (p *LinkParser) ParseLink(ctx context.Context, url string) ParsedListing {
	var html string
	err := p.retry.Do(ctx, "fetch-listing", func() error {
		var ferr error
		html, ferr = p.fetch(ctx, url)
		return ferr
	})
	if err != nil {
		p.logger.Error("[linkparser] Fetch failed for %s: %v", url, err)
		return ParsedListing{Error: err.Error(), Title: "Error", URL: url}
	}

	parsed, err := parseListingHTML(html)
	if err != nil {
		p.logger.Error("[linkparser] Parse failed for %s: %v", url, err)
		return ParsedListing{Error: err.Error(), Title: "Error", URL: url}
	}

	parsed.URL = url
	return parsed
}

func parseListingHTML(html string) (ParsedListing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ParsedListing{}, fmt.Errorf("parse document: %w", err)
	}

	title := firstText(doc,
		"h1.x-item-title__mainTitle",
		"h1#itemTitle",
	)
	if title == "" {
		title = "Unknown"
	}

	priceText := firstText(doc,
		"div.x-price-primary",
		"span#prcIsum",
		"span.notranslate",
	)

	year, make := vehicleTokens(title)

	return ParsedListing{
		Success: true,
		Title:   title,
		Price:   parsePriceText(priceText),
		Year:    year,
		Make:    make,
	}, nil
}

func firstText(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if text := strings.TrimSpace(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

func parsePriceText(text string) float64 {
	m := priceExpr.FindStringSubmatch(text)
	if len(m) < 2 {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}

// vehicleTokens extracts a model year and make from a listing title.
func vehicleTokens(title string) (year, make string) {
	if m := yearExpr.FindString(title); m != "" {
		year = m
	}
	upper := strings.ToUpper(title)
	for _, candidate := range knownMakes {
		if containsWord(upper, strings.ToUpper(candidate)) {
			make = candidate
			break
		}
	}
	return year, make
}

// containsWord reports whether s contains word bounded by non-letters.
func containsWord(s, word string) bool {
	for idx := 0; ; {
		i := strings.Index(s[idx:], word)
		if i < 0 {
			return false
		}
		i += idx
		before := i == 0 || !isLetter(s[i-1])
		afterIdx := i + len(word)
		after := afterIdx == len(s) || !isLetter(s[afterIdx])
		if before && after {
			return true
		}
		idx = i + 1
	}
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// ExtractPartName guesses the part a listing sells from its title, falling
// back to the first three words.
func ExtractPartName(title string) string {
	lower := strings.ToLower(title)
	for _, part := range partKeywords {
		if strings.Contains(lower, part) {
			return titleCase(part)
		}
	}
	words := strings.Fields(title)
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.Join(words, " ")
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// fetchRendered loads the listing in headless Chrome and returns the
// rendered document.
func (p *LinkParser) fetchRendered(ctx context.Context, url string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelTab()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, 30*time.Second)
	defer cancelTimeout()

	var html string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(2*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", url, err)
	}
	return html, nil
}
