package market

import (
	"encoding/json"
	"testing"
)

// The Finding API wraps every field in a single-element array; make sure
// the response structs unwrap a realistic payload.
const sampleCompletedJSON = `{
  "findCompletedItemsResponse": [{
    "ack": ["Success"],
    "searchResult": [{
      "@count": "2",
      "item": [
        {
          "title": ["2015 Honda Civic Headlight OEM"],
          "galleryURL": ["https://i.ebayimg.com/1.jpg"],
          "viewItemURL": ["https://www.ebay.com/itm/1"],
          "sellingStatus": [{"currentPrice": [{"@currencyId": "USD", "__value__": "150.00"}]}]
        },
        {
          "title": ["Honda Civic Headlight Assembly"],
          "galleryURL": ["https://i.ebayimg.com/2.jpg"],
          "viewItemURL": ["https://www.ebay.com/itm/2"],
          "sellingStatus": [{"currentPrice": [{"@currencyId": "USD", "__value__": "210.00"}]}]
        }
      ]
    }],
    "paginationOutput": [{"totalEntries": ["455"]}]
  }]
}`

func TestParseCompletedResponse(t *testing.T) {
	var payload completedResponse
	if err := json.Unmarshal([]byte(sampleCompletedJSON), &payload); err != nil {
		t.Fatal(err)
	}
	if len(payload.Response) != 1 {
		t.Fatalf("Response len: got %d, want 1", len(payload.Response))
	}

	listings := parseListings(payload.Response[0])
	if len(listings) != 2 {
		t.Fatalf("listings: got %d, want 2", len(listings))
	}

	first := listings[0]
	if first.Title != "2015 Honda Civic Headlight OEM" {
		t.Errorf("Title: got %q", first.Title)
	}
	if first.Price != 150 {
		t.Errorf("Price: got %.2f, want 150", first.Price)
	}
	if first.URL != "https://www.ebay.com/itm/1" {
		t.Errorf("URL: got %q", first.URL)
	}
	if first.ImageURL != "https://i.ebayimg.com/1.jpg" {
		t.Errorf("ImageURL: got %q", first.ImageURL)
	}
}

func TestTotalEntries(t *testing.T) {
	var payload completedResponse
	if err := json.Unmarshal([]byte(sampleCompletedJSON), &payload); err != nil {
		t.Fatal(err)
	}
	if got := totalEntries(payload.Response[0]); got != 455 {
		t.Errorf("totalEntries: got %d, want 455", got)
	}
}

func TestParseListingsSkipsUnpricedItems(t *testing.T) {
	raw := `{
	  "findCompletedItemsResponse": [{
	    "searchResult": [{
	      "item": [
	        {"title": ["no price at all"], "viewItemURL": ["https://www.ebay.com/itm/3"]},
	        {"title": ["priced"], "viewItemURL": ["https://www.ebay.com/itm/4"],
	         "sellingStatus": [{"currentPrice": [{"__value__": "55.00"}]}]}
	      ]
	    }]
	  }]
	}`

	var payload completedResponse
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatal(err)
	}

	listings := parseListings(payload.Response[0])
	if len(listings) != 1 {
		t.Fatalf("listings: got %d, want 1 (unpriced items dropped)", len(listings))
	}
	if listings[0].Title != "priced" {
		t.Errorf("Title: got %q", listings[0].Title)
	}
}
