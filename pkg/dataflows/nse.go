package dataflows

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
)

const nseUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// NSEClient fetches corporate announcements and bulk deals from the NSE
// public endpoints. The API refuses requests without the cookies set by the
// landing page, so every session is primed with a GET on the home page first.
type NSEClient struct {
	client *resty.Client
	cache  *CacheManager
	primed bool
}

// NewNSEClient creates a new NSE client
func NewNSEClient(config *Config) *NSEClient {
	cacheDir := filepath.Join(config.DataCacheDir, "nse")
	cache := NewCacheManager(cacheDir, 30*time.Minute, config.CacheEnabled)

	client := resty.New()
	client.SetBaseURL("https://www.nseindia.com")
	client.SetTimeout(30 * time.Second)
	client.SetHeader("User-Agent", nseUserAgent)
	client.SetHeader("Referer", "https://www.nseindia.com/")
	client.SetHeader("Accept", "application/json, text/plain, */*")

	return &NSEClient{
		client: client,
		cache:  cache,
	}
}

// prime loads the NSE home page once so the session cookies are in place.
func (nc *NSEClient) prime(ctx context.Context) error {
	if nc.primed {
		return nil
	}

	resp, err := nc.client.R().SetContext(ctx).Get("/")
	if err != nil {
		return fmt.Errorf("failed to prime NSE session: %w", err)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("HTTP error %d when priming NSE session", resp.StatusCode())
	}

	nc.primed = true
	return nil
}

// GetCorporateAnnouncements fetches official filings for the equities index
// over a date range. Malformed rows are skipped individually.
func (nc *NSEClient) GetCorporateAnnouncements(ctx context.Context, from, to time.Time) ([]FilingItem, error) {
	cacheKey := map[string]string{
		"from": from.Format("2006-01-02"),
		"to":   to.Format("2006-01-02"),
	}
	var cached []FilingItem
	if nc.cache.Get("nse", "announcements", cacheKey, &cached) {
		return cached, nil
	}

	var items []FilingItem
	err := WithRetry(DefaultRetryConfig(), func() error {
		if err := nc.prime(ctx); err != nil {
			return err
		}

		resp, err := nc.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"index":     "equities",
				"from_date": from.Format("02-01-2006"),
				"to_date":   to.Format("02-01-2006"),
			}).
			Get("/api/corporate-announcements")
		if err != nil {
			return fmt.Errorf("failed to fetch corporate announcements: %w", err)
		}
		if resp.StatusCode() != 200 {
			// A stale session is the usual cause; re-prime on the next attempt.
			nc.primed = false
			return fmt.Errorf("HTTP error %d when fetching corporate announcements", resp.StatusCode())
		}

		items = decodeItems[FilingItem](resp.Body(), "corporate announcement")
		return nil
	})

	if err != nil {
		return nil, err
	}

	nc.cache.Set("nse", "announcements", cacheKey, items)
	return items, nil
}

// GetBulkDeals fetches bulk/block deals one day at a time over the range.
// The historical endpoint rejects wide ranges, and a failed day only costs
// that day's rows.
func (nc *NSEClient) GetBulkDeals(ctx context.Context, from, to time.Time) ([]BlockDealItem, error) {
	cacheKey := map[string]string{
		"from": from.Format("2006-01-02"),
		"to":   to.Format("2006-01-02"),
	}
	var cached []BlockDealItem
	if nc.cache.Get("nse", "bulk_deals", cacheKey, &cached) {
		return cached, nil
	}

	var deals []BlockDealItem
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		dayDeals, err := nc.getBulkDealsForDay(ctx, day)
		if err != nil {
			log.Printf("bulk deals for %s unavailable: %v", day.Format("2006-01-02"), err)
			continue
		}
		deals = append(deals, dayDeals...)
	}

	nc.cache.Set("nse", "bulk_deals", cacheKey, deals)
	return deals, nil
}

func (nc *NSEClient) getBulkDealsForDay(ctx context.Context, day time.Time) ([]BlockDealItem, error) {
	var deals []BlockDealItem
	err := WithRetry(DefaultRetryConfig(), func() error {
		if err := nc.prime(ctx); err != nil {
			return err
		}

		resp, err := nc.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"optionType": "bulk_deals",
				"from":       day.Format("02-01-2006"),
				"to":         day.Format("02-01-2006"),
			}).
			Get("/api/historical/bulk-deals")
		if err != nil {
			return fmt.Errorf("failed to fetch bulk deals: %w", err)
		}
		if resp.StatusCode() != 200 {
			nc.primed = false
			return fmt.Errorf("HTTP error %d when fetching bulk deals", resp.StatusCode())
		}

		var envelope struct {
			Data []json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
			return fmt.Errorf("failed to parse bulk deals response: %w", err)
		}

		deals = deals[:0]
		for _, raw := range envelope.Data {
			var deal BlockDealItem
			if err := json.Unmarshal(raw, &deal); err != nil {
				log.Printf("skipping malformed bulk deal row: %v", err)
				continue
			}
			deals = append(deals, deal)
		}
		return nil
	})

	return deals, err
}

// decodeItems unmarshals a JSON array element by element so one malformed
// row never discards the batch.
func decodeItems[T any](body []byte, what string) []T {
	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		log.Printf("failed to parse %s response: %v", what, err)
		return nil
	}

	items := make([]T, 0, len(rows))
	for _, raw := range rows {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			log.Printf("skipping malformed %s row: %v", what, err)
			continue
		}
		items = append(items, item)
	}
	return items
}
