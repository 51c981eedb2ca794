package scanner

import (
	"context"
	"log"
	"time"

	"github.com/ssarda/nsescan/config"
	"github.com/ssarda/nsescan/internal/events"
	"github.com/ssarda/nsescan/internal/store"
	"github.com/ssarda/nsescan/models"
	"github.com/ssarda/nsescan/pkg/dataflows"
)

const sourceTimeout = 2 * time.Minute

// Result summarizes one ingestion run.
type Result struct {
	Filings    int
	BlockDeals int
	Headlines  int
	Added      int
	Total      int
}

// Scanner pulls events from every configured source, normalizes them and
// merges them into the event store. A dead source never fails the run; it
// only costs that source's events.
type Scanner struct {
	cfg   *config.Config
	nse   *dataflows.NSEClient
	news  *dataflows.GoogleNewsClient
	store store.EventStore
}

// New wires a scanner from configuration.
func New(cfg *config.Config, eventStore store.EventStore) *Scanner {
	return &Scanner{
		cfg:   cfg,
		nse:   dataflows.NewNSEClient(cfg),
		news:  dataflows.NewGoogleNewsClient(cfg),
		store: eventStore,
	}
}

// Run executes one full scan: fetch, normalize, merge, persist. The merge
// and save happen once, after all sources have reported.
func (s *Scanner) Run(ctx context.Context) (*Result, error) {
	to := time.Now()
	from := to.AddDate(0, 0, -s.cfg.LookbackDays)

	result := &Result{}
	var batch []models.EventRecord

	filings := s.fetchFilings(ctx, from, to)
	for _, item := range filings {
		if rec, ok := events.FromFiling(item); ok {
			batch = append(batch, rec)
			result.Filings++
		}
	}

	deals := s.fetchBlockDeals(ctx, from, to)
	for _, item := range deals {
		if rec, ok := events.FromBlockDeal(item); ok {
			batch = append(batch, rec)
			result.BlockDeals++
		}
	}

	headlines := s.fetchHeadlines(ctx)
	for _, item := range headlines {
		if rec, ok := events.FromHeadline(item); ok {
			batch = append(batch, rec)
			result.Headlines++
		}
	}

	added, err := s.store.MergeAndSave(batch)
	if err != nil {
		return nil, err
	}
	result.Added = added

	all, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	result.Total = len(all)

	return result, nil
}

func (s *Scanner) fetchFilings(ctx context.Context, from, to time.Time) []dataflows.FilingItem {
	ctx, cancel := context.WithTimeout(ctx, sourceTimeout)
	defer cancel()

	items, err := s.nse.GetCorporateAnnouncements(ctx, from, to)
	if err != nil {
		log.Printf("corporate announcements unavailable: %v", err)
		return nil
	}
	return items
}

func (s *Scanner) fetchBlockDeals(ctx context.Context, from, to time.Time) []dataflows.BlockDealItem {
	ctx, cancel := context.WithTimeout(ctx, sourceTimeout)
	defer cancel()

	items, err := s.nse.GetBulkDeals(ctx, from, to)
	if err != nil {
		log.Printf("bulk deals unavailable: %v", err)
		return nil
	}
	return items
}

func (s *Scanner) fetchHeadlines(ctx context.Context) []dataflows.NewsItem {
	ctx, cancel := context.WithTimeout(ctx, sourceTimeout)
	defer cancel()

	var items []dataflows.NewsItem
	for _, query := range s.cfg.NewsQueries {
		hits, err := s.news.Search(ctx, query, s.cfg.NewsMaxPerQuery)
		if err != nil {
			log.Printf("news query %q unavailable: %v", query, err)
			continue
		}
		items = append(items, hits...)
	}
	return items
}
