package store

import (
	"fmt"

	"github.com/ssarda/nsescan/config"
	"github.com/ssarda/nsescan/models"
)

// EventStore is the persisted, append-only event table. Implementations
// must treat merge+write as one logical unit per ingestion run.
type EventStore interface {
	// Load reads the full table. A missing or corrupt store reads as empty.
	Load() ([]models.EventRecord, error)
	// MergeAndSave merges incoming records into the table, dropping
	// duplicates, and persists the result. It returns the number of
	// records that were new to the store.
	MergeAndSave(incoming []models.EventRecord) (int, error)
}

// New selects the configured store backend.
func New(cfg *config.Config) (EventStore, error) {
	switch cfg.StoreBackend {
	case "", "csv":
		return NewCSVStore(cfg.StorePath, cfg.MaxStoreRecords), nil
	case "sqlite":
		return NewSQLiteStore(cfg.StorePath, cfg.MaxStoreRecords)
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.StoreBackend)
	}
}

// Merge concatenates incoming ahead of existing and drops every record
// whose (date, symbol, headline) key duplicates an earlier-kept one.
// Incoming wins ties because it is scanned first. The function is pure and
// idempotent: merging a batch against its own output is a no-op.
func Merge(incoming, existing []models.EventRecord) []models.EventRecord {
	merged := make([]models.EventRecord, 0, len(incoming)+len(existing))
	seen := make(map[string]bool, len(incoming)+len(existing))

	for _, records := range [][]models.EventRecord{incoming, existing} {
		for _, rec := range records {
			key := rec.Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, rec)
		}
	}

	return merged
}

// countNew reports how many incoming records were absent from existing.
func countNew(incoming, existing []models.EventRecord) int {
	keys := make(map[string]bool, len(existing))
	for _, rec := range existing {
		keys[rec.Key()] = true
	}

	added := 0
	for _, rec := range incoming {
		key := rec.Key()
		if keys[key] {
			continue
		}
		keys[key] = true
		added++
	}
	return added
}
