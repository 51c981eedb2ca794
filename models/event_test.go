package models

import (
	"testing"
	"time"
)

func TestEventRecordKey(t *testing.T) {
	rec := EventRecord{
		Date:     time.Date(2025, 8, 14, 15, 30, 0, 0, time.UTC),
		Symbol:   "tcs",
		Headline: "Order win",
	}

	if got := rec.Key(); got != "2025-08-14|TCS|Order win" {
		t.Errorf("unexpected key %q", got)
	}

	// Same day, different clock time: identical key.
	later := rec
	later.Date = rec.Date.Add(5 * time.Hour)
	if later.Key() != rec.Key() {
		t.Error("key must have day resolution")
	}
}

func TestIsPlaceholderSymbol(t *testing.T) {
	for _, sentinel := range []string{SymbolUnresolvedNews, SymbolGenericMarketNews, SymbolUnknown} {
		rec := EventRecord{Symbol: sentinel}
		if !rec.IsPlaceholderSymbol() {
			t.Errorf("%s must read as a placeholder", sentinel)
		}
	}

	if (EventRecord{Symbol: "TCS"}).IsPlaceholderSymbol() {
		t.Error("TCS is a real symbol, not a placeholder")
	}
}
