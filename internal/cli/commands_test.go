package cli

import (
	"testing"
	"time"

	"github.com/ssarda/nsescan/models"
)

func event(day int, symbol, headline string) models.EventRecord {
	return models.EventRecord{
		Date:      time.Date(2025, 8, day, 0, 0, 0, 0, time.UTC),
		Symbol:    symbol,
		Type:      models.SourceOfficialFiling,
		Headline:  headline,
		Sentiment: models.SentimentPositive,
	}
}

func TestSortEventsNewestFirst(t *testing.T) {
	records := []models.EventRecord{
		event(12, "TCS", "older"),
		event(14, "INFY", "newest"),
		event(13, "ABB", "middle"),
		event(14, "TCS", "same day, later in store"),
	}

	sortEventsNewestFirst(records)

	if records[0].Headline != "newest" || records[1].Headline != "same day, later in store" {
		t.Errorf("expected date-descending order with stable same-day rows, got %q then %q",
			records[0].Headline, records[1].Headline)
	}
	if records[3].Headline != "older" {
		t.Errorf("oldest record must sort last, got %q", records[3].Headline)
	}
}

func TestFilterEvents(t *testing.T) {
	records := []models.EventRecord{
		event(14, "TCS", "Order win for data centre"),
		event(14, "INFY", "Contract bagged"),
		event(13, "TCS", "Penalty imposed"),
	}

	bySymbol := filterEvents(records, "tcs", "", "")
	if len(bySymbol) != 2 {
		t.Errorf("symbol filter must normalize and match, got %d records", len(bySymbol))
	}

	bySearch := filterEvents(records, "", "", "data centre")
	if len(bySearch) != 1 || bySearch[0].Symbol != "TCS" {
		t.Errorf("search filter must match headline text, got %v", bySearch)
	}

	combined := filterEvents(records, "TCS", "", "penalty")
	if len(combined) != 1 || combined[0].Headline != "Penalty imposed" {
		t.Errorf("filters must compose, got %v", combined)
	}
}
