package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ssarda/nsescan/models"
)

func mkEvent(symbol, headline string) models.EventRecord {
	return models.EventRecord{
		Date:      time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC),
		Symbol:    symbol,
		Type:      models.SourceOfficialFiling,
		Headline:  headline,
		Sentiment: models.SentimentPositive,
		ValueCr:   100,
		Details:   "details",
		Source:    "NSE",
	}
}

func TestMergeDedupsByDaySymbolHeadline(t *testing.T) {
	a := mkEvent("TCS", "Order win")
	b := mkEvent("INFY", "Contract bagged")

	merged := Merge([]models.EventRecord{a, b}, []models.EventRecord{a})
	if len(merged) != 2 {
		t.Fatalf("expected 2 records after merge, got %d", len(merged))
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	a := mkEvent("TCS", "Order win")
	b := mkEvent("INFY", "Contract bagged")
	batch := []models.EventRecord{a, b}

	once := Merge(batch, nil)
	twice := Merge(batch, once)
	if len(twice) != len(once) {
		t.Fatalf("merging a batch twice grew the table: %d -> %d", len(once), len(twice))
	}
}

func TestMergeIncomingWinsOnDuplicateKey(t *testing.T) {
	fresh := mkEvent("TCS", "Order win")
	fresh.Details = "updated details"
	stale := mkEvent("TCS", "Order win")

	merged := Merge([]models.EventRecord{fresh}, []models.EventRecord{stale})
	if len(merged) != 1 {
		t.Fatalf("expected 1 record, got %d", len(merged))
	}
	if merged[0].Details != "updated details" {
		t.Errorf("incoming record must win the tie, got %q", merged[0].Details)
	}
}

func TestMergeDifferentDaysAreDistinct(t *testing.T) {
	a := mkEvent("TCS", "Order win")
	b := mkEvent("TCS", "Order win")
	b.Date = a.Date.AddDate(0, 0, 1)

	merged := Merge([]models.EventRecord{a}, []models.EventRecord{b})
	if len(merged) != 2 {
		t.Fatalf("same headline on different days must both survive, got %d", len(merged))
	}
}

func TestCSVStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.csv")
	s := NewCSVStore(path, 0)

	a := mkEvent("TCS", "Order win, with | punctuation")
	b := mkEvent("INFY", "Contract bagged")

	added, err := s.MergeAndSave([]models.EventRecord{a, b})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if added != 2 {
		t.Errorf("expected 2 new records, got %d", added)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 records, got %d", len(loaded))
	}
	if loaded[0].Headline != a.Headline {
		t.Errorf("headline mangled in round trip: %q", loaded[0].Headline)
	}
	if loaded[0].ValueCr != 100 {
		t.Errorf("value mangled in round trip: %v", loaded[0].ValueCr)
	}
}

func TestCSVStoreTwoRunsKeepOneCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.csv")
	s := NewCSVStore(path, 0)

	batch := []models.EventRecord{mkEvent("TCS", "Order win"), mkEvent("INFY", "Contract bagged")}

	if _, err := s.MergeAndSave(batch); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	added, err := s.MergeAndSave(batch)
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if added != 0 {
		t.Errorf("re-ingesting the same batch must add 0 records, got %d", added)
	}

	loaded, _ := s.Load()
	if len(loaded) != 2 {
		t.Errorf("expected 2 records after double ingest, got %d", len(loaded))
	}
}

func TestCSVStoreMissingFileLoadsEmpty(t *testing.T) {
	s := NewCSVStore(filepath.Join(t.TempDir(), "absent.csv"), 0)

	records, err := s.Load()
	if err != nil {
		t.Fatalf("missing store must not error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("missing store must read as empty, got %d records", len(records))
	}
}

func TestCSVStoreCorruptFileLoadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.csv")
	if err := os.WriteFile(path, []byte("\"unterminated quote\nnot,csv"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewCSVStore(path, 0)
	records, err := s.Load()
	if err != nil {
		t.Fatalf("corrupt store must not error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("corrupt store must read as empty, got %d records", len(records))
	}
}

func TestCSVStoreSkipsMalformedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.csv")
	content := "Date,Symbol,Type,Headline,Sentiment,Value_Cr,Details,Source\n" +
		"2025-08-14,TCS,Official Filing,Order win,Positive,100,d,NSE\n" +
		"garbage-date,TCS,Official Filing,Bad row,Positive,100,d,NSE\n" +
		"2025-08-14,INFY,Official Filing,Bad value,Positive,not-a-number,d,NSE\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewCSVStore(path, 0)
	records, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected only the valid row to survive, got %d", len(records))
	}
	if records[0].Symbol != "TCS" {
		t.Errorf("unexpected surviving row: %+v", records[0])
	}
}

func TestCSVStoreCapsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.csv")
	s := NewCSVStore(path, 3)

	var batch []models.EventRecord
	for _, sym := range []string{"A", "B", "C", "D", "E"} {
		batch = append(batch, mkEvent(sym, "Order win "+sym))
	}
	if _, err := s.MergeAndSave(batch); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, _ := s.Load()
	if len(loaded) != 3 {
		t.Fatalf("expected cap of 3, got %d", len(loaded))
	}
	if loaded[0].Symbol != "A" || loaded[2].Symbol != "C" {
		t.Errorf("cap must keep the head of the merged order, got %s..%s",
			loaded[0].Symbol, loaded[2].Symbol)
	}
}
