package store

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ssarda/nsescan/models"
)

var csvHeader = []string{"Date", "Symbol", "Type", "Headline", "Sentiment", "Value_Cr", "Details", "Source"}

// CSVStore persists the event table as a flat delimited file. Writes go to
// a temp file in the same directory followed by a rename, so readers never
// observe a partially written store.
type CSVStore struct {
	path       string
	maxRecords int
}

// NewCSVStore creates a CSV-backed event store.
func NewCSVStore(path string, maxRecords int) *CSVStore {
	return &CSVStore{path: path, maxRecords: maxRecords}
}

func (s *CSVStore) Load() ([]models.EventRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		// A corrupt store reads as empty; the next save recreates it.
		log.Printf("event store unreadable, treating as empty: %v", err)
		return nil, nil
	}

	var records []models.EventRecord
	for i, row := range rows {
		if i == 0 && len(row) > 0 && row[0] == csvHeader[0] {
			continue // header
		}
		rec, ok := parseRow(row)
		if !ok {
			log.Printf("skipping malformed store row %d", i+1)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *CSVStore) MergeAndSave(incoming []models.EventRecord) (int, error) {
	existing, err := s.Load()
	if err != nil {
		return 0, err
	}

	added := countNew(incoming, existing)
	merged := Merge(incoming, existing)
	if s.maxRecords > 0 && len(merged) > s.maxRecords {
		merged = merged[:s.maxRecords]
	}

	if err := s.write(merged); err != nil {
		return 0, err
	}
	return added, nil
}

func (s *CSVStore) write(records []models.EventRecord) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".nse_events_*.csv")
	if err != nil {
		return fmt.Errorf("create temp store: %w", err)
	}
	defer os.Remove(tmp.Name())

	writer := csv.NewWriter(tmp)
	if err := writer.Write(csvHeader); err != nil {
		tmp.Close()
		return fmt.Errorf("write store header: %w", err)
	}
	for _, rec := range records {
		if err := writer.Write(formatRow(rec)); err != nil {
			tmp.Close()
			return fmt.Errorf("write store row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp store: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}

func formatRow(rec models.EventRecord) []string {
	return []string{
		rec.Date.Format("2006-01-02"),
		rec.Symbol,
		string(rec.Type),
		rec.Headline,
		string(rec.Sentiment),
		strconv.FormatFloat(rec.ValueCr, 'f', -1, 64),
		rec.Details,
		rec.Source,
	}
}

func parseRow(row []string) (models.EventRecord, bool) {
	if len(row) < 8 {
		return models.EventRecord{}, false
	}

	date, err := time.Parse("2006-01-02", row[0])
	if err != nil {
		return models.EventRecord{}, false
	}

	value, err := strconv.ParseFloat(row[5], 64)
	if err != nil || value < 0 {
		return models.EventRecord{}, false
	}

	return models.EventRecord{
		Date:      date,
		Symbol:    row[1],
		Type:      models.SourceType(row[2]),
		Headline:  row[3],
		Sentiment: models.Sentiment(row[4]),
		ValueCr:   value,
		Details:   row[6],
		Source:    row[7],
	}, true
}
