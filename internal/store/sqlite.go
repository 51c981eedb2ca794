package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ssarda/nsescan/models"
	"github.com/ssarda/nsescan/pkg/sqlite"
)

const createEventsTable = `
CREATE TABLE IF NOT EXISTS events (
	position   INTEGER NOT NULL,
	date       TEXT    NOT NULL,
	symbol     TEXT    NOT NULL,
	type       TEXT    NOT NULL,
	headline   TEXT    NOT NULL,
	sentiment  TEXT    NOT NULL,
	value_cr   REAL    NOT NULL,
	details    TEXT    NOT NULL DEFAULT '',
	source     TEXT    NOT NULL DEFAULT '',
	PRIMARY KEY (date, symbol, headline)
);`

// SQLiteStore keeps the event table in a SQLite database. The table is
// rewritten inside one transaction per save, preserving merge order via an
// explicit position column.
type SQLiteStore struct {
	db         *sql.DB
	maxRecords int
}

// NewSQLiteStore opens the database at dbPath and ensures the schema.
func NewSQLiteStore(dbPath string, maxRecords int) (*SQLiteStore, error) {
	db, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(createEventsTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create events table: %w", err)
	}
	return &SQLiteStore{db: db, maxRecords: maxRecords}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Load() ([]models.EventRecord, error) {
	rows, err := s.db.Query(`
		SELECT date, symbol, type, headline, sentiment, value_cr, details, source
		FROM events ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var records []models.EventRecord
	for rows.Next() {
		var dateStr string
		var rec models.EventRecord
		var typ, sentiment string
		if err := rows.Scan(&dateStr, &rec.Symbol, &typ, &rec.Headline,
			&sentiment, &rec.ValueCr, &rec.Details, &rec.Source); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		date, err := parseISODate(dateStr)
		if err != nil {
			continue
		}
		rec.Date = date
		rec.Type = models.SourceType(typ)
		rec.Sentiment = models.Sentiment(sentiment)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) MergeAndSave(incoming []models.EventRecord) (int, error) {
	existing, err := s.Load()
	if err != nil {
		return 0, err
	}

	added := countNew(incoming, existing)
	merged := Merge(incoming, existing)
	if s.maxRecords > 0 && len(merged) > s.maxRecords {
		merged = merged[:s.maxRecords]
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM events`); err != nil {
		return 0, fmt.Errorf("clear events: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO events (position, date, symbol, type, headline, sentiment, value_cr, details, source)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range merged {
		_, err := stmt.Exec(i, rec.Date.Format("2006-01-02"), rec.Symbol,
			string(rec.Type), rec.Headline, string(rec.Sentiment),
			rec.ValueCr, rec.Details, rec.Source)
		if err != nil {
			return 0, fmt.Errorf("insert event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit save: %w", err)
	}
	return added, nil
}

func parseISODate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
