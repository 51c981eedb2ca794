package models

import (
	"strings"
	"time"
)

// SourceType identifies which ingestion path produced an event.
type SourceType string

const (
	SourceOfficialFiling SourceType = "Official Filing"
	SourceBlockTrade     SourceType = "Block Deal"
	SourceNewsRumor      SourceType = "Future/Rumor"
)

// Sentiment is the three-valued classification attached to every event.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// Placeholder symbols used when no tradable instrument could be resolved.
const (
	SymbolUnresolvedNews    = "UNRESOLVED_NEWS"
	SymbolGenericMarketNews = "GENERIC_MARKET_NEWS"
	SymbolUnknown           = "UNKNOWN"
)

// EventRecord is one observed market event, normalized from any source.
// Records are append-only: once merged into the store they are never mutated.
type EventRecord struct {
	Date      time.Time  `json:"date"`
	Symbol    string     `json:"symbol"`
	Type      SourceType `json:"type"`
	Headline  string     `json:"headline"`
	Sentiment Sentiment  `json:"sentiment"`
	ValueCr   float64    `json:"value_cr"`
	Details   string     `json:"details"`
	Source    string     `json:"source"`
}

// Key returns the deduplication identity: calendar day, symbol, headline.
func (e EventRecord) Key() string {
	return e.Date.Format("2006-01-02") + "|" + strings.ToUpper(e.Symbol) + "|" + e.Headline
}

// IsPlaceholderSymbol reports whether the record carries a sentinel instead of
// an instrument code.
func (e EventRecord) IsPlaceholderSymbol() bool {
	switch e.Symbol {
	case SymbolUnresolvedNews, SymbolGenericMarketNews, SymbolUnknown:
		return true
	}
	return false
}
