package events

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ssarda/nsescan/internal/extract"
	"github.com/ssarda/nsescan/models"
	"github.com/ssarda/nsescan/pkg/dataflows"
)

const maxDetailsLen = 500

// Most filings are administrative noise (board meetings, trading windows,
// investor calls). A filing is only worth keeping when it carries a deal
// value or one of these terms.
var filingRelevanceTerms = []string{
	"order", "contract", "bagged", "bonus", "acquisition", "dividend",
}

// crore is 10,000,000 currency units, the canonical magnitude unit.
var crore = decimal.NewFromInt(10_000_000)

// FromFiling builds an event from a corporate announcement. It returns
// false when the filing fails the relevance filter or is malformed.
func FromFiling(item dataflows.FilingItem) (models.EventRecord, bool) {
	headline := strings.TrimSpace(item.Description)
	if headline == "" {
		return models.EventRecord{}, false
	}

	date, err := dataflows.ParseDateString(item.AnnouncedAt)
	if err != nil {
		return models.EventRecord{}, false
	}

	text := item.Description + " " + item.AttachmentText
	value := extract.ValueCrore(text)

	if value == 0 && !containsAny(strings.ToLower(text), filingRelevanceTerms) {
		return models.EventRecord{}, false
	}

	return models.EventRecord{
		Date:      date,
		Symbol:    extract.NormalizeSymbol(item.Symbol),
		Type:      models.SourceOfficialFiling,
		Headline:  headline,
		Sentiment: extract.Sentiment(text),
		ValueCr:   value,
		Details:   capDetails(text),
		Source:    "NSE",
	}, true
}

// FromBlockDeal builds an event from a bulk/block deal row. Every deal is a
// signal, so there is no relevance filter; only malformed rows are dropped.
func FromBlockDeal(item dataflows.BlockDealItem) (models.EventRecord, bool) {
	if item.Quantity <= 0 || item.Price <= 0 {
		return models.EventRecord{}, false
	}

	date, err := dataflows.ParseDateString(item.Date)
	if err != nil {
		return models.EventRecord{}, false
	}

	side := strings.ToUpper(strings.TrimSpace(item.Side))
	sentiment := models.SentimentNegative
	if side == "BUY" {
		sentiment = models.SentimentPositive
	}

	value := decimal.NewFromFloat(item.Quantity).
		Mul(decimal.NewFromFloat(item.Price)).
		Div(crore).
		Round(2)

	return models.EventRecord{
		Date:      date,
		Symbol:    extract.NormalizeSymbol(item.Symbol),
		Type:      models.SourceBlockTrade,
		Headline:  fmt.Sprintf("Block %s: %.0f sh @ ₹%.2f", side, item.Quantity, item.Price),
		Sentiment: sentiment,
		ValueCr:   value.InexactFloat64(),
		Details:   capDetails(fmt.Sprintf("Client: %s | Exchange: NSE", item.Client)),
		Source:    "NSE",
	}, true
}

// FromHeadline builds an event from a news query hit. Symbol resolution from
// headline text is not attempted; the record carries the UNRESOLVED_NEWS
// sentinel and the query-biased Positive sentiment.
func FromHeadline(item dataflows.NewsItem) (models.EventRecord, bool) {
	headline := strings.TrimSpace(item.Title)
	if headline == "" {
		return models.EventRecord{}, false
	}

	details := fmt.Sprintf("Source: %s | Link: %s", item.SourceName, item.Link)
	if item.Summary != "" {
		details += " | " + item.Summary
	}

	return models.EventRecord{
		Date:      time.Now(),
		Symbol:    models.SymbolUnresolvedNews,
		Type:      models.SourceNewsRumor,
		Headline:  headline,
		Sentiment: models.SentimentPositive,
		ValueCr:   extract.ValueCrore(headline),
		Details:   capDetails(details),
		Source:    item.SourceName,
	}, true
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func capDetails(s string) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= maxDetailsLen {
		return s
	}
	return string(runes[:maxDetailsLen])
}
