package events

import (
	"strings"
	"testing"

	"github.com/ssarda/nsescan/models"
	"github.com/ssarda/nsescan/pkg/dataflows"
)

func TestFromFilingEmitsRelevantEvent(t *testing.T) {
	item := dataflows.FilingItem{
		Symbol:      "abc",
		Description: "Company bags order worth Rs 500 Crore",
		AnnouncedAt: "15-Jan-2025 09:30:00",
	}

	rec, ok := FromFiling(item)
	if !ok {
		t.Fatal("expected filing to be emitted")
	}
	if rec.Sentiment != models.SentimentPositive {
		t.Errorf("expected Positive sentiment, got %s", rec.Sentiment)
	}
	if rec.ValueCr != 500 {
		t.Errorf("expected value 500, got %v", rec.ValueCr)
	}
	if rec.Type != models.SourceOfficialFiling {
		t.Errorf("expected Official Filing type, got %s", rec.Type)
	}
	if rec.Symbol != "ABC" {
		t.Errorf("expected normalized symbol ABC, got %s", rec.Symbol)
	}
}

func TestFromFilingSuppressesAdministrativeNoise(t *testing.T) {
	item := dataflows.FilingItem{
		Symbol:      "XYZ",
		Description: "Intimation of board meeting under Regulation 29",
		AnnouncedAt: "15-Jan-2025",
	}

	if _, ok := FromFiling(item); ok {
		t.Error("administrative filing without value or keywords must be filtered")
	}
}

func TestFromFilingSkipsMalformedDate(t *testing.T) {
	item := dataflows.FilingItem{
		Symbol:      "XYZ",
		Description: "Bagged contract",
		AnnouncedAt: "not a date",
	}

	if _, ok := FromFiling(item); ok {
		t.Error("filing with unparseable date must be skipped")
	}
}

func TestFromFilingCapsDetails(t *testing.T) {
	item := dataflows.FilingItem{
		Symbol:         "XYZ",
		Description:    "Order win",
		AttachmentText: strings.Repeat("x", 2000),
		AnnouncedAt:    "15-Jan-2025",
	}

	rec, ok := FromFiling(item)
	if !ok {
		t.Fatal("expected filing to be emitted")
	}
	if got := len([]rune(rec.Details)); got > 500 {
		t.Errorf("details not capped: %d runes", got)
	}
}

func TestFromBlockDeal(t *testing.T) {
	item := dataflows.BlockDealItem{
		Date:     "14-Aug-2025",
		Symbol:   "tcs",
		Side:     "BUY",
		Quantity: 100000,
		Price:    512.30,
		Client:   "BIG FUND LLP",
	}

	rec, ok := FromBlockDeal(item)
	if !ok {
		t.Fatal("expected block deal to be emitted")
	}
	if rec.Sentiment != models.SentimentPositive {
		t.Errorf("BUY deal must be Positive, got %s", rec.Sentiment)
	}
	// 100000 * 512.30 / 1e7 = 5.12 crore
	if rec.ValueCr != 5.12 {
		t.Errorf("expected 5.12 crore, got %v", rec.ValueCr)
	}
	if rec.Symbol != "TCS" {
		t.Errorf("expected TCS, got %s", rec.Symbol)
	}

	item.Side = "SELL"
	rec, _ = FromBlockDeal(item)
	if rec.Sentiment != models.SentimentNegative {
		t.Errorf("SELL deal must be Negative, got %s", rec.Sentiment)
	}
}

func TestFromBlockDealSkipsMalformedRow(t *testing.T) {
	item := dataflows.BlockDealItem{
		Date:   "14-Aug-2025",
		Symbol: "TCS",
		Side:   "BUY",
	}

	if _, ok := FromBlockDeal(item); ok {
		t.Error("deal with zero quantity/price must be skipped")
	}
}

func TestFromHeadline(t *testing.T) {
	item := dataflows.NewsItem{
		Title:      "Acme declared L1 bidder for Rs 1,200 Crore project",
		Link:       "https://example.com/story",
		SourceName: "Example News",
	}

	rec, ok := FromHeadline(item)
	if !ok {
		t.Fatal("expected headline to be emitted")
	}
	if rec.Symbol != models.SymbolUnresolvedNews {
		t.Errorf("expected sentinel symbol, got %s", rec.Symbol)
	}
	if rec.Sentiment != models.SentimentPositive {
		t.Errorf("expected Positive sentiment, got %s", rec.Sentiment)
	}
	if rec.ValueCr != 1200 {
		t.Errorf("expected 1200 crore, got %v", rec.ValueCr)
	}
	if !strings.Contains(rec.Details, "example.com") {
		t.Errorf("details must carry the link, got %q", rec.Details)
	}
}
