package dataflows

import (
	"context"
	"fmt"

	"github.com/ssarda/nsescan/models"
)

// PriceProvider returns daily price history for an instrument over a
// trailing window of calendar days.
type PriceProvider interface {
	GetDailyHistory(ctx context.Context, symbol string, days int) ([]models.MarketData, error)
}

// NewPriceProvider selects the configured price-history backend.
func NewPriceProvider(cfg *Config) (PriceProvider, error) {
	switch cfg.PriceProvider {
	case "", "yahoo":
		return NewYahooClient(cfg), nil
	case "longport":
		return NewLongportClient(cfg)
	default:
		return nil, fmt.Errorf("unknown price provider: %s", cfg.PriceProvider)
	}
}
