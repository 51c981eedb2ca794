package dataflows

import (
	"context"
	"errors"
	"time"

	lpconfig "github.com/longportapp/openapi-go/config"
	"github.com/longportapp/openapi-go/quote"

	"github.com/ssarda/nsescan/models"
)

// LongportClient is an alternative price-history provider backed by the
// Longport OpenAPI, for symbols quoted outside the NSE (HK/US markets).
type LongportClient struct {
	quoteCtx *quote.QuoteContext
}

// NewLongportClient creates a new Longport client
func NewLongportClient(cfg *Config) (*LongportClient, error) {
	if cfg.LongportAppKey == "" || cfg.LongportAppSecret == "" || cfg.LongportAccessToken == "" {
		return nil, errors.New("longport API credentials not configured")
	}

	conf, err := lpconfig.New(lpconfig.WithConfigKey(cfg.LongportAppKey, cfg.LongportAppSecret, cfg.LongportAccessToken))
	if err != nil {
		return nil, err
	}

	quoteContext, err := quote.NewFromCfg(conf)
	if err != nil {
		return nil, err
	}

	return &LongportClient{
		quoteCtx: quoteContext,
	}, nil
}

// GetDailyHistory gets daily candlesticks for a symbol over a trailing window.
func (lpc *LongportClient) GetDailyHistory(ctx context.Context, symbol string, days int) ([]models.MarketData, error) {
	if lpc.quoteCtx == nil {
		return nil, errors.New("quote context is nil")
	}

	sticks, err := lpc.quoteCtx.Candlesticks(ctx, symbol, quote.PeriodDay, int32(days), quote.AdjustTypeNo)
	if err != nil {
		return nil, err
	}

	result := make([]models.MarketData, 0, len(sticks))
	for _, stick := range sticks {
		if stick == nil || stick.Close == nil {
			continue
		}

		bar := models.MarketData{
			Symbol: symbol,
			Date:   time.Unix(stick.Timestamp, 0),
			Close:  *stick.Close,
			Volume: stick.Volume,
		}
		if stick.Open != nil {
			bar.Open = *stick.Open
		}
		if stick.High != nil {
			bar.High = *stick.High
		}
		if stick.Low != nil {
			bar.Low = *stick.Low
		}
		result = append(result, bar)
	}

	return result, nil
}
