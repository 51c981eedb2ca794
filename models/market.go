package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketData represents one daily price bar for an instrument.
type MarketData struct {
	Symbol string          `json:"symbol"`
	Date   time.Time       `json:"date"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume int64           `json:"volume"`
}

// MACDState is the trend reading of the MACD line against its signal line.
type MACDState string

const (
	MACDBullish MACDState = "Bullish"
	MACDBearish MACDState = "Bearish"
)

// Verdict is the discrete classification derived from the indicator score.
type Verdict string

const (
	VerdictStrongBuy Verdict = "Strong Buy"
	VerdictBuy       Verdict = "Buy"
	VerdictNeutral   Verdict = "Neutral"
	VerdictSell      Verdict = "Sell"
)

// IndicatorSnapshot is a derived, ephemeral view of an instrument's technical
// state. It is recomputed on demand and never persisted.
type IndicatorSnapshot struct {
	Symbol      string    `json:"symbol"`
	Price       float64   `json:"price"`
	RSI14       float64   `json:"rsi14"`
	MACDState   MACDState `json:"macd_state"`
	SMA50       float64   `json:"sma50"`
	SMA200      float64   `json:"sma200"`
	VolumeSpike bool      `json:"volume_spike"`
	Score       float64   `json:"score"`
	Verdict     Verdict   `json:"verdict"`
	ComputedAt  time.Time `json:"computed_at"`
}
