package dataflows

import (
	"github.com/ssarda/nsescan/config"
)

// Config is an alias for the main application config
type Config = config.Config

// FilingItem is one corporate announcement as returned by the NSE feed.
type FilingItem struct {
	Symbol         string `json:"symbol"`
	Description    string `json:"desc"`
	AttachmentText string `json:"attchmntText"`
	AnnouncedAt    string `json:"an_dt"`
}

// BlockDealItem is one bulk/block deal row as returned by the NSE
// historical deals endpoint.
type BlockDealItem struct {
	Date     string  `json:"BD_DT_DATE"`
	Symbol   string  `json:"BD_SYMBOL"`
	Side     string  `json:"BD_BUY_SELL"`
	Quantity float64 `json:"BD_QTY_TRD"`
	Price    float64 `json:"BD_TP_WATP"`
	Client   string  `json:"BD_CLIENT_NAME"`
}

// NewsItem is one headline from a news feed query.
type NewsItem struct {
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	Link       string `json:"link"`
	SourceName string `json:"source_name"`
	PubDate    string `json:"pub_date"`
	Query      string `json:"query"`
}
