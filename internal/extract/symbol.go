package extract

import (
	"regexp"
	"strings"

	"github.com/ssarda/nsescan/models"
)

// NSE symbols are upper-case alphanumerics plus a few punctuation characters
// (M&M, BAJAJ-AUTO, L&TFH). Anything else is stripped.
var symbolCharRe = regexp.MustCompile(`[^A-Z0-9.&-]`)

// NormalizeSymbol canonicalizes an instrument identifier: trim, drop internal
// spaces, upper-case, strip disallowed characters. Empty input maps to the
// UNKNOWN sentinel; sentinel values pass through unchanged so they survive
// a second normalization.
func NormalizeSymbol(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return models.SymbolUnknown
	}
	switch s {
	case models.SymbolUnresolvedNews, models.SymbolGenericMarketNews, models.SymbolUnknown:
		return s
	}
	s = strings.ToUpper(strings.ReplaceAll(s, " ", ""))
	return symbolCharRe.ReplaceAllString(s, "")
}

// IsTradable reports whether a normalized symbol can be sent to a price
// provider. Sentinels, over-long values and anything containing a space are
// not tickers.
func IsTradable(symbol string) bool {
	switch symbol {
	case "", models.SymbolUnknown, models.SymbolUnresolvedNews, models.SymbolGenericMarketNews:
		return false
	}
	if strings.ContainsRune(symbol, ' ') || len(symbol) > 15 {
		return false
	}
	return true
}
