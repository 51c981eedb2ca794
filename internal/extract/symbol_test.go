package extract

import (
	"testing"

	"github.com/ssarda/nsescan/models"
)

func TestNormalizeSymbol(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{" tcs ", "TCS"},
		{"", models.SymbolUnknown},
		{"   ", models.SymbolUnknown},
		{"m&m", "M&M"},
		{"bajaj auto", "BAJAJAUTO"},
		{"reliance\t", "RELIANCE"},
	}

	for _, c := range cases {
		if got := NormalizeSymbol(c.raw); got != c.want {
			t.Errorf("NormalizeSymbol(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestNormalizeSymbolPreservesSentinels(t *testing.T) {
	sentinels := []string{
		models.SymbolUnresolvedNews,
		models.SymbolGenericMarketNews,
		models.SymbolUnknown,
	}
	for _, sentinel := range sentinels {
		got := NormalizeSymbol(sentinel)
		if got != sentinel {
			t.Errorf("NormalizeSymbol(%q) = %q, sentinel must survive normalization", sentinel, got)
		}
		if IsTradable(got) {
			t.Errorf("normalized sentinel %q must not be tradable", got)
		}
	}
}

func TestIsTradable(t *testing.T) {
	if IsTradable(models.SymbolUnresolvedNews) {
		t.Error("news sentinel must not be tradable")
	}
	if IsTradable(models.SymbolUnknown) {
		t.Error("UNKNOWN must not be tradable")
	}
	if IsTradable("AVERYLONGSYMBOLNAME") {
		t.Error("symbols over 15 characters must not be tradable")
	}
	if !IsTradable("TCS") {
		t.Error("TCS should be tradable")
	}
}
