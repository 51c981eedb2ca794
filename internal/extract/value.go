package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Deal values show up in filings and headlines in two common units: crore
// ("Rs 654.03 Crore", "500 Cr") and million ("3.5 Mn"). Everything is
// normalized to crore (1 crore = 10,000,000; 1 million = 0.1 crore).
var (
	croreRe   = regexp.MustCompile(`(?:rs\.?|inr)?\s?(\d+(?:\.\d+)?)\s?(?:cr|crore)`)
	millionRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s?(?:mn|million)`)
)

// ValueCrore extracts a monetary magnitude in crore from free-form text.
// The crore pattern takes precedence over the million pattern; the first
// match in scan order wins. Text with no recognizable amount yields 0.
func ValueCrore(text string) float64 {
	t := strings.ReplaceAll(strings.ToLower(text), ",", "")

	if m := croreRe.FindStringSubmatch(t); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0
		}
		return v
	}

	if m := millionRe.FindStringSubmatch(t); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0
		}
		return math.Round(v*0.1*100) / 100
	}

	return 0
}
