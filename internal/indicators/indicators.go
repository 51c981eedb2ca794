package indicators

import (
	"github.com/ssarda/nsescan/models"
)

// sma averages the last period closes. ok is false when the series is
// shorter than the window.
func sma(closes []float64, period int) (float64, bool) {
	if len(closes) < period {
		return 0, false
	}
	sum := 0.0
	for _, c := range closes[len(closes)-period:] {
		sum += c
	}
	return sum / float64(period), true
}

// rsi computes a simple-average RSI over the last period price changes.
// A window without losses saturates at 100.
func rsi(closes []float64, period int) (float64, bool) {
	if len(closes) < period+1 {
		return 0, false
	}

	var avgGain, avgLoss float64
	start := len(closes) - period
	for i := start; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss += -change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	if avgLoss == 0 {
		return 100, true
	}
	rs := avgGain / avgLoss
	return 100 - (100 / (1 + rs)), true
}

// emaSeries returns the exponential moving average with smoothing
// 2/(period+1), seeded from the first value. One output per input bar, so
// the fast and slow lines stay aligned by index.
func emaSeries(values []float64, period int) []float64 {
	if len(values) == 0 {
		return nil
	}

	multiplier := 2.0 / (float64(period) + 1.0)

	result := make([]float64, len(values))
	result[0] = values[0]
	for i := 1; i < len(values); i++ {
		result[i] = (values[i] * multiplier) + (result[i-1] * (1 - multiplier))
	}
	return result
}

// macdState compares the latest MACD line value (EMA12-EMA26) against its
// 9-period signal line.
func macdState(closes []float64) (models.MACDState, bool) {
	if len(closes) < 2 {
		return "", false
	}

	ema12 := emaSeries(closes, 12)
	ema26 := emaSeries(closes, 26)

	macdLine := make([]float64, len(closes))
	for i := range closes {
		macdLine[i] = ema12[i] - ema26[i]
	}

	signal := emaSeries(macdLine, 9)

	if macdLine[len(macdLine)-1] > signal[len(signal)-1] {
		return models.MACDBullish, true
	}
	return models.MACDBearish, true
}

// volumeSpike reports whether the latest bar's volume exceeds 1.5x the
// average of the window bars immediately preceding it.
func volumeSpike(volumes []int64, window int) bool {
	if len(volumes) < window+1 {
		return false
	}

	last := volumes[len(volumes)-1]
	sum := int64(0)
	for _, v := range volumes[len(volumes)-window-1 : len(volumes)-1] {
		sum += v
	}
	avg := float64(sum) / float64(window)
	return float64(last) > 1.5*avg
}

// verdict maps a composite score to its discrete classification.
func verdict(score float64) models.Verdict {
	switch {
	case score >= 3:
		return models.VerdictStrongBuy
	case score >= 2:
		return models.VerdictBuy
	case score > 1:
		return models.VerdictNeutral
	default:
		return models.VerdictSell
	}
}
