package indicators

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/ssarda/nsescan/config"
	"github.com/ssarda/nsescan/internal/extract"
	"github.com/ssarda/nsescan/models"
	"github.com/ssarda/nsescan/pkg/dataflows"
)

const (
	rsiPeriod       = 14
	volumeWindow    = 20
	snapshotTTL     = time.Hour
	defaultWorkers  = 4
	defaultLookback = 365
)

type cacheEntry struct {
	snapshot *models.IndicatorSnapshot
	expires  time.Time
}

// Engine computes indicator snapshots from daily price history. Snapshots
// are derived data and live only in an in-memory cache with a short TTL.
type Engine struct {
	provider     dataflows.PriceProvider
	lookbackDays int
	workers      int

	mu    sync.Mutex
	cache map[string]cacheEntry
	now   func() time.Time
}

// NewEngine builds an engine over the given price provider.
func NewEngine(provider dataflows.PriceProvider, cfg *config.Config) *Engine {
	lookback := cfg.PriceLookbackDays
	if lookback <= 0 {
		lookback = defaultLookback
	}
	workers := cfg.AnalyzeWorkers
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Engine{
		provider:     provider,
		lookbackDays: lookback,
		workers:      workers,
		cache:        make(map[string]cacheEntry),
		now:          time.Now,
	}
}

// Analyze returns the technical snapshot for a symbol, or nil when the
// symbol is a placeholder or no price history exists. A nil snapshot with
// a nil error means "nothing to say", not failure.
func (e *Engine) Analyze(ctx context.Context, symbol string) (*models.IndicatorSnapshot, error) {
	symbol = extract.NormalizeSymbol(symbol)
	if !extract.IsTradable(symbol) {
		return nil, nil
	}

	if snap := e.cached(symbol); snap != nil {
		return snap, nil
	}

	history, err := e.provider.GetDailyHistory(ctx, symbol, e.lookbackDays)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, nil
	}

	snap := compute(symbol, history, e.now())
	e.store(symbol, snap)
	return snap, nil
}

// AnalyzeMany fans Analyze out over a bounded worker pool. Symbols that
// fail or yield no snapshot are logged and omitted from the result.
func (e *Engine) AnalyzeMany(ctx context.Context, symbols []string) map[string]*models.IndicatorSnapshot {
	jobs := make(chan string)
	results := make(map[string]*models.IndicatorSnapshot, len(symbols))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for symbol := range jobs {
				snap, err := e.Analyze(ctx, symbol)
				if err != nil {
					log.Printf("analysis failed for %s: %v", symbol, err)
					continue
				}
				if snap == nil {
					continue
				}
				mu.Lock()
				results[snap.Symbol] = snap
				mu.Unlock()
			}
		}()
	}

	seen := make(map[string]bool, len(symbols))
	for _, symbol := range symbols {
		normalized := extract.NormalizeSymbol(symbol)
		if seen[normalized] {
			continue
		}
		seen[normalized] = true
		jobs <- normalized
	}
	close(jobs)
	wg.Wait()

	return results
}

func (e *Engine) cached(symbol string) *models.IndicatorSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	entry, ok := e.cache[symbol]
	if !ok || e.now().After(entry.expires) {
		return nil
	}
	return entry.snapshot
}

func (e *Engine) store(symbol string, snap *models.IndicatorSnapshot) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache[symbol] = cacheEntry{snapshot: snap, expires: e.now().Add(snapshotTTL)}
}

// compute derives the snapshot from chronologically ordered daily bars.
// Indicators whose window exceeds the available history read as zero and
// contribute nothing to the score.
func compute(symbol string, history []models.MarketData, at time.Time) *models.IndicatorSnapshot {
	closes := make([]float64, len(history))
	volumes := make([]int64, len(history))
	for i, bar := range history {
		closes[i] = bar.Close.InexactFloat64()
		volumes[i] = bar.Volume
	}
	price := closes[len(closes)-1]

	snap := &models.IndicatorSnapshot{
		Symbol:     symbol,
		Price:      price,
		ComputedAt: at,
	}

	score := 0.0

	if sma200, ok := sma(closes, 200); ok {
		snap.SMA200 = sma200
		if price > sma200 {
			score++
		}
	}
	if sma50, ok := sma(closes, 50); ok {
		snap.SMA50 = sma50
	}
	if state, ok := macdState(closes); ok {
		snap.MACDState = state
		if state == models.MACDBullish {
			score++
		}
	}
	if value, ok := rsi(closes, rsiPeriod); ok {
		snap.RSI14 = value
		if value > 40 && value < 70 {
			score++
		}
	}
	if volumeSpike(volumes, volumeWindow) {
		snap.VolumeSpike = true
		score += 0.5
	}

	snap.Score = score
	snap.Verdict = verdict(score)
	return snap
}
