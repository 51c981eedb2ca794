package cli

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssarda/nsescan/config"
	"github.com/ssarda/nsescan/internal/display"
	"github.com/ssarda/nsescan/internal/extract"
	"github.com/ssarda/nsescan/internal/indicators"
	"github.com/ssarda/nsescan/internal/scanner"
	"github.com/ssarda/nsescan/internal/store"
	"github.com/ssarda/nsescan/models"
	"github.com/ssarda/nsescan/pkg/dataflows"
)

const version = "1.0.0"

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "nsescan",
		Short: "nsescan - NSE market event scanner",
		Long: `nsescan collects corporate filings, block deals and news headlines from
NSE sources, normalizes them into a deduplicated event store and computes
technical indicator verdicts for the symbols involved.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("failed to create directories: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newScanCmd(cfg))
	rootCmd.AddCommand(newEventsCmd(cfg))
	rootCmd.AddCommand(newAnalyzeCmd(cfg))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newScanCmd creates the scan command
func newScanCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Fetch events from all sources and merge them into the store",
		Long: `Fetch corporate announcements, bulk deals and news headlines for the
configured lookback window, normalize them into events and merge them into
the local store. Re-running a scan never duplicates events.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days, _ := cmd.Flags().GetInt("days"); days > 0 {
				cfg.LookbackDays = days
			}

			eventStore, err := store.New(cfg)
			if err != nil {
				return err
			}

			result, err := scanner.New(cfg, eventStore).Run(cmd.Context())
			if err != nil {
				return err
			}

			display.ScanSummary(result.Filings, result.BlockDeals, result.Headlines,
				result.Added, result.Total)
			display.Success("Events saved to " + cfg.StorePath)
			return nil
		},
	}

	cmd.Flags().Int("days", 0, "Lookback window in days (overrides LOOKBACK_DAYS)")

	return cmd
}

// newEventsCmd creates the events command
func newEventsCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Show events from the local store",
		RunE: func(cmd *cobra.Command, args []string) error {
			eventStore, err := store.New(cfg)
			if err != nil {
				return err
			}

			records, err := eventStore.Load()
			if err != nil {
				return err
			}

			symbol, _ := cmd.Flags().GetString("symbol")
			eventType, _ := cmd.Flags().GetString("type")
			search, _ := cmd.Flags().GetString("search")
			limit, _ := cmd.Flags().GetInt("limit")

			records = filterEvents(records, symbol, eventType, search)
			sortEventsNewestFirst(records)
			if limit > 0 && len(records) > limit {
				records = records[:limit]
			}

			display.Events(records)
			return nil
		},
	}

	cmd.Flags().String("symbol", "", "Only show events for this symbol")
	cmd.Flags().String("type", "", "Only show events of this source type")
	cmd.Flags().String("search", "", "Only show events whose headline or details contain this text")
	cmd.Flags().Int("limit", 50, "Maximum number of events to show (0 for all)")

	return cmd
}

// newAnalyzeCmd creates the analyze command
func newAnalyzeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [SYMBOL...]",
		Short: "Compute technical indicator verdicts for symbols",
		Long: `Compute RSI, MACD, moving averages and a composite verdict from daily
price history. With no arguments the symbol is prompted for interactively.
With --from-store every tradable symbol in the event store is analyzed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fromStore, _ := cmd.Flags().GetBool("from-store")
			if days, _ := cmd.Flags().GetInt("days"); days > 0 {
				cfg.PriceLookbackDays = days
			}

			symbols := args
			if fromStore {
				stored, err := storedSymbols(cfg)
				if err != nil {
					return err
				}
				symbols = append(symbols, stored...)
			}
			if len(symbols) == 0 {
				symbol, err := PromptForSymbol()
				if err != nil {
					return err
				}
				symbols = []string{symbol}
			}

			provider, err := dataflows.NewPriceProvider(cfg)
			if err != nil {
				return err
			}
			engine := indicators.NewEngine(provider, cfg)

			return runAnalysis(cmd.Context(), engine, symbols)
		},
	}

	cmd.Flags().Bool("from-store", false, "Analyze every tradable symbol in the event store")
	cmd.Flags().Int("days", 0, "Price history window in days (overrides PRICE_LOOKBACK_DAYS)")

	return cmd
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("nsescan v%s\n", version)
			fmt.Println("NSE market event scanner and technical analyzer")
		},
	}
}

func runAnalysis(ctx context.Context, engine *indicators.Engine, symbols []string) error {
	if len(symbols) == 1 {
		snap, err := engine.Analyze(ctx, symbols[0])
		if err != nil {
			// Technical context is best-effort; a dead price feed is not fatal.
			log.Printf("analysis failed for %s: %v", symbols[0], err)
			snap = nil
		}
		display.Snapshot(snap)
		return nil
	}

	results := engine.AnalyzeMany(ctx, symbols)

	order := make([]string, 0, len(results))
	for symbol := range results {
		order = append(order, symbol)
	}
	sort.Slice(order, func(i, j int) bool {
		return results[order[i]].Score > results[order[j]].Score
	})

	display.Snapshots(results, order)
	return nil
}

// storedSymbols collects the distinct tradable symbols in the event store.
func storedSymbols(cfg *config.Config) ([]string, error) {
	eventStore, err := store.New(cfg)
	if err != nil {
		return nil, err
	}
	records, err := eventStore.Load()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var symbols []string
	for _, rec := range records {
		if rec.IsPlaceholderSymbol() {
			continue
		}
		symbol := extract.NormalizeSymbol(rec.Symbol)
		if seen[symbol] || !extract.IsTradable(symbol) {
			continue
		}
		seen[symbol] = true
		symbols = append(symbols, symbol)
	}
	return symbols, nil
}

// sortEventsNewestFirst orders the view by date descending, keeping store
// order within a day.
func sortEventsNewestFirst(records []models.EventRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
}

func filterEvents(records []models.EventRecord, symbol, eventType, search string) []models.EventRecord {
	if symbol == "" && eventType == "" && search == "" {
		return records
	}

	if symbol != "" {
		symbol = extract.NormalizeSymbol(symbol)
	}
	search = strings.ToLower(search)
	var filtered []models.EventRecord
	for _, rec := range records {
		if symbol != "" && rec.Symbol != symbol {
			continue
		}
		if eventType != "" && !strings.EqualFold(string(rec.Type), eventType) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(rec.Headline), search) &&
			!strings.Contains(strings.ToLower(rec.Details), search) {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered
}
