package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ssarda/nsescan/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			Padding(0, 1).
			MarginBottom(1)

	headerRowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	positiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	negativeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))

	neutralStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3B82F6")).
			Padding(1, 2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))
)

// Events renders the event table in store order.
func Events(records []models.EventRecord) {
	fmt.Println(titleStyle.Render("Market Events"))

	if len(records) == 0 {
		fmt.Println(neutralStyle.Render("No events in the store. Run a scan first."))
		return
	}

	header := fmt.Sprintf("%-12s %-16s %-16s %-9s %10s  %s",
		"DATE", "SYMBOL", "TYPE", "SENT", "VALUE(CR)", "HEADLINE")
	fmt.Println(headerRowStyle.Render(header))

	for _, rec := range records {
		line := fmt.Sprintf("%-12s %-16s %-16s %-9s %10.2f  %s",
			rec.Date.Format("2006-01-02"),
			truncate(rec.Symbol, 16),
			truncate(string(rec.Type), 16),
			rec.Sentiment,
			rec.ValueCr,
			truncate(rec.Headline, 60),
		)
		fmt.Println(sentimentStyle(rec.Sentiment).Render(line))
	}

	fmt.Println()
	fmt.Printf("%d events\n", len(records))
}

// Snapshot renders one indicator snapshot as a bordered panel.
func Snapshot(snap *models.IndicatorSnapshot) {
	if snap == nil {
		fmt.Println(neutralStyle.Render("No price history available for this symbol."))
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", headerRowStyle.Render(snap.Symbol))
	fmt.Fprintf(&b, "Price:        %.2f\n", snap.Price)
	fmt.Fprintf(&b, "RSI (14):     %s\n", formatIndicator(snap.RSI14))
	fmt.Fprintf(&b, "MACD:         %s\n", formatMACD(snap.MACDState))
	fmt.Fprintf(&b, "SMA 50:       %s\n", formatIndicator(snap.SMA50))
	fmt.Fprintf(&b, "SMA 200:      %s\n", formatIndicator(snap.SMA200))
	fmt.Fprintf(&b, "Volume spike: %v\n", snap.VolumeSpike)
	fmt.Fprintf(&b, "Score:        %.1f\n\n", snap.Score)
	fmt.Fprintf(&b, "Verdict:      %s", verdictStyle(snap.Verdict).Render(string(snap.Verdict)))

	fmt.Println(panelStyle.Render(b.String()))
}

// Snapshots renders snapshots for multiple symbols as a compact table.
// order controls row order; symbols without a snapshot are skipped.
func Snapshots(snaps map[string]*models.IndicatorSnapshot, order []string) {
	fmt.Println(titleStyle.Render("Technical Snapshots"))

	header := fmt.Sprintf("%-16s %10s %8s %-8s %9s %6s  %s",
		"SYMBOL", "PRICE", "RSI14", "MACD", "SMA200", "SCORE", "VERDICT")
	fmt.Println(headerRowStyle.Render(header))

	shown := 0
	for _, symbol := range order {
		snap, ok := snaps[symbol]
		if !ok || snap == nil {
			continue
		}
		shown++
		line := fmt.Sprintf("%-16s %10.2f %8.1f %-8s %9.1f %6.1f  %s",
			truncate(snap.Symbol, 16),
			snap.Price,
			snap.RSI14,
			snap.MACDState,
			snap.SMA200,
			snap.Score,
			snap.Verdict,
		)
		fmt.Println(verdictStyle(snap.Verdict).Render(line))
	}

	if shown == 0 {
		fmt.Println(neutralStyle.Render("No snapshots to show."))
	}
}

// ScanSummary renders the outcome of one ingestion run.
func ScanSummary(filings, deals, headlines, added, total int) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", headerRowStyle.Render("Scan complete"))
	fmt.Fprintf(&b, "Official filings:  %d\n", filings)
	fmt.Fprintf(&b, "Block deals:       %d\n", deals)
	fmt.Fprintf(&b, "News headlines:    %d\n\n", headlines)
	fmt.Fprintf(&b, "New events stored: %d\n", added)
	fmt.Fprintf(&b, "Store size:        %d", total)

	fmt.Println(panelStyle.Render(b.String()))
}

// Error prints a styled error message.
func Error(err error) {
	fmt.Println(errorStyle.Render("Error: " + err.Error()))
}

// Success prints a styled confirmation message.
func Success(message string) {
	fmt.Println(successStyle.Render(message))
}

func sentimentStyle(s models.Sentiment) lipgloss.Style {
	switch s {
	case models.SentimentPositive:
		return positiveStyle
	case models.SentimentNegative:
		return negativeStyle
	default:
		return neutralStyle
	}
}

func verdictStyle(v models.Verdict) lipgloss.Style {
	switch v {
	case models.VerdictStrongBuy, models.VerdictBuy:
		return positiveStyle
	case models.VerdictSell:
		return negativeStyle
	default:
		return neutralStyle
	}
}

// formatIndicator prints "-" for indicators whose window never filled.
func formatIndicator(v float64) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}

func formatMACD(state models.MACDState) string {
	if state == "" {
		return "-"
	}
	return string(state)
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
