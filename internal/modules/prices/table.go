package prices

import (
	"context"
	"fmt"
	"strings"
)

// TableEntry is one symbol's fixed price data.
type TableEntry struct {
	Current float64
	History []float64
}

// TableProvider serves prices from an explicit fixed table. It backs demos
// and tests, and doubles as the fallback for the live provider. The table is
// injected at construction; there is no package-level state.
type TableProvider struct {
	table map[string]TableEntry
}

// NewTableProvider creates a provider over the given table. Symbols are
// normalized to upper case.
func NewTableProvider(table map[string]TableEntry) *TableProvider {
	normalized := make(map[string]TableEntry, len(table))
	for symbol, entry := range table {
		normalized[strings.ToUpper(strings.TrimSpace(symbol))] = entry
	}
	return &TableProvider{table: normalized}
}

// NewDefaultTableProvider creates a provider over the built-in demo table.
func NewDefaultTableProvider() *TableProvider {
	return NewTableProvider(defaultTable())
}

// CurrentPrice returns the fixed current price for a symbol.
func (p *TableProvider) CurrentPrice(_ context.Context, symbol string) (Quote, error) {
	entry, ok := p.table[strings.ToUpper(strings.TrimSpace(symbol))]
	if !ok {
		return Quote{}, fmt.Errorf("symbol %s not in price table", symbol)
	}
	return Quote{
		Symbol: strings.ToUpper(strings.TrimSpace(symbol)),
		Price:  entry.Current,
		Source: "table",
	}, nil
}

// HistoricalPrices returns `days` daily closes for a symbol. The base series
// is cycled with a small deterministic variance when more days are requested
// than the table holds.
func (p *TableProvider) HistoricalPrices(_ context.Context, symbol string, days int) ([]float64, error) {
	if days < 1 {
		return nil, fmt.Errorf("days must be positive, got %d", days)
	}
	entry, ok := p.table[strings.ToUpper(strings.TrimSpace(symbol))]
	if !ok {
		return nil, fmt.Errorf("symbol %s not in price table", symbol)
	}
	if len(entry.History) == 0 {
		return nil, fmt.Errorf("symbol %s has no history in price table", symbol)
	}

	if days <= len(entry.History) {
		return append([]float64(nil), entry.History[len(entry.History)-days:]...), nil
	}

	extended := make([]float64, days)
	for i := 0; i < days; i++ {
		base := entry.History[i%len(entry.History)]
		variance := float64(i%5-2) * 0.5
		extended[i] = base + variance
	}
	return extended, nil
}

// defaultTable is the built-in demo price table.
func defaultTable() map[string]TableEntry {
	return map[string]TableEntry{
		"AAPL":  {Current: 195.50, History: []float64{190.0, 192.5, 188.0, 195.0, 193.5, 196.0, 194.0, 195.5}},
		"GOOGL": {Current: 142.80, History: []float64{138.0, 140.5, 139.0, 141.5, 143.0, 144.0, 142.5, 142.8}},
		"MSFT":  {Current: 378.90, History: []float64{370.0, 372.5, 375.0, 374.0, 376.5, 378.0, 377.5, 378.9}},
		"AMZN":  {Current: 178.25, History: []float64{172.0, 174.5, 173.0, 175.5, 176.0, 177.5, 178.0, 178.25}},
		"TSLA":  {Current: 248.50, History: []float64{240.0, 245.5, 242.0, 250.0, 255.0, 248.0, 246.5, 248.5}},
		"NVDA":  {Current: 495.80, History: []float64{480.0, 485.5, 490.0, 492.0, 498.0, 500.5, 495.0, 495.8}},
		"META":  {Current: 325.40, History: []float64{318.0, 320.5, 322.0, 324.0, 326.5, 328.0, 325.0, 325.4}},
		"SPY":   {Current: 458.25, History: []float64{450.0, 452.5, 454.0, 455.5, 456.0, 457.5, 458.0, 458.25}},
		"QQQ":   {Current: 392.80, History: []float64{385.0, 387.5, 389.0, 390.5, 391.0, 392.5, 392.0, 392.8}},
		"VTI":   {Current: 238.50, History: []float64{232.0, 234.5, 235.0, 236.5, 237.0, 238.0, 238.5, 238.5}},
		"INFY":  {Current: 18.25, History: []float64{17.5, 17.8, 18.0, 18.2, 18.1, 18.3, 18.2, 18.25}},
		"TCS":   {Current: 3850.00, History: []float64{3780.0, 3800.5, 3820.0, 3835.5, 3840.0, 3845.5, 3848.0, 3850.0}},
	}
}
