package risk

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/aristeidis/portfolio-risk/internal/domain"
	"github.com/aristeidis/portfolio-risk/internal/modules/prices"
)

func holding(t *testing.T, symbol string, qty, purchase float64) domain.Holding {
	t.Helper()
	h, err := domain.NewHolding(symbol, qty, purchase, "")
	require.NoError(t, err)
	return h
}

func TestAnalyze_EmptyPortfolio(t *testing.T) {
	svc := NewService(zerolog.Nop())

	result := svc.Analyze(context.Background(), nil)

	require.True(t, result.Empty)
	require.Equal(t, "Empty portfolio", result.Error)
	require.Zero(t, result.RiskScore)
	require.Zero(t, result.RiskBreakdown.Volatility)
	require.Zero(t, result.RiskBreakdown.Concentration)
	require.Zero(t, result.RiskBreakdown.CorrelationRisk)
	require.Zero(t, result.TotalValue)
	require.NotEmpty(t, result.AnalysisID)
}

func TestAnalyze_WeightsSumToOne(t *testing.T) {
	svc := NewService(zerolog.Nop())

	holdings := []domain.EnrichedHolding{
		{Holding: holding(t, "AAPL", 10, 150), CurrentPrice: 195.50},
		{Holding: holding(t, "MSFT", 3, 300), CurrentPrice: 378.90},
		{Holding: holding(t, "SPY", 7, 400), CurrentPrice: 458.25},
	}

	var total float64
	for _, h := range holdings {
		total += h.Value()
	}
	var weightSum float64
	for _, h := range holdings {
		weightSum += h.Value() / total
	}
	require.InDelta(t, 1.0, weightSum, 1e-9)

	result := svc.Analyze(context.Background(), holdings)
	var reportedSum float64
	for _, h := range result.Holdings {
		reportedSum += h.Weight
	}
	// Reported weights are percentages rounded to 2 decimals.
	require.InDelta(t, 100.0, reportedSum, 0.05)
}

func TestAnalyze_ZeroTotalValue(t *testing.T) {
	svc := NewService(zerolog.Nop())

	// Worthless positions with correlated histories: the histories must not
	// leak into a score when the portfolio has no market value.
	holdings := []domain.EnrichedHolding{
		{Holding: holding(t, "AAPL", 10, 150), CurrentPrice: 0, HistoricalPrices: []float64{100, 110, 105, 120}},
		{Holding: holding(t, "MSFT", 5, 300), CurrentPrice: 0, HistoricalPrices: []float64{200, 220, 210, 240}},
	}

	result := svc.Analyze(context.Background(), holdings)

	require.True(t, result.Empty)
	require.Equal(t, "Empty portfolio", result.Error)
	require.Zero(t, result.RiskScore)
	require.Zero(t, result.TotalValue)
	require.Zero(t, result.RiskBreakdown.Volatility)
	require.Zero(t, result.RiskBreakdown.Concentration)
	require.Zero(t, result.RiskBreakdown.CorrelationRisk)
	require.NotEmpty(t, result.AnalysisID)
}

func TestAnalyze_KnownValues(t *testing.T) {
	svc := NewService(zerolog.Nop())

	// First holding: returns 1.0 and -0.5, population std dev 0.75, so its
	// annualized volatility saturates the score's volatility cap. Second
	// holding has no usable history and degrades to zero volatility.
	holdings := []domain.EnrichedHolding{
		{
			Holding:          holding(t, "WILD", 1, 100),
			CurrentPrice:     100,
			HistoricalPrices: []float64{1, 2, 1},
		},
		{
			Holding:      holding(t, "BARE", 1, 100),
			CurrentPrice: 100,
		},
	}

	result := svc.Analyze(context.Background(), holdings)

	wildVol := 0.75 * math.Sqrt(252)
	require.InDelta(t, wildVol/2, result.RiskBreakdown.Volatility, 1e-4)
	require.InDelta(t, 0.5, result.RiskBreakdown.Concentration, 1e-9)
	require.Zero(t, result.RiskBreakdown.CorrelationRisk)

	// raw = 0.5*1.0 (capped) + 0.3*0.5 + 0.2*0 = 0.65 → 1 + 5.85 = 6.85
	require.InDelta(t, 6.85, result.RiskScore, 1e-9)
	require.InDelta(t, 200.0, result.TotalValue, 1e-9)

	require.Len(t, result.Holdings, 2)
	require.Equal(t, "WILD", result.Holdings[0].Symbol)
	require.InDelta(t, 50.0, result.Holdings[0].Weight, 1e-9)
	require.Zero(t, result.Holdings[1].IndividualVolatility)
}

func TestAnalyze_MissingHistoryDegradesNotFails(t *testing.T) {
	svc := NewService(zerolog.Nop())

	holdings := []domain.EnrichedHolding{
		{Holding: holding(t, "AAPL", 1, 100), CurrentPrice: 100, HistoricalPrices: []float64{100}},
	}

	result := svc.Analyze(context.Background(), holdings)
	require.False(t, result.Empty)
	require.Zero(t, result.RiskBreakdown.Volatility)
	require.Equal(t, 1.0+0.3*1.0*9, result.RiskScore) // concentration only
}

// failingProvider always errors, simulating a total provider outage.
type failingProvider struct{}

func (failingProvider) CurrentPrice(context.Context, string) (prices.Quote, error) {
	return prices.Quote{}, fmt.Errorf("provider down")
}

func (failingProvider) HistoricalPrices(context.Context, string, int) ([]float64, error) {
	return nil, fmt.Errorf("provider down")
}

func TestEnrich_ProviderFailureFallsBack(t *testing.T) {
	svc := NewService(zerolog.Nop())

	enriched := svc.Enrich(context.Background(),
		[]domain.Holding{holding(t, "AAPL", 2, 150)},
		failingProvider{}, 30)

	require.Len(t, enriched, 1)
	require.True(t, enriched[0].PriceDegraded)
	require.InDelta(t, 150.0, enriched[0].CurrentPrice, 1e-9)
	require.Empty(t, enriched[0].HistoricalPrices)
}

func TestEnrich_TableProvider(t *testing.T) {
	svc := NewService(zerolog.Nop())

	enriched := svc.Enrich(context.Background(),
		[]domain.Holding{holding(t, "AAPL", 2, 150), holding(t, "SPY", 1, 400)},
		prices.NewDefaultTableProvider(), 30)

	require.Len(t, enriched, 2)
	for _, e := range enriched {
		require.False(t, e.PriceDegraded)
		require.Len(t, e.HistoricalPrices, 30)
		require.Positive(t, e.CurrentPrice)
	}
}
