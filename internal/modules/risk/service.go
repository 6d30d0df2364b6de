package risk

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aristeidis/portfolio-risk/internal/domain"
	"github.com/aristeidis/portfolio-risk/internal/modules/prices"
	"github.com/aristeidis/portfolio-risk/pkg/formulas"
)

// Service orchestrates portfolio risk analysis: weights, volatility,
// concentration, correlation and the composite score.
//
// All computation is pure and synchronous over immutable inputs; each call
// builds its own snapshot, so concurrent analyses never interact.
type Service struct {
	weights formulas.ScoreWeights
	log     zerolog.Logger
}

// NewService creates a new risk analysis service with the default composite
// weights.
func NewService(log zerolog.Logger) *Service {
	return &Service{
		weights: formulas.DefaultScoreWeights(),
		log:     log.With().Str("service", "risk").Logger(),
	}
}

// Enrich joins validated holdings with market data from the given provider.
// A provider failure never fails the batch: the affected holding falls back
// to its purchase price with an empty history and is flagged degraded.
func (s *Service) Enrich(ctx context.Context, holdings []domain.Holding, provider prices.Provider, historyDays int) []domain.EnrichedHolding {
	enriched := make([]domain.EnrichedHolding, 0, len(holdings))

	for _, h := range holdings {
		e := domain.EnrichedHolding{Holding: h}

		quote, err := provider.CurrentPrice(ctx, h.Symbol)
		if err != nil {
			s.log.Warn().Str("symbol", h.Symbol).Err(err).Msg("No current price, falling back to purchase price")
			e.CurrentPrice = h.PurchasePrice
			e.PriceDegraded = true
		} else {
			e.CurrentPrice = quote.Price
			e.PriceDegraded = quote.Degraded
		}

		history, err := provider.HistoricalPrices(ctx, h.Symbol, historyDays)
		if err != nil {
			s.log.Warn().Str("symbol", h.Symbol).Err(err).Msg("No price history, volatility will degrade to zero")
			e.HistoricalPrices = []float64{}
			e.PriceDegraded = true
		} else {
			e.HistoricalPrices = history
		}

		enriched = append(enriched, e)
	}

	return enriched
}

// Analyze performs a full risk analysis over enriched holdings.
//
// An empty portfolio, or one whose positions have no market value, returns a
// degenerate zero result with an explicit marker instead of failing. A
// holding with insufficient history contributes zero volatility.
// Availability over correctness: this always returns a result.
func (s *Service) Analyze(_ context.Context, holdings []domain.EnrichedHolding) Analysis {
	if len(holdings) == 0 {
		return Analysis{
			AnalysisID: uuid.NewString(),
			Empty:      true,
			Error:      "Empty portfolio",
		}
	}

	var totalValue float64
	values := make([]float64, len(holdings))
	for i, h := range holdings {
		values[i] = h.Value()
		totalValue += values[i]
	}
	if totalValue <= 0 {
		return Analysis{
			AnalysisID: uuid.NewString(),
			Empty:      true,
			Error:      "Empty portfolio",
		}
	}

	weights := make([]float64, len(holdings))
	for i := range holdings {
		weights[i] = values[i] / totalValue
	}

	// Value-weighted average of individual volatilities (simplified proxy,
	// see Analysis docs) plus the pooled return series for correlation.
	var portfolioVolatility float64
	individualVols := make([]float64, len(holdings))
	var allReturns [][]float64
	for i, h := range holdings {
		individualVols[i] = formulas.AnnualizedVolatility(h.HistoricalPrices)
		portfolioVolatility += individualVols[i] * weights[i]

		if returns := formulas.CalculateReturns(h.HistoricalPrices); len(returns) > 0 {
			allReturns = append(allReturns, returns)
		}
	}

	concentration := formulas.HHI(weights)
	correlation := formulas.AveragePairwiseCorrelation(allReturns)
	score := formulas.RiskScore(portfolioVolatility, concentration, correlation, s.weights)

	holdingResults := make([]HoldingAnalysis, len(holdings))
	for i, h := range holdings {
		holdingResults[i] = HoldingAnalysis{
			Symbol:               h.Symbol,
			Value:                formulas.Round2(values[i]),
			Weight:               formulas.Round2(weights[i] * 100),
			IndividualVolatility: formulas.Round4(individualVols[i]),
		}
	}

	analysis := Analysis{
		AnalysisID: uuid.NewString(),
		RiskScore:  score,
		RiskBreakdown: RiskBreakdown{
			Volatility:      formulas.Round4(portfolioVolatility),
			Concentration:   formulas.Round4(concentration),
			CorrelationRisk: formulas.Round4(correlation),
		},
		TotalValue: formulas.Round2(totalValue),
		Holdings:   holdingResults,
	}

	s.log.Info().
		Str("analysis_id", analysis.AnalysisID).
		Int("holdings", len(holdings)).
		Float64("total_value", analysis.TotalValue).
		Float64("risk_score", analysis.RiskScore).
		Msg("Portfolio risk analysis complete")

	return analysis
}
