package stocks

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aristeidis/portfolio-risk/internal/domain"
	"github.com/aristeidis/portfolio-risk/pkg/formulas"
)

// defaultVolatility is used for symbols with no price history and no entry
// in the fallback table.
const defaultVolatility = 0.35

// fallbackVolatility holds annualized volatility estimates for common
// symbols, used when a holding carries too little history to compute one.
var fallbackVolatility = map[string]float64{
	"AAPL": 0.28, "GOOGL": 0.32, "MSFT": 0.25, "AMZN": 0.35,
	"TSLA": 0.55, "NVDA": 0.52, "META": 0.40, "SPY": 0.15,
	"QQQ": 0.22, "VTI": 0.14, "INFY": 0.30, "TCS": 0.28,
}

// FallbackVolatility returns the estimate for symbol, or the generic
// default when the symbol is unknown.
func FallbackVolatility(symbol string) float64 {
	if v, ok := fallbackVolatility[strings.ToUpper(strings.TrimSpace(symbol))]; ok {
		return v
	}
	return defaultVolatility
}

// Classifier scores individual positions and produces hold/sell
// recommendations from a fixed signal table.
type Classifier struct {
	log zerolog.Logger
}

func NewClassifier(log zerolog.Logger) *Classifier {
	return &Classifier{log: log.With().Str("component", "stocks").Logger()}
}

// Score combines volatility, concentration and loss position into a single
// 1-10 risk score. Volatility contributes up to 5 points, portfolio weight
// (in percent) up to 3, and an unrealized loss up to 2.
func Score(volatility, weightPct, gainLossPct float64) float64 {
	volPoints := math.Min(volatility*10, 5)
	concPoints := math.Min(weightPct/10, 3)
	lossPoints := 0.0
	switch {
	case gainLossPct < -10:
		lossPoints = 2
	case gainLossPct < 0:
		lossPoints = 1
	}
	return formulas.Clamp(formulas.Round1(volPoints+concPoints+lossPoints), 1, 10)
}

// Recommend applies the signal table to one position. volatilityPct is the
// annualized volatility expressed in percent.
func Recommend(symbol string, riskScore, gainLossPct, weightPct, volatilityPct float64) Recommendation {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	var reasons []string
	sellSignals := 0
	if riskScore >= 7 {
		sellSignals++
		reasons = append(reasons, fmt.Sprintf("High risk score (%v/10)", riskScore))
	}
	if gainLossPct < -15 {
		sellSignals++
		reasons = append(reasons, fmt.Sprintf("Significant loss (%.1f%%)", gainLossPct))
	}
	if weightPct > 35 {
		sellSignals++
		reasons = append(reasons, fmt.Sprintf("Over-concentrated (%.1f%% of portfolio)", weightPct))
	}
	if volatilityPct > 45 {
		sellSignals++
		reasons = append(reasons, fmt.Sprintf("High volatility (%.1f%%)", volatilityPct))
	}

	holdSignals := 0
	if gainLossPct > 20 {
		holdSignals++
		reasons = append(reasons, fmt.Sprintf("Strong gains (%.1f%%)", gainLossPct))
	}
	if riskScore <= 3 {
		holdSignals++
		reasons = append(reasons, "Low risk profile")
	}
	if volatilityPct < 20 && weightPct < 25 {
		holdSignals++
		reasons = append(reasons, "Well-balanced stable position")
	}

	action := ActionHold
	confidence := ConfidenceMedium
	switch {
	case sellSignals >= 2:
		action = ActionSell
		confidence = ConfidenceMedium
		if sellSignals >= 3 {
			confidence = ConfidenceHigh
		}
	case sellSignals == 1 && holdSignals == 0:
		action = ActionReduce
	case holdSignals >= 2:
		confidence = ConfidenceHigh
	default:
		confidence = ConfidenceLow
	}

	var text string
	switch action {
	case ActionSell:
		text = fmt.Sprintf("Consider selling %s to reduce portfolio risk", symbol)
	case ActionReduce:
		text = fmt.Sprintf("Consider reducing your %s position by 25-50%%", symbol)
	default:
		text = fmt.Sprintf("Keep holding %s - no immediate action needed", symbol)
	}

	if len(reasons) == 0 {
		reasons = []string{"Position is balanced and within normal parameters"}
	}
	return Recommendation{
		Symbol:         symbol,
		Recommendation: action,
		Confidence:     confidence,
		Action:         text,
		Reasons:        reasons,
	}
}

// AnalyzeAll scores every holding and compiles a portfolio-wide review,
// sorted with the riskiest positions first.
func (c *Classifier) AnalyzeAll(holdings []domain.EnrichedHolding) Review {
	if len(holdings) == 0 {
		return Review{Stocks: []StockAnalysis{}}
	}

	totalValue := 0.0
	for _, h := range holdings {
		totalValue += h.Value()
	}

	analyses := make([]StockAnalysis, 0, len(holdings))
	for _, h := range holdings {
		value := h.Value()
		weightPct := 0.0
		if totalValue > 0 {
			weightPct = value / totalValue * 100
		}

		vol := FallbackVolatility(h.Symbol)
		if len(h.HistoricalPrices) >= 3 {
			vol = formulas.AnnualizedVolatility(h.HistoricalPrices)
		}

		gainLossPct := 0.0
		if h.PurchasePrice > 0 && h.CurrentPrice > 0 {
			gainLossPct = h.GainLossPercent()
		}

		score := Score(vol, weightPct, gainLossPct)
		analyses = append(analyses, StockAnalysis{
			Symbol:          strings.ToUpper(h.Symbol),
			CurrentValue:    formulas.Round2(value),
			PortfolioWeight: formulas.Round1(weightPct),
			Volatility:      formulas.Round1(vol * 100),
			GainLossPercent: formulas.Round1(gainLossPct),
			RiskScore:       score,
			RiskLevel:       domain.RiskLevelForScore(score),
			Recommendation:  Recommend(h.Symbol, score, gainLossPct, weightPct, vol*100),
		})
	}

	sort.SliceStable(analyses, func(i, j int) bool {
		return analyses[i].RiskScore > analyses[j].RiskScore
	})

	review := Review{StockCount: len(analyses), Stocks: analyses}
	for _, a := range analyses {
		if a.RiskLevel == domain.RiskLevelHigh || a.RiskLevel == domain.RiskLevelElevated {
			review.HighRiskCount++
		}
		if a.Recommendation.Recommendation == ActionSell || a.Recommendation.Recommendation == ActionReduce {
			review.SellRecommendations++
		}
	}

	c.log.Info().
		Int("stocks", review.StockCount).
		Int("high_risk", review.HighRiskCount).
		Int("sell_recommendations", review.SellRecommendations).
		Msg("Stock analysis complete")
	return review
}
