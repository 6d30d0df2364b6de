package risk

import (
	"fmt"

	"github.com/aristeidis/portfolio-risk/internal/domain"
	"github.com/aristeidis/portfolio-risk/pkg/formulas"
)

// Banding thresholds for the per-metric assessments.
const (
	volatilityHigh     = 0.30
	volatilityModerate = 0.15

	concentrationHigh     = 0.40
	concentrationModerate = 0.20

	correlationHigh     = 0.70
	correlationModerate = 0.40
)

var levelSummaries = map[domain.RiskLevel]string{
	domain.RiskLevelLow:      "Your portfolio has low risk. It is well-diversified with stable assets.",
	domain.RiskLevelModerate: "Your portfolio has moderate risk. Consider monitoring for concentration issues.",
	domain.RiskLevelElevated: "Your portfolio has elevated risk. You may want to consider rebalancing.",
	domain.RiskLevelHigh:     "Your portfolio has high risk. Immediate attention may be needed.",
}

// Interpret maps an analysis onto categorical labels and fixed descriptions.
func Interpret(a Analysis) Interpretation {
	level := domain.RiskLevelForScore(a.RiskScore)

	volBand := band(a.RiskBreakdown.Volatility, volatilityHigh, volatilityModerate)
	concBand := band(a.RiskBreakdown.Concentration, concentrationHigh, concentrationModerate)
	corrBand := band(a.RiskBreakdown.CorrelationRisk, correlationHigh, correlationModerate)

	return Interpretation{
		RiskScore: a.RiskScore,
		RiskLevel: level,
		Summary:   levelSummaries[level],
		Volatility: Assessment{
			Value:       formulas.Round4(a.RiskBreakdown.Volatility),
			Level:       volBand,
			Description: fmt.Sprintf("Portfolio volatility is %s at %.1f%% annualized", volBand, a.RiskBreakdown.Volatility*100),
		},
		Concentration: Assessment{
			Value:       formulas.Round4(a.RiskBreakdown.Concentration),
			Level:       concBand,
			Description: fmt.Sprintf("Portfolio concentration is %s (HHI: %.3f)", concBand, a.RiskBreakdown.Concentration),
		},
		Correlation: Assessment{
			Value:       formulas.Round4(a.RiskBreakdown.CorrelationRisk),
			Level:       corrBand,
			Description: fmt.Sprintf("Asset correlation is %s at %.2f", corrBand, a.RiskBreakdown.CorrelationRisk),
		},
	}
}

func band(value, high, moderate float64) string {
	switch {
	case value > high:
		return "high"
	case value > moderate:
		return "moderate"
	default:
		return "low"
	}
}
