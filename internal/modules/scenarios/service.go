package scenarios

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/rs/zerolog"

	"github.com/aristeidis/portfolio-risk/internal/domain"
	"github.com/aristeidis/portfolio-risk/pkg/formulas"
)

// Fixed risk deltas for scenarios that do not depend on the symbol class.
// These are intentionally cheap heuristics for instant what-if feedback, not
// a re-run of the full analyzer; the tradeoff is speed over analytical rigor.
const (
	removeDelta   = 0.3
	increaseDelta = 0.4
	decreaseDelta = -0.2
)

// Standard scenario parameters.
const (
	standardAddAmount      = 10000.0
	standardAddSymbol      = "SPY"
	standardIncreaseAmount = 5000.0
	standardDecreaseShare  = 0.3
)

// Service simulates hypothetical portfolio changes and their projected risk
// impact.
type Service struct {
	log zerolog.Logger
}

// NewService creates a new scenario service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("service", "scenarios").Logger(),
	}
}

// Simulate projects the portfolio value and risk score after one change.
// The projected score is clamp(current + delta, 1, 10) rounded to 2
// decimals, where the delta comes from the symbol's risk class for adds and
// from fixed constants otherwise.
func (s *Service) Simulate(kind Kind, portfolioValue, riskScore float64, symbol string, amount float64) (Result, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	switch kind {
	case KindAdd:
		return s.simulateAdd(portfolioValue, riskScore, symbol, amount), nil
	case KindRemove:
		return s.simulateRemove(portfolioValue, riskScore, symbol, amount), nil
	case KindIncrease:
		return s.simulateIncrease(portfolioValue, riskScore, symbol, amount), nil
	case KindDecrease:
		return s.simulateDecrease(portfolioValue, riskScore, symbol, amount), nil
	default:
		return Result{}, fmt.Errorf("unknown scenario kind %q", kind)
	}
}

func (s *Service) simulateAdd(value, risk float64, symbol string, amount float64) Result {
	class := domain.ClassifySymbol(symbol)
	newValue := value + amount
	newRisk := projectRisk(risk, class.AddDelta)

	impact := ImpactNeutral
	switch {
	case class.AddDelta < 0:
		impact = ImpactPositive
	case class.AddDelta > 0.3:
		impact = ImpactNegative
	}

	direction := "increase"
	if class.AddDelta < 0 {
		direction = "reduce"
	}

	return Result{
		Scenario:         fmt.Sprintf("Add %s to %s", usd(amount), symbol),
		Kind:             KindAdd,
		Symbol:           symbol,
		SymbolClass:      class.Name,
		CurrentValue:     value,
		NewValue:         newValue,
		CurrentRiskScore: risk,
		NewRiskScore:     newRisk,
		RiskChange:       formulas.Round2(class.AddDelta),
		Impact:           impact,
		Analysis: fmt.Sprintf("Adding %s (%s) would change portfolio value to %s and %s risk by %.1f points.",
			symbol, class.Name, usd(newValue), direction, math.Abs(class.AddDelta)),
	}
}

func (s *Service) simulateRemove(value, risk float64, symbol string, amount float64) Result {
	delta := 0.0
	if value > 0 {
		delta = removeDelta
	}

	return Result{
		Scenario:         fmt.Sprintf("Sell %s (%s)", symbol, usd(amount)),
		Kind:             KindRemove,
		Symbol:           symbol,
		CurrentValue:     value,
		NewValue:         math.Max(0, value-amount),
		CurrentRiskScore: risk,
		NewRiskScore:     projectRisk(risk, delta),
		RiskChange:       formulas.Round2(delta),
		Impact:           ImpactCautionary,
		Analysis: fmt.Sprintf("Selling %s would reduce the portfolio to %s. Consider the concentration impact on remaining positions.",
			symbol, usd(math.Max(0, value-amount))),
	}
}

func (s *Service) simulateIncrease(value, risk float64, symbol string, amount float64) Result {
	return Result{
		Scenario:         fmt.Sprintf("Increase %s by %s", symbol, usd(amount)),
		Kind:             KindIncrease,
		Symbol:           symbol,
		CurrentValue:     value,
		NewValue:         value + amount,
		CurrentRiskScore: risk,
		NewRiskScore:     projectRisk(risk, increaseDelta),
		RiskChange:       formulas.Round2(increaseDelta),
		Impact:           ImpactCautionary,
		Analysis: fmt.Sprintf("Increasing the position in %s would add %s but also increase concentration risk.",
			symbol, usd(amount)),
	}
}

func (s *Service) simulateDecrease(value, risk float64, symbol string, amount float64) Result {
	return Result{
		Scenario:         fmt.Sprintf("Decrease %s by %s", symbol, usd(amount)),
		Kind:             KindDecrease,
		Symbol:           symbol,
		CurrentValue:     value,
		NewValue:         math.Max(0, value-amount),
		CurrentRiskScore: risk,
		NewRiskScore:     projectRisk(risk, decreaseDelta),
		RiskChange:       formulas.Round2(decreaseDelta),
		Impact:           ImpactPositive,
		Analysis: fmt.Sprintf("Reducing the %s position could improve diversification and lower concentration risk.",
			symbol),
	}
}

// RunStandardScenarios simulates the three canonical what-ifs: add $10,000
// of a broad index fund, increase the largest holding by $5,000, and trim
// the largest holding by 30% of its value. The recommendation is the
// scenario with the lowest projected risk score; ties keep the first seen.
func (s *Service) RunStandardScenarios(portfolioValue, riskScore float64, largestSymbol string, largestValue float64) Comparison {
	results := make([]Result, 0, 3)

	add, _ := s.Simulate(KindAdd, portfolioValue, riskScore, standardAddSymbol, standardAddAmount)
	results = append(results, add)

	increase, _ := s.Simulate(KindIncrease, portfolioValue, riskScore, largestSymbol, standardIncreaseAmount)
	results = append(results, increase)

	decrease, _ := s.Simulate(KindDecrease, portfolioValue, riskScore, largestSymbol, largestValue*standardDecreaseShare)
	results = append(results, decrease)

	best := results[0]
	for _, r := range results[1:] {
		if r.NewRiskScore < best.NewRiskScore {
			best = r
		}
	}

	s.log.Debug().
		Str("recommended", best.Scenario).
		Float64("new_risk_score", best.NewRiskScore).
		Msg("Standard scenarios complete")

	return Comparison{
		Scenarios:   results,
		Recommended: best,
		Recommendation: fmt.Sprintf("Based on analysis, '%s' would result in the most favorable risk profile (Risk Score: %.2f).",
			best.Scenario, best.NewRiskScore),
	}
}

func projectRisk(current, delta float64) float64 {
	return formulas.Round2(formulas.Clamp(current+delta, 1, 10))
}

func usd(amount float64) string {
	return money.New(int64(math.Round(amount*100)), money.USD).Display()
}
