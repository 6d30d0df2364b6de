package scenarios

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSimulate_AddIndexFund(t *testing.T) {
	svc := NewService(zerolog.Nop())

	result, err := svc.Simulate(KindAdd, 100000, 5.0, "SPY", 10000)
	require.NoError(t, err)

	require.InDelta(t, 110000.0, result.NewValue, 1e-9)
	require.InDelta(t, 4.2, result.NewRiskScore, 1e-9)
	require.InDelta(t, -0.8, result.RiskChange, 1e-9)
	require.Equal(t, ImpactPositive, result.Impact)
	require.Equal(t, "Index Fund/ETF", result.SymbolClass)
}

func TestSimulate_AddHighVolatility(t *testing.T) {
	svc := NewService(zerolog.Nop())

	result, err := svc.Simulate(KindAdd, 100000, 5.0, "TSLA", 10000)
	require.NoError(t, err)

	require.InDelta(t, 110000.0, result.NewValue, 1e-9)
	require.InDelta(t, 5.6, result.NewRiskScore, 1e-9)
	require.Equal(t, ImpactNegative, result.Impact)
}

func TestSimulate_AddUnclassified(t *testing.T) {
	svc := NewService(zerolog.Nop())

	result, err := svc.Simulate(KindAdd, 50000, 5.0, "xyz", 1000)
	require.NoError(t, err)

	require.Equal(t, "XYZ", result.Symbol)
	require.InDelta(t, 5.2, result.NewRiskScore, 1e-9)
	require.Equal(t, ImpactNeutral, result.Impact)
}

func TestSimulate_ScoreClampedToBounds(t *testing.T) {
	svc := NewService(zerolog.Nop())

	low, err := svc.Simulate(KindAdd, 100000, 1.2, "SPY", 10000)
	require.NoError(t, err)
	require.InDelta(t, 1.0, low.NewRiskScore, 1e-9)

	high, err := svc.Simulate(KindIncrease, 100000, 9.8, "TSLA", 1000)
	require.NoError(t, err)
	require.InDelta(t, 10.0, high.NewRiskScore, 1e-9)
}

func TestSimulate_RemoveAndDecrease(t *testing.T) {
	svc := NewService(zerolog.Nop())

	remove, err := svc.Simulate(KindRemove, 100000, 5.0, "AAPL", 20000)
	require.NoError(t, err)
	require.InDelta(t, 80000.0, remove.NewValue, 1e-9)
	require.InDelta(t, 5.3, remove.NewRiskScore, 1e-9)
	require.Equal(t, ImpactCautionary, remove.Impact)

	// Removing more than the portfolio holds floors the value at zero.
	overdrawn, err := svc.Simulate(KindRemove, 10000, 5.0, "AAPL", 20000)
	require.NoError(t, err)
	require.Zero(t, overdrawn.NewValue)

	// Removal from an empty portfolio applies no delta.
	empty, err := svc.Simulate(KindRemove, 0, 5.0, "AAPL", 100)
	require.NoError(t, err)
	require.InDelta(t, 5.0, empty.NewRiskScore, 1e-9)

	decrease, err := svc.Simulate(KindDecrease, 100000, 5.0, "AAPL", 10000)
	require.NoError(t, err)
	require.InDelta(t, 4.8, decrease.NewRiskScore, 1e-9)
	require.Equal(t, ImpactPositive, decrease.Impact)
}

func TestSimulate_UnknownKind(t *testing.T) {
	svc := NewService(zerolog.Nop())

	_, err := svc.Simulate(Kind("rebalance"), 100000, 5.0, "AAPL", 1000)
	require.Error(t, err)
}

func TestRunStandardScenarios(t *testing.T) {
	svc := NewService(zerolog.Nop())

	comparison := svc.RunStandardScenarios(100000, 5.0, "NVDA", 40000)

	require.Len(t, comparison.Scenarios, 3)
	require.Equal(t, KindAdd, comparison.Scenarios[0].Kind)
	require.Equal(t, KindIncrease, comparison.Scenarios[1].Kind)
	require.Equal(t, KindDecrease, comparison.Scenarios[2].Kind)

	// Adding SPY (-0.8) beats increasing (+0.4) and decreasing (-0.2).
	require.Equal(t, comparison.Scenarios[0].Scenario, comparison.Recommended.Scenario)
	require.InDelta(t, 4.2, comparison.Recommended.NewRiskScore, 1e-9)
	require.Contains(t, comparison.Recommendation, comparison.Recommended.Scenario)

	// Decrease amount is 30% of the largest holding.
	require.InDelta(t, 100000-12000, comparison.Scenarios[2].NewValue, 1e-9)
}

func TestRunStandardScenarios_TieKeepsFirstSeen(t *testing.T) {
	svc := NewService(zerolog.Nop())

	// At the floor both the add (-0.8) and decrease (-0.2) clamp to 1.0;
	// the add scenario comes first and must win the tie.
	comparison := svc.RunStandardScenarios(100000, 1.0, "AAPL", 10000)
	require.Equal(t, KindAdd, comparison.Recommended.Kind)
}
