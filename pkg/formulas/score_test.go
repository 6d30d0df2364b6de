package formulas

import (
	"math"
	"testing"
)

func TestRiskScore_Bounds(t *testing.T) {
	weights := DefaultScoreWeights()

	if got := RiskScore(0, 0, 0, weights); got != 1.0 {
		t.Errorf("all-zero inputs: got %v, want 1.0", got)
	}
	if got := RiskScore(1.0, 1.0, 1.0, weights); got != 10.0 {
		t.Errorf("all-one inputs: got %v, want 10.0", got)
	}
}

func TestRiskScore_VolatilityCappedAtOne(t *testing.T) {
	weights := DefaultScoreWeights()

	capped := RiskScore(1.0, 0.5, 0.5, weights)
	uncapped := RiskScore(3.7, 0.5, 0.5, weights)
	if capped != uncapped {
		t.Errorf("volatility above 1.0 must be capped: %v != %v", uncapped, capped)
	}
}

func TestRiskScore_Monotonic(t *testing.T) {
	weights := DefaultScoreWeights()
	steps := []float64{0, 0.25, 0.5, 0.75, 1.0}

	for _, fixed := range []float64{0, 0.5, 1.0} {
		var prevVol, prevConc, prevCorr float64 = 0, 0, 0
		for _, v := range steps {
			if got, prev := RiskScore(v, fixed, fixed, weights), RiskScore(prevVol, fixed, fixed, weights); got < prev {
				t.Errorf("score decreased in volatility: %v < %v", got, prev)
			}
			if got, prev := RiskScore(fixed, v, fixed, weights), RiskScore(fixed, prevConc, fixed, weights); got < prev {
				t.Errorf("score decreased in concentration: %v < %v", got, prev)
			}
			if got, prev := RiskScore(fixed, fixed, v, weights), RiskScore(fixed, fixed, prevCorr, weights); got < prev {
				t.Errorf("score decreased in correlation: %v < %v", got, prev)
			}
			prevVol, prevConc, prevCorr = v, v, v
		}
	}
}

func TestRiskScore_KnownValue(t *testing.T) {
	// raw = 0.5*0.4 + 0.3*0.5 + 0.2*0.25 = 0.4; score = 1 + 3.6 = 4.6
	got := RiskScore(0.4, 0.5, 0.25, DefaultScoreWeights())
	if math.Abs(got-4.6) > 1e-9 {
		t.Errorf("got %v, want 4.6", got)
	}
}

func TestRounding(t *testing.T) {
	if got := Round1(5.45); got != 5.5 {
		t.Errorf("Round1(5.45) = %v, want 5.5", got)
	}
	if got := Round2(4.199999); got != 4.2 {
		t.Errorf("Round2(4.199999) = %v, want 4.2", got)
	}
	if got := Round4(0.123456); got != 0.1235 {
		t.Errorf("Round4(0.123456) = %v, want 0.1235", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(12, 1, 10); got != 10 {
		t.Errorf("Clamp(12,1,10) = %v, want 10", got)
	}
	if got := Clamp(-3, 1, 10); got != 1 {
		t.Errorf("Clamp(-3,1,10) = %v, want 1", got)
	}
	if got := Clamp(5.5, 1, 10); got != 5.5 {
		t.Errorf("Clamp(5.5,1,10) = %v, want 5.5", got)
	}
}
