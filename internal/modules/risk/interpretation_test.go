package risk

import (
	"testing"

	"github.com/aristeidis/portfolio-risk/internal/domain"
)

func TestInterpret_Levels(t *testing.T) {
	tests := []struct {
		score float64
		want  domain.RiskLevel
	}{
		{2.5, domain.RiskLevelLow},
		{4.0, domain.RiskLevelModerate},
		{6.5, domain.RiskLevelElevated},
		{8.2, domain.RiskLevelHigh},
	}

	for _, tt := range tests {
		got := Interpret(Analysis{RiskScore: tt.score})
		if got.RiskLevel != tt.want {
			t.Errorf("score %v: level = %v, want %v", tt.score, got.RiskLevel, tt.want)
		}
		if got.Summary == "" {
			t.Errorf("score %v: missing summary", tt.score)
		}
	}
}

func TestInterpret_Assessments(t *testing.T) {
	analysis := Analysis{
		RiskScore: 5.0,
		RiskBreakdown: RiskBreakdown{
			Volatility:      0.35, // > 0.30 → high
			Concentration:   0.25, // > 0.20 → moderate
			CorrelationRisk: 0.10, // ≤ 0.40 → low
		},
	}

	got := Interpret(analysis)

	if got.Volatility.Level != "high" {
		t.Errorf("volatility assessment = %q, want high", got.Volatility.Level)
	}
	if got.Concentration.Level != "moderate" {
		t.Errorf("concentration assessment = %q, want moderate", got.Concentration.Level)
	}
	if got.Correlation.Level != "low" {
		t.Errorf("correlation assessment = %q, want low", got.Correlation.Level)
	}
}
