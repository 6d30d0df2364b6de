package risk

import "github.com/aristeidis/portfolio-risk/internal/domain"

// RiskBreakdown lists the three composite score inputs, rounded to 4
// decimals. Recomputed per request, never persisted.
type RiskBreakdown struct {
	Volatility      float64 `json:"volatility"`
	Concentration   float64 `json:"concentration"`
	CorrelationRisk float64 `json:"correlation_risk"`
}

// HoldingAnalysis is the per-holding slice of an analysis result.
type HoldingAnalysis struct {
	Symbol               string  `json:"symbol"`
	Value                float64 `json:"value"`
	Weight               float64 `json:"weight"` // percent of portfolio
	IndividualVolatility float64 `json:"individual_volatility"`
}

// Analysis is the aggregate result of one portfolio risk analysis.
//
// Portfolio volatility here is the value-weighted average of the individual
// holdings' annualized volatilities. That is a simplified proxy, NOT a
// covariance-based portfolio volatility; correlation enters the composite
// score as a separate term instead.
type Analysis struct {
	AnalysisID    string               `json:"analysis_id"`
	RiskScore     float64              `json:"risk_score"`
	RiskBreakdown RiskBreakdown        `json:"risk_breakdown"`
	TotalValue    float64              `json:"total_value"`
	Holdings      []HoldingAnalysis    `json:"holdings_analysis"`
	Tolerance     domain.RiskTolerance `json:"risk_tolerance,omitempty"`
	Empty         bool                 `json:"empty_portfolio,omitempty"`
	Error         string               `json:"error,omitempty"`
}

// Assessment is a qualitative band for one metric.
type Assessment struct {
	Value       float64 `json:"value"`
	Level       string  `json:"assessment"`
	Description string  `json:"description"`
}

// Interpretation is the deterministic labeling of an analysis: categorical
// risk level plus per-metric assessments. A fixed rule table, no generation.
type Interpretation struct {
	RiskScore     float64          `json:"risk_score"`
	RiskLevel     domain.RiskLevel `json:"risk_level"`
	Summary       string           `json:"interpretation"`
	Volatility    Assessment       `json:"volatility"`
	Concentration Assessment       `json:"concentration"`
	Correlation   Assessment       `json:"correlation"`
}
