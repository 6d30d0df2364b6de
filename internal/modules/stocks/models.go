package stocks

import "github.com/aristeidis/portfolio-risk/internal/domain"

// Action is a categorical position recommendation.
type Action string

const (
	ActionHold   Action = "HOLD"
	ActionReduce Action = "REDUCE"
	ActionSell   Action = "SELL"
)

// Confidence qualifies how strongly the signals back a recommendation.
type Confidence string

const (
	ConfidenceLow    Confidence = "LOW"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceHigh   Confidence = "HIGH"
)

// Recommendation is the outcome of the deterministic signal table for one
// position.
type Recommendation struct {
	Symbol         string     `json:"symbol"`
	Recommendation Action     `json:"recommendation"`
	Confidence     Confidence `json:"confidence"`
	Action         string     `json:"action"`
	Reasons        []string   `json:"reasons"`
}

// StockAnalysis is the full per-holding risk assessment.
type StockAnalysis struct {
	Symbol          string           `json:"symbol"`
	CurrentValue    float64          `json:"current_value"`
	PortfolioWeight float64          `json:"portfolio_weight"` // percent
	Volatility      float64          `json:"volatility"`       // percent
	GainLossPercent float64          `json:"gain_loss_percent"`
	RiskScore       float64          `json:"risk_score"`
	RiskLevel       domain.RiskLevel `json:"risk_level"`
	Recommendation
}

// Review summarizes the per-stock analyses for a whole portfolio, highest
// risk first.
type Review struct {
	StockCount          int             `json:"stock_count"`
	HighRiskCount       int             `json:"high_risk_count"`
	SellRecommendations int             `json:"sell_recommendations"`
	Stocks              []StockAnalysis `json:"stock_analyses"`
}
