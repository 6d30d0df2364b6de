package domain

import (
	"fmt"
	"strings"
	"time"
)

// Holding represents a validated portfolio position as supplied by the
// holdings provider. Immutable once constructed.
type Holding struct {
	Symbol        string  `json:"symbol"`
	Quantity      float64 `json:"quantity"`
	PurchasePrice float64 `json:"purchase_price"`
	PurchaseDate  string  `json:"purchase_date,omitempty"` // YYYY-MM-DD
}

// NewHolding validates and normalizes a raw holding. Symbols are upper-cased
// and trimmed; quantity must be positive and purchase price non-negative.
func NewHolding(symbol string, quantity, purchasePrice float64, purchaseDate string) (Holding, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return Holding{}, fmt.Errorf("holding symbol is required")
	}
	if quantity <= 0 {
		return Holding{}, fmt.Errorf("holding %s: quantity must be positive, got %v", symbol, quantity)
	}
	if purchasePrice < 0 {
		return Holding{}, fmt.Errorf("holding %s: purchase price must be non-negative, got %v", symbol, purchasePrice)
	}
	if purchaseDate != "" {
		if _, err := time.Parse("2006-01-02", purchaseDate); err != nil {
			return Holding{}, fmt.Errorf("holding %s: purchase date must be YYYY-MM-DD: %w", symbol, err)
		}
	}

	return Holding{
		Symbol:        symbol,
		Quantity:      quantity,
		PurchasePrice: purchasePrice,
		PurchaseDate:  purchaseDate,
	}, nil
}

// EnrichedHolding is a holding joined with market data from the price
// provider. PriceDegraded marks fallback data (provider failure); the risk
// engine treats degraded data the same as live data.
type EnrichedHolding struct {
	Holding
	CurrentPrice     float64   `json:"current_price"`
	HistoricalPrices []float64 `json:"historical_prices"`
	PriceDegraded    bool      `json:"price_degraded,omitempty"`
}

// Value returns the position market value (current price × quantity).
func (h EnrichedHolding) Value() float64 {
	return h.CurrentPrice * h.Quantity
}

// GainLossPercent returns the unrealized gain or loss relative to the
// purchase price, in percent. A non-positive purchase price yields 0.
func (h EnrichedHolding) GainLossPercent() float64 {
	if h.PurchasePrice <= 0 {
		return 0
	}
	return (h.CurrentPrice - h.PurchasePrice) / h.PurchasePrice * 100
}

// RiskLevel is the categorical risk classification shared by the portfolio
// and per-stock scoring paths.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "LOW"
	RiskLevelModerate RiskLevel = "MODERATE"
	RiskLevelElevated RiskLevel = "ELEVATED"
	RiskLevelHigh     RiskLevel = "HIGH"
)

// RiskLevelForScore maps a 1-10 risk score to its categorical level.
// Thresholds: ≤3 LOW, ≤5 MODERATE, ≤7 ELEVATED, above HIGH.
func RiskLevelForScore(score float64) RiskLevel {
	switch {
	case score <= 3:
		return RiskLevelLow
	case score <= 5:
		return RiskLevelModerate
	case score <= 7:
		return RiskLevelElevated
	default:
		return RiskLevelHigh
	}
}

// RiskTolerance is the user profile tag carried through analysis results.
// It labels downstream advice and never participates in any computation.
type RiskTolerance string

const (
	ToleranceBeginner     RiskTolerance = "beginner"
	ToleranceIntermediate RiskTolerance = "intermediate"
	ToleranceSenior       RiskTolerance = "senior"
)

// NormalizeTolerance maps free-form profile input onto a known tolerance tag,
// defaulting to beginner.
func NormalizeTolerance(profile string) RiskTolerance {
	switch RiskTolerance(strings.ToLower(strings.TrimSpace(profile))) {
	case ToleranceIntermediate:
		return ToleranceIntermediate
	case ToleranceSenior:
		return ToleranceSenior
	default:
		return ToleranceBeginner
	}
}
