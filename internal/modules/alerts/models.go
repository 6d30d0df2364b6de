package alerts

import "time"

// Severity ranks how urgently an alert should be surfaced.
type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
	SeverityInfo   Severity = "INFO"
)

// Alert types.
const (
	TypePositionDrift  = "POSITION_DRIFT"
	TypeTaxLossHarvest = "TAX_LOSS_HARVEST"
	TypeMomentum       = "MOMENTUM"
	TypeMarketUpdate   = "MARKET_UPDATE"
)

// Alert is a single actionable notification about the portfolio.
type Alert struct {
	Type     string   `json:"type"`
	Severity Severity `json:"severity"`
	Symbol   string   `json:"symbol,omitempty"`
	Message  string   `json:"message"`
	Action   string   `json:"action"`
}

// TaxLossOpportunity describes a losing position that could be sold to
// offset realized gains.
type TaxLossOpportunity struct {
	Symbol              string  `json:"symbol"`
	EstimatedLoss       float64 `json:"estimated_loss"`
	PotentialTaxSavings float64 `json:"potential_tax_savings"`
	Action              string  `json:"action"`
	WashSaleWarning     string  `json:"wash_sale_warning"`
}

// Report aggregates every alert category for one portfolio snapshot.
// TotalAlerts and the priority buckets cover all alerts raised; Alerts holds
// at most the ten most relevant.
type Report struct {
	TotalAlerts           int                  `json:"total_alerts"`
	HighPriority          []Alert              `json:"high_priority"`
	MediumPriority        []Alert              `json:"medium_priority"`
	LowPriority           []Alert              `json:"low_priority"`
	Alerts                []Alert              `json:"alerts"`
	TaxLossOpportunities  []TaxLossOpportunity `json:"tax_loss_opportunities"`
	TotalPotentialSavings float64              `json:"total_potential_savings"`
	GeneratedAt           time.Time            `json:"generated_at"`
}
