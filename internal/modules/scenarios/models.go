package scenarios

// Kind identifies a what-if scenario type.
type Kind string

const (
	KindAdd      Kind = "add"
	KindRemove   Kind = "remove"
	KindIncrease Kind = "increase_position"
	KindDecrease Kind = "decrease_position"
)

// Impact is the qualitative tag attached to a simulated outcome.
type Impact string

const (
	ImpactPositive   Impact = "POSITIVE"
	ImpactNegative   Impact = "NEGATIVE"
	ImpactNeutral    Impact = "NEUTRAL"
	ImpactCautionary Impact = "CAUTIONARY"
)

// Result is one simulated scenario. Ephemeral: results carry no state beyond
// being collected into a comparison.
type Result struct {
	Scenario         string  `json:"scenario"`
	Kind             Kind    `json:"scenario_type"`
	Symbol           string  `json:"symbol"`
	SymbolClass      string  `json:"symbol_class,omitempty"`
	CurrentValue     float64 `json:"current_value"`
	NewValue         float64 `json:"new_value"`
	CurrentRiskScore float64 `json:"current_risk_score"`
	NewRiskScore     float64 `json:"new_risk_score"`
	RiskChange       float64 `json:"risk_change"`
	Impact           Impact  `json:"impact"`
	Analysis         string  `json:"analysis"`
}

// Comparison is the outcome of running the standard scenario set.
type Comparison struct {
	Scenarios      []Result `json:"scenarios"`
	Recommended    Result   `json:"recommended"`
	Recommendation string   `json:"recommendation"`
}
