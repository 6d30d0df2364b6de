package alerts

import (
	"fmt"
	"math"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/rs/zerolog"

	"github.com/aristeidis/portfolio-risk/internal/domain"
	"github.com/aristeidis/portfolio-risk/pkg/formulas"
)

const (
	defaultMaxWeight      = 0.50
	defaultDriftThreshold = 0.05
	defaultTaxBracket     = 0.25
	washSaleDays          = 31

	rsiLength     = 14
	rsiOverbought = 70.0
	rsiOversold   = 30.0

	maxReportAlerts = 10
)

// Service evaluates a portfolio snapshot against the alert rule set:
// concentration drift, tax-loss harvesting and price momentum.
type Service struct {
	maxWeight      float64
	driftThreshold float64
	taxBracket     float64
	log            zerolog.Logger
}

func NewService(log zerolog.Logger) *Service {
	return &Service{
		maxWeight:      defaultMaxWeight,
		driftThreshold: defaultDriftThreshold,
		taxBracket:     defaultTaxBracket,
		log:            log.With().Str("component", "alerts").Logger(),
	}
}

// CheckRebalancing flags positions whose weight exceeds the maximum, or
// sits within the drift threshold of it.
func (s *Service) CheckRebalancing(holdings []domain.EnrichedHolding) []Alert {
	totalValue := 0.0
	for _, h := range holdings {
		totalValue += h.Value()
	}
	if totalValue <= 0 {
		return nil
	}

	var alerts []Alert
	for _, h := range holdings {
		weight := h.Value() / totalValue
		switch {
		case weight > s.maxWeight:
			alerts = append(alerts, Alert{
				Type:     TypePositionDrift,
				Severity: SeverityHigh,
				Symbol:   h.Symbol,
				Message:  fmt.Sprintf("%s is %.1f%% of the portfolio, above the %.0f%% maximum", h.Symbol, weight*100, s.maxWeight*100),
				Action:   fmt.Sprintf("Consider trimming %s to restore balance", h.Symbol),
			})
		case weight > s.maxWeight-s.driftThreshold:
			alerts = append(alerts, Alert{
				Type:     TypePositionDrift,
				Severity: SeverityMedium,
				Symbol:   h.Symbol,
				Message:  fmt.Sprintf("%s is %.1f%% of the portfolio, approaching the %.0f%% maximum", h.Symbol, weight*100, s.maxWeight*100),
				Action:   "Review position sizing before the next purchase",
			})
		}
	}
	return alerts
}

// TaxLoss returns harvesting opportunities for positions carrying an
// unrealized loss, with savings estimated at the assumed tax bracket.
func (s *Service) TaxLoss(holdings []domain.EnrichedHolding) []TaxLossOpportunity {
	var opportunities []TaxLossOpportunity
	for _, h := range holdings {
		if h.PurchasePrice <= 0 || h.CurrentPrice <= 0 {
			continue
		}
		loss := (h.CurrentPrice - h.PurchasePrice) * h.Quantity
		if loss >= 0 {
			continue
		}
		opportunities = append(opportunities, TaxLossOpportunity{
			Symbol:              h.Symbol,
			EstimatedLoss:       formulas.Round2(loss),
			PotentialTaxSavings: formulas.Round2(-loss * s.taxBracket),
			Action:              fmt.Sprintf("Consider selling %s to realize %s and offset gains", h.Symbol, usd(-loss)),
			WashSaleWarning:     fmt.Sprintf("Wait %d days before repurchasing to avoid wash sale rules", washSaleDays),
		})
	}
	return opportunities
}

// Momentum computes RSI over each holding's price history and flags
// overbought and oversold positions. Holdings with too little history are
// skipped.
func (s *Service) Momentum(holdings []domain.EnrichedHolding) []Alert {
	var alerts []Alert
	for _, h := range holdings {
		rsi := formulas.CalculateRSI(h.HistoricalPrices, rsiLength)
		if rsi == nil {
			continue
		}
		switch {
		case *rsi > rsiOverbought:
			alerts = append(alerts, Alert{
				Type:     TypeMomentum,
				Severity: SeverityMedium,
				Symbol:   h.Symbol,
				Message:  fmt.Sprintf("%s is overbought (RSI %.1f)", h.Symbol, *rsi),
				Action:   "Consider taking partial profits",
			})
		case *rsi < rsiOversold:
			alerts = append(alerts, Alert{
				Type:     TypeMomentum,
				Severity: SeverityMedium,
				Symbol:   h.Symbol,
				Message:  fmt.Sprintf("%s is oversold (RSI %.1f)", h.Symbol, *rsi),
				Action:   "Review whether the position still fits the strategy",
			})
		}
	}
	return alerts
}

// Compile runs every check and assembles the full report. Beginners get a
// trimmed view without informational noise.
func (s *Service) Compile(holdings []domain.EnrichedHolding, tolerance domain.RiskTolerance) Report {
	all := s.CheckRebalancing(holdings)

	opportunities := s.TaxLoss(holdings)
	totalSavings := 0.0
	for _, o := range opportunities {
		totalSavings += o.PotentialTaxSavings
		all = append(all, Alert{
			Type:     TypeTaxLossHarvest,
			Severity: SeverityMedium,
			Symbol:   o.Symbol,
			Message:  o.Action,
			Action:   o.WashSaleWarning,
		})
	}

	all = append(all, s.Momentum(holdings)...)
	all = append(all, Alert{
		Type:     TypeMarketUpdate,
		Severity: SeverityInfo,
		Message:  "Regular portfolio monitoring recommended",
		Action:   "Review portfolio performance monthly",
	})

	if tolerance == domain.ToleranceBeginner {
		kept := all[:0]
		for _, a := range all {
			if a.Severity != SeverityInfo {
				kept = append(kept, a)
			}
		}
		all = kept
	}

	report := Report{
		TotalAlerts:           len(all),
		TaxLossOpportunities:  opportunities,
		TotalPotentialSavings: formulas.Round2(totalSavings),
		GeneratedAt:           time.Now().UTC(),
	}
	for _, a := range all {
		switch a.Severity {
		case SeverityHigh:
			report.HighPriority = append(report.HighPriority, a)
		case SeverityMedium:
			report.MediumPriority = append(report.MediumPriority, a)
		default:
			report.LowPriority = append(report.LowPriority, a)
		}
	}
	// TotalAlerts and the severity buckets count everything; the flat list
	// is capped to the ten most relevant entries.
	if len(all) > maxReportAlerts {
		all = all[:maxReportAlerts]
	}
	report.Alerts = all

	s.log.Info().
		Int("alerts", report.TotalAlerts).
		Int("tax_loss_opportunities", len(opportunities)).
		Msg("Alert report compiled")
	return report
}

func usd(amount float64) string {
	return money.New(int64(math.Round(amount*100)), money.USD).Display()
}
