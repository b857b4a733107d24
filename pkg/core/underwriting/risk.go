package underwriting

import "rental_underwriting/pkg/models"

// RiskAssessment is the rule-based risk profile of a property. Score
// accumulates points from every triggered rule; Level is thresholded from
// the score (>=5 High, >=3 Medium, else Low).
type RiskAssessment struct {
	Score       int      `json:"risk_score"`
	Level       string   `json:"risk_level"`
	Factors     []string `json:"risk_factors"`
	Mitigations []string `json:"mitigation_strategies"`
}

type riskCategory int

const (
	riskMarket riskCategory = iota
	riskCashFlow
	riskReturn
	riskAge
)

var mitigationTemplates = map[riskCategory]string{
	riskCashFlow: "Implement optimization strategies to improve cash flow",
	riskReturn:   "Consider alternative properties or financing options",
	riskMarket:   "Conduct thorough market analysis and price optimization",
	riskAge:      "Budget for increased maintenance and potential renovations",
}

// AssessRisk evaluates every rule independently; there is no early exit.
// cocReturn is the fractional cash-on-cash figure (0.08 means 8%), so the
// 0.05/0.08 thresholds are on the same scale. evaluationYear anchors the
// property-age rule.
func AssessRisk(p models.PropertyRecord, cf CashFlowResult, cocReturn float64, evaluationYear int) RiskAssessment {
	score := 0
	var factors []string
	var categories []riskCategory

	trigger := func(points int, factor string, cat riskCategory) {
		score += points
		factors = append(factors, factor)
		categories = append(categories, cat)
	}

	// Market risk
	if p.DaysOnMarket > 90 {
		trigger(2, "High days on market", riskMarket)
	} else if p.DaysOnMarket > 60 {
		trigger(1, "Moderate days on market", riskMarket)
	}

	// Cash flow risk
	if cf.MonthlyCashFlow < 0 {
		trigger(3, "Negative cash flow", riskCashFlow)
	} else if cf.MonthlyCashFlow < 200 {
		trigger(1, "Low cash flow", riskCashFlow)
	}

	// Return risk
	if cocReturn < 0.05 {
		trigger(2, "Low CoC return", riskReturn)
	} else if cocReturn < 0.08 {
		trigger(1, "Moderate CoC return", riskReturn)
	}

	// Age risk
	if evaluationYear-p.YearBuilt > 30 {
		trigger(1, "Older property", riskAge)
	}

	level := LevelLow
	switch {
	case score >= 5:
		level = LevelHigh
	case score >= 3:
		level = LevelMedium
	}

	return RiskAssessment{
		Score:       score,
		Level:       level,
		Factors:     factors,
		Mitigations: mitigations(categories),
	}
}

// mitigations emits one fixed strategy per distinct triggered category,
// in trigger order.
func mitigations(categories []riskCategory) []string {
	seen := make(map[riskCategory]bool, len(categories))
	var out []string
	for _, cat := range categories {
		if seen[cat] {
			continue
		}
		seen[cat] = true
		out = append(out, mitigationTemplates[cat])
	}
	return out
}
