package underwriting

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"rental_underwriting/pkg/models"
)

// UnderwritingResult is the complete output of one underwriting run. It is
// assembled once and never mutated afterwards; every nested structure is
// freshly allocated per call. All monetary fields are raw numerics, currency
// and percent formatting belong to the consumer.
type UnderwritingResult struct {
	AnalysisID  string                `json:"analysis_id"`
	AnalyzedAt  time.Time             `json:"analyzed_at"`
	Property    models.PropertyRecord `json:"property"`
	Assumptions Assumptions           `json:"assumptions"`
	Mortgage    MortgageTerms         `json:"mortgage"`
	CashFlow    CashFlowResult        `json:"cash_flow"`
	Returns     ReturnProfile         `json:"returns"`

	// CoCReturn is the fractional cash-on-cash figure (0.09 means 9%) fed
	// into the risk and recommendation rules. Returns.CashOnCash carries the
	// same quantity on the reporting percentage scale.
	CoCReturn float64 `json:"coc_return"`

	Scenarios      map[string]ScenarioResult `json:"scenarios"`
	Opportunities  []Opportunity             `json:"optimization_opportunities"`
	Risk           RiskAssessment            `json:"risk_assessment"`
	Recommendation string                    `json:"recommendation"`
}

// Engine runs the full underwriting pipeline for single properties. It is
// stateless per call; the bound assumptions are read-only, so one Engine is
// safe to share across goroutines.
type Engine struct {
	assumptions Assumptions
	evalYear    int
	log         *logrus.Entry
}

// NewEngine binds a validated set of assumptions to an engine.
func NewEngine(a Assumptions) (*Engine, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		assumptions: a,
		evalYear:    time.Now().Year(),
		log:         logrus.WithField("component", "underwriting"),
	}, nil
}

// SetEvaluationYear overrides the year used by the property-age risk rule,
// mainly for deterministic tests.
func (e *Engine) SetEvaluationYear(year int) {
	e.evalYear = year
}

// Assumptions returns the configuration bound to this engine.
func (e *Engine) Assumptions() Assumptions {
	return e.assumptions
}

// Underwrite analyzes a property with no out-of-pocket budget constraint.
func (e *Engine) Underwrite(p models.PropertyRecord) (*UnderwritingResult, error) {
	return e.UnderwriteWithBudget(p, math.Inf(1))
}

// UnderwriteWithBudget runs the full pipeline: validation, mortgage terms,
// expenses, cash flow, return decomposition, scenarios, optimization
// opportunities, risk assessment, recommendation, in that order. Any failure
// propagates to the caller; there is no defaulted result.
func (e *Engine) UnderwriteWithBudget(p models.PropertyRecord, oopRequirement float64) (*UnderwritingResult, error) {
	if err := e.validate(p); err != nil {
		return nil, err
	}

	// 1. Financing
	terms, err := CalculateMortgage(p.PurchasePrice, e.assumptions)
	if err != nil {
		return nil, err
	}

	// 2. Operating expenses
	expenses := ComputeExpenses(p.PurchasePrice, p.EstimatedRent, e.assumptions)

	// 3. Cash flow
	cashFlow := ComputeCashFlow(p.EstimatedRent, expenses.Total(), terms.MonthlyPayment)

	// 4. Return decomposition
	amort, err := FirstYearAmortization(terms.LoanAmount, e.assumptions.InterestRate, e.assumptions.LoanTermYears)
	if err != nil {
		return nil, err
	}
	coc := CashOnCash(cashFlow.AnnualCashFlow, terms.DownPayment)
	returns := DecomposeReturns(p.PurchasePrice, terms.DownPayment, cashFlow.AnnualCashFlow, amort, e.assumptions)

	// 5. Scenario sensitivities
	scenarios := RunScenarios(cashFlow, terms)

	// 6. Optimization catalog
	opportunities := GenerateOpportunities(cashFlow, expenses)

	// 7. Risk assessment
	risk := AssessRisk(p, cashFlow, coc, e.evalYear)

	// 8. Recommendation
	recommendation := Recommend(coc, risk.Level, terms.TotalOOP, oopRequirement)

	result := &UnderwritingResult{
		AnalysisID:     uuid.NewString(),
		AnalyzedAt:     time.Now().UTC(),
		Property:       p,
		Assumptions:    e.assumptions,
		Mortgage:       terms,
		CashFlow:       cashFlow,
		Returns:        returns,
		CoCReturn:      coc,
		Scenarios:      scenarios,
		Opportunities:  opportunities,
		Risk:           risk,
		Recommendation: recommendation,
	}

	e.log.WithFields(logrus.Fields{
		"address":        p.Address,
		"monthly_cf":     cashFlow.MonthlyCashFlow,
		"coc_return":     coc,
		"risk_level":     risk.Level,
		"recommendation": recommendation,
	}).Debug("underwriting complete")

	return result, nil
}

// validate enforces the input contract before any derived computation.
func (e *Engine) validate(p models.PropertyRecord) error {
	if p.PurchasePrice <= 0 {
		return invalidInput("purchase_price", "must be positive")
	}
	if p.EstimatedRent < 0 {
		return invalidInput("estimated_rent", "must not be negative")
	}
	return e.assumptions.Validate()
}
