package underwriting

// Scenario names, keys of the set returned by RunScenarios.
const (
	ScenarioLow  = "low"
	ScenarioMid  = "mid"
	ScenarioHigh = "high"
)

// ScenarioResult is one rent/expense perturbation of the base case.
// Rent is the perturbed asking rent; the scenario vacancy rate is applied
// as a haircut on that rent inside the cash flow computation. CoCReturn is
// a fraction, same scale as UnderwritingResult.CoCReturn.
type ScenarioResult struct {
	Rent        float64        `json:"rent"`
	Expenses    float64        `json:"expenses"`
	VacancyRate float64        `json:"vacancy_rate"`
	CashFlow    CashFlowResult `json:"cash_flow"`
	CoCReturn   float64        `json:"coc_return"`
}

var scenarioDefs = []struct {
	name     string
	rentMult float64
	expMult  float64
	vacancy  float64
}{
	{ScenarioLow, 0.90, 1.10, 0.08},
	{ScenarioMid, 1.00, 1.00, 0.05},
	{ScenarioHigh, 1.10, 0.90, 0.03},
}

// RunScenarios recomputes cash flow and cash-on-cash under the three fixed
// perturbations. Financing is not re-derived; every scenario reuses the
// base mortgage terms. Each variant is computed independently from the base
// figures, so no intermediate state leaks between them.
func RunScenarios(base CashFlowResult, terms MortgageTerms) map[string]ScenarioResult {
	out := make(map[string]ScenarioResult, len(scenarioDefs))
	for _, def := range scenarioDefs {
		rent := base.MonthlyRent * def.rentMult
		expenses := base.MonthlyExpenses * def.expMult
		effectiveRent := rent * (1 - def.vacancy)

		cf := ComputeCashFlow(effectiveRent, expenses, terms.MonthlyPayment)
		out[def.name] = ScenarioResult{
			Rent:        rent,
			Expenses:    expenses,
			VacancyRate: def.vacancy,
			CashFlow:    cf,
			CoCReturn:   CashOnCash(cf.AnnualCashFlow, terms.DownPayment),
		}
	}
	return out
}
