package underwriting

// CashFlowResult is the monthly operating picture of a property.
// AnnualCashFlow is always exactly MonthlyCashFlow * 12.
type CashFlowResult struct {
	MonthlyRent     float64 `json:"monthly_rent"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	MonthlyMortgage float64 `json:"monthly_mortgage"`
	NOI             float64 `json:"net_operating_income"`
	MonthlyCashFlow float64 `json:"monthly_cash_flow"`
	AnnualCashFlow  float64 `json:"annual_cash_flow"`
}

// ComputeCashFlow nets rent against operating expenses and debt service.
// The vacancy reserve is part of monthlyExpenses here, not a rent haircut;
// only the scenario engine additionally discounts rent for vacancy.
func ComputeCashFlow(monthlyRent, monthlyExpenses, monthlyMortgage float64) CashFlowResult {
	noi := monthlyRent - monthlyExpenses
	monthly := noi - monthlyMortgage
	return CashFlowResult{
		MonthlyRent:     monthlyRent,
		MonthlyExpenses: monthlyExpenses,
		MonthlyMortgage: monthlyMortgage,
		NOI:             noi,
		MonthlyCashFlow: monthly,
		AnnualCashFlow:  monthly * 12,
	}
}
