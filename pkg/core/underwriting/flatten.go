package underwriting

import (
	"fmt"

	"rental_underwriting/pkg/models"
)

// Flatten maps the exporter-facing surface of a result onto a flat record.
// Numeric fields are carried as their native float64/int values, never
// formatted to strings, so a flatten/unflatten round trip is bit-for-bit
// lossless. Presentation formatting happens only at presentation boundaries.
func Flatten(r *UnderwritingResult) map[string]interface{} {
	flat := map[string]interface{}{
		"analysis_id":    r.AnalysisID,
		"address":        r.Property.Address,
		"purchase_price": r.Property.PurchasePrice,
		"square_footage": r.Property.SquareFootage,
		"bedrooms":       r.Property.Bedrooms,
		"bathrooms":      r.Property.Bathrooms,
		"year_built":     r.Property.YearBuilt,
		"property_type":  r.Property.PropertyType,
		"estimated_rent": r.Property.EstimatedRent,
		"days_on_market": r.Property.DaysOnMarket,
		"listing_url":    r.Property.ListingURL,

		"down_payment":    r.Mortgage.DownPayment,
		"loan_amount":     r.Mortgage.LoanAmount,
		"monthly_payment": r.Mortgage.MonthlyPayment,
		"closing_costs":   r.Mortgage.ClosingCosts,
		"total_oop":       r.Mortgage.TotalOOP,
		"monthly_rate":    r.Mortgage.MonthlyRate,
		"num_payments":    r.Mortgage.NumPayments,

		"monthly_rent":         r.CashFlow.MonthlyRent,
		"monthly_expenses":     r.CashFlow.MonthlyExpenses,
		"monthly_mortgage":     r.CashFlow.MonthlyMortgage,
		"net_operating_income": r.CashFlow.NOI,
		"monthly_cash_flow":    r.CashFlow.MonthlyCashFlow,
		"annual_cash_flow":     r.CashFlow.AnnualCashFlow,

		"cash_on_cash_return":      r.Returns.CashOnCash,
		"appreciation_return":      r.Returns.Appreciation,
		"tax_savings_return":       r.Returns.TaxSavings,
		"principal_paydown_return": r.Returns.PrincipalPaydown,
		"total_return":             r.Returns.TotalReturn,
		"coc_return":               r.CoCReturn,

		"risk_score":     r.Risk.Score,
		"risk_level":     r.Risk.Level,
		"recommendation": r.Recommendation,
	}

	for name, s := range r.Scenarios {
		prefix := "scenario_" + name + "_"
		flat[prefix+"rent"] = s.Rent
		flat[prefix+"expenses"] = s.Expenses
		flat[prefix+"vacancy_rate"] = s.VacancyRate
		flat[prefix+"effective_rent"] = s.CashFlow.MonthlyRent
		flat[prefix+"noi"] = s.CashFlow.NOI
		flat[prefix+"monthly_cash_flow"] = s.CashFlow.MonthlyCashFlow
		flat[prefix+"annual_cash_flow"] = s.CashFlow.AnnualCashFlow
		flat[prefix+"coc_return"] = s.CoCReturn
	}

	return flat
}

// Unflatten rebuilds the numeric surface of a result from a flat record
// produced by Flatten. Opportunity and risk-factor lists are not part of the
// flat surface and come back empty.
func Unflatten(flat map[string]interface{}) (*UnderwritingResult, error) {
	str := func(key string) string {
		s, _ := flat[key].(string)
		return s
	}
	num := func(key string) (float64, error) {
		v, ok := flat[key]
		if !ok {
			return 0, fmt.Errorf("flat record missing %q", key)
		}
		f, ok := v.(float64)
		if !ok {
			return 0, fmt.Errorf("flat record field %q is %T, want float64", key, v)
		}
		return f, nil
	}
	integer := func(key string) (int, error) {
		v, ok := flat[key]
		if !ok {
			return 0, fmt.Errorf("flat record missing %q", key)
		}
		i, ok := v.(int)
		if !ok {
			return 0, fmt.Errorf("flat record field %q is %T, want int", key, v)
		}
		return i, nil
	}

	var firstErr error
	mustNum := func(key string) float64 {
		f, err := num(key)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return f
	}
	mustInt := func(key string) int {
		i, err := integer(key)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return i
	}

	r := &UnderwritingResult{
		AnalysisID: str("analysis_id"),
		Property: models.PropertyRecord{
			Address:       str("address"),
			PurchasePrice: mustNum("purchase_price"),
			SquareFootage: mustInt("square_footage"),
			Bedrooms:      mustInt("bedrooms"),
			Bathrooms:     mustNum("bathrooms"),
			YearBuilt:     mustInt("year_built"),
			PropertyType:  str("property_type"),
			EstimatedRent: mustNum("estimated_rent"),
			DaysOnMarket:  mustInt("days_on_market"),
			ListingURL:    str("listing_url"),
		},
		Mortgage: MortgageTerms{
			DownPayment:    mustNum("down_payment"),
			LoanAmount:     mustNum("loan_amount"),
			MonthlyPayment: mustNum("monthly_payment"),
			ClosingCosts:   mustNum("closing_costs"),
			TotalOOP:       mustNum("total_oop"),
			MonthlyRate:    mustNum("monthly_rate"),
			NumPayments:    mustInt("num_payments"),
		},
		CashFlow: CashFlowResult{
			MonthlyRent:     mustNum("monthly_rent"),
			MonthlyExpenses: mustNum("monthly_expenses"),
			MonthlyMortgage: mustNum("monthly_mortgage"),
			NOI:             mustNum("net_operating_income"),
			MonthlyCashFlow: mustNum("monthly_cash_flow"),
			AnnualCashFlow:  mustNum("annual_cash_flow"),
		},
		Returns: ReturnProfile{
			CashOnCash:       mustNum("cash_on_cash_return"),
			Appreciation:     mustNum("appreciation_return"),
			TaxSavings:       mustNum("tax_savings_return"),
			PrincipalPaydown: mustNum("principal_paydown_return"),
			TotalReturn:      mustNum("total_return"),
		},
		CoCReturn: mustNum("coc_return"),
		Risk: RiskAssessment{
			Score: mustInt("risk_score"),
			Level: str("risk_level"),
		},
		Recommendation: str("recommendation"),
	}

	scenarios := make(map[string]ScenarioResult)
	for _, name := range []string{ScenarioLow, ScenarioMid, ScenarioHigh} {
		prefix := "scenario_" + name + "_"
		if _, ok := flat[prefix+"rent"]; !ok {
			continue
		}
		cf := CashFlowResult{
			MonthlyRent:     mustNum(prefix + "effective_rent"),
			MonthlyExpenses: mustNum(prefix + "expenses"),
			MonthlyMortgage: r.Mortgage.MonthlyPayment,
			NOI:             mustNum(prefix + "noi"),
			MonthlyCashFlow: mustNum(prefix + "monthly_cash_flow"),
			AnnualCashFlow:  mustNum(prefix + "annual_cash_flow"),
		}
		scenarios[name] = ScenarioResult{
			Rent:        mustNum(prefix + "rent"),
			Expenses:    mustNum(prefix + "expenses"),
			VacancyRate: mustNum(prefix + "vacancy_rate"),
			CashFlow:    cf,
			CoCReturn:   mustNum(prefix + "coc_return"),
		}
	}
	if len(scenarios) > 0 {
		r.Scenarios = scenarios
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return r, nil
}
