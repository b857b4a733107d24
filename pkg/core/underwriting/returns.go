package underwriting

import "math"

// Fraction of the purchase price treated as depreciable building value;
// the remainder is land, which does not depreciate.
const depreciableFraction = 0.8

// ReturnProfile decomposes the first-year return into four components, each
// an annual dollar benefit over the down payment, expressed as a percentage
// (9.0 means 9%) and rounded to two decimals. TotalReturn is the sum of the
// already-rounded components. These are reporting-scale figures; the
// fractional CoC consumed by risk and recommendation rules lives on
// UnderwritingResult.CoCReturn.
type ReturnProfile struct {
	CashOnCash       float64 `json:"cash_on_cash_return"`
	Appreciation     float64 `json:"appreciation_return"`
	TaxSavings       float64 `json:"tax_savings_return"`
	PrincipalPaydown float64 `json:"principal_paydown_return"`
	TotalReturn      float64 `json:"total_return"`
}

// CashOnCash returns annual cash flow over cash invested as a fraction.
// A non-positive down payment yields 0 rather than a division fault.
func CashOnCash(annualCashFlow, downPayment float64) float64 {
	if downPayment <= 0 {
		return 0
	}
	return annualCashFlow / downPayment
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// pctOfDown normalizes an annual dollar benefit against the down payment as
// a rounded percentage, guarding the degenerate zero-down configuration.
func pctOfDown(annualBenefit, downPayment float64) float64 {
	if downPayment <= 0 {
		return 0
	}
	return round2(annualBenefit / downPayment * 100)
}

// DecomposeReturns computes the four return components.
// Tax savings models depreciableFraction of the price depreciating
// straight-line over the configured period, shielded at the marginal rate.
func DecomposeReturns(purchasePrice, downPayment, annualCashFlow float64, amort Amortization, a Assumptions) ReturnProfile {
	coc := pctOfDown(annualCashFlow, downPayment)
	appreciation := pctOfDown(purchasePrice*a.AppreciationRate, downPayment)
	annualDepreciation := purchasePrice * depreciableFraction / a.DepreciationYears
	taxSavings := pctOfDown(annualDepreciation*a.TaxRate, downPayment)
	principal := pctOfDown(amort.AnnualPrincipal, downPayment)

	return ReturnProfile{
		CashOnCash:       coc,
		Appreciation:     appreciation,
		TaxSavings:       taxSavings,
		PrincipalPaydown: principal,
		TotalReturn:      coc + appreciation + taxSavings + principal,
	}
}
