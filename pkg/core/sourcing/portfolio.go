package sourcing

import "rental_underwriting/pkg/core/underwriting"

// PortfolioMetrics aggregates a set of underwritten properties. Averages are
// over the reporting-scale percentage components; PortfolioCashOnCash is the
// pooled figure, total annual cash flow over total cash invested, as a
// percentage.
type PortfolioMetrics struct {
	TotalProperties     int     `json:"total_properties"`
	TotalInvestment     float64 `json:"total_investment"`
	TotalAnnualCashFlow float64 `json:"total_annual_cash_flow"`
	AvgTotalReturn      float64 `json:"avg_total_return"`
	AvgCashOnCash       float64 `json:"avg_cash_on_cash"`
	AvgAppreciation     float64 `json:"avg_appreciation"`
	AvgTaxSavings       float64 `json:"avg_tax_savings"`
	AvgPrincipalPaydown float64 `json:"avg_principal_paydown"`
	PortfolioCashOnCash float64 `json:"portfolio_cash_on_cash"`
}

// CalculatePortfolioMetrics sums and averages over the given results.
// An empty slice yields the zero value.
func CalculatePortfolioMetrics(results []*underwriting.UnderwritingResult) PortfolioMetrics {
	if len(results) == 0 {
		return PortfolioMetrics{}
	}

	m := PortfolioMetrics{TotalProperties: len(results)}
	for _, r := range results {
		m.TotalInvestment += r.Mortgage.DownPayment
		m.TotalAnnualCashFlow += r.CashFlow.AnnualCashFlow
		m.AvgTotalReturn += r.Returns.TotalReturn
		m.AvgCashOnCash += r.Returns.CashOnCash
		m.AvgAppreciation += r.Returns.Appreciation
		m.AvgTaxSavings += r.Returns.TaxSavings
		m.AvgPrincipalPaydown += r.Returns.PrincipalPaydown
	}

	n := float64(len(results))
	m.AvgTotalReturn /= n
	m.AvgCashOnCash /= n
	m.AvgAppreciation /= n
	m.AvgTaxSavings /= n
	m.AvgPrincipalPaydown /= n

	if m.TotalInvestment > 0 {
		m.PortfolioCashOnCash = m.TotalAnnualCashFlow / m.TotalInvestment * 100
	}
	return m
}
