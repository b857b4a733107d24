package underwriting

// ExpenseBreakdown lists every monthly operating expense line item. Fixed
// utility-style items come straight from the assumptions; the rest are
// derived from the purchase price (annual rate / 12) or the monthly rent.
// Each line is exposed individually for downstream breakdown reporting.
type ExpenseBreakdown struct {
	Internet        float64 `json:"internet"`
	Water           float64 `json:"water"`
	Electricity     float64 `json:"electricity"`
	NaturalGas      float64 `json:"natural_gas"`
	PestControl     float64 `json:"pest_control"`
	PoolMaintenance float64 `json:"pool_maintenance"`
	PropertyTax     float64 `json:"property_tax"`
	Insurance       float64 `json:"insurance"`
	Maintenance     float64 `json:"maintenance"`
	Management      float64 `json:"management"`
	Vacancy         float64 `json:"vacancy"` // reserve, carried as an expense line
}

// ExpenseGroups is the grouped reporting view of a breakdown.
type ExpenseGroups struct {
	Utilities      float64 `json:"utilities"`
	Maintenance    float64 `json:"maintenance"`
	TaxesInsurance float64 `json:"taxes_insurance"`
	Management     float64 `json:"management"`
	Vacancy        float64 `json:"vacancy"`
}

// ComputeExpenses builds the monthly operating expense breakdown for a
// property. All rates come from the assumptions; there is no hidden state.
func ComputeExpenses(purchasePrice, monthlyRent float64, a Assumptions) ExpenseBreakdown {
	return ExpenseBreakdown{
		Internet:        a.Utilities.Internet,
		Water:           a.Utilities.Water,
		Electricity:     a.Utilities.Electricity,
		NaturalGas:      a.Utilities.NaturalGas,
		PestControl:     a.Utilities.PestControl,
		PoolMaintenance: a.Utilities.PoolMaintenance,
		PropertyTax:     purchasePrice * a.PropertyTaxRate / 12,
		Insurance:       purchasePrice * a.InsuranceRate / 12,
		Maintenance:     purchasePrice * a.MaintenanceRate / 12,
		Management:      monthlyRent * a.ManagementRate,
		Vacancy:         monthlyRent * a.VacancyRate,
	}
}

// Total is the sum of every line item, vacancy reserve included.
func (e ExpenseBreakdown) Total() float64 {
	return e.Internet + e.Water + e.Electricity + e.NaturalGas +
		e.PestControl + e.PoolMaintenance + e.PropertyTax +
		e.Insurance + e.Maintenance + e.Management + e.Vacancy
}

// Groups folds the line items into the categories exporters report on.
func (e ExpenseBreakdown) Groups() ExpenseGroups {
	return ExpenseGroups{
		Utilities:      e.Internet + e.Water + e.Electricity + e.NaturalGas,
		Maintenance:    e.PestControl + e.PoolMaintenance + e.Maintenance,
		TaxesInsurance: e.PropertyTax + e.Insurance,
		Management:     e.Management,
		Vacancy:        e.Vacancy,
	}
}
