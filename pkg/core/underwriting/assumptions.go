package underwriting

// UtilityCosts are the fixed monthly dollar line items an owner typically
// carries on a rental. All values are monthly currency amounts.
type UtilityCosts struct {
	Internet        float64 `yaml:"internet" json:"internet"`
	Water           float64 `yaml:"water" json:"water"`
	Electricity     float64 `yaml:"electricity" json:"electricity"`
	NaturalGas      float64 `yaml:"natural_gas" json:"natural_gas"`
	PestControl     float64 `yaml:"pest_control" json:"pest_control"`
	PoolMaintenance float64 `yaml:"pool_maintenance" json:"pool_maintenance"`
}

// Assumptions is the immutable set of financing and operating rates bound to
// an analysis. There is no process-wide default instance; callers construct
// one (usually via DefaultAssumptions or pkg/config) and pass it in.
type Assumptions struct {
	DownPaymentPct    float64      `yaml:"down_payment_pct" json:"down_payment_pct"`
	InterestRate      float64      `yaml:"interest_rate" json:"interest_rate"` // annual
	LoanTermYears     int          `yaml:"loan_term_years" json:"loan_term_years"`
	AppreciationRate  float64      `yaml:"appreciation_rate" json:"appreciation_rate"`
	TaxRate           float64      `yaml:"tax_rate" json:"tax_rate"` // marginal income tax
	DepreciationYears float64      `yaml:"depreciation_years" json:"depreciation_years"`
	PropertyTaxRate   float64      `yaml:"property_tax_rate" json:"property_tax_rate"`
	InsuranceRate     float64      `yaml:"insurance_rate" json:"insurance_rate"`
	MaintenanceRate   float64      `yaml:"maintenance_rate" json:"maintenance_rate"`
	ManagementRate    float64      `yaml:"management_rate" json:"management_rate"` // of monthly rent
	VacancyRate       float64      `yaml:"vacancy_rate" json:"vacancy_rate"`       // of monthly rent
	ClosingCostsPct   float64      `yaml:"closing_costs_pct" json:"closing_costs_pct"`
	Utilities         UtilityCosts `yaml:"utilities" json:"utilities"`
}

// DefaultAssumptions returns the baseline underwriting configuration.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		DownPaymentPct:    0.20,
		InterestRate:      0.065,
		LoanTermYears:     30,
		AppreciationRate:  0.03,
		TaxRate:           0.25,
		DepreciationYears: 27.5, // residential straight-line
		PropertyTaxRate:   0.025,
		InsuranceRate:     0.008,
		MaintenanceRate:   0.015,
		ManagementRate:    0.08,
		VacancyRate:       0.05,
		ClosingCostsPct:   0.03,
		Utilities: UtilityCosts{
			Internet:        100,
			Water:           60,
			Electricity:     300,
			NaturalGas:      0,
			PestControl:     50,
			PoolMaintenance: 150,
		},
	}
}

// Validate checks the financing constraints that apply regardless of the
// property being analyzed.
func (a Assumptions) Validate() error {
	if a.DownPaymentPct < 0.20 {
		return invalidInput("down_payment_pct", "must be at least 0.20")
	}
	if a.InterestRate <= 0 {
		return invalidInput("interest_rate", "must be positive")
	}
	if a.InterestRate >= 0.20 {
		return invalidInput("interest_rate", "must be below 0.20")
	}
	if a.LoanTermYears <= 0 {
		return invalidInput("loan_term_years", "must be positive")
	}
	return nil
}
