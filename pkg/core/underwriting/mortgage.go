package underwriting

import "math"

// MortgageTerms holds the financing side of a purchase.
// DownPayment + LoanAmount always equals the purchase price exactly.
type MortgageTerms struct {
	DownPayment    float64 `json:"down_payment"`
	LoanAmount     float64 `json:"loan_amount"`
	MonthlyPayment float64 `json:"monthly_payment"`
	ClosingCosts   float64 `json:"closing_costs"`
	TotalOOP       float64 `json:"total_oop"` // down payment + closing costs
	MonthlyRate    float64 `json:"monthly_rate"`
	NumPayments    int     `json:"num_payments"`
}

// Amortization is the first-year interest/principal split of a loan.
type Amortization struct {
	MonthlyPayment   float64 `json:"monthly_payment"`
	AnnualInterest   float64 `json:"annual_interest"`
	AnnualPrincipal  float64 `json:"annual_principal"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// MonthlyPayment computes the fixed payment of a fully amortizing loan:
// P = L*r(1+r)^n / ((1+r)^n - 1), r = annualRate/12, n = termYears*12.
// A zero rate degenerates to straight division of principal over the term.
func MonthlyPayment(loanAmount, annualRate float64, termYears int) (float64, error) {
	if loanAmount < 0 {
		return 0, invalidInput("loan_amount", "must not be negative")
	}
	n := float64(termYears * 12)
	r := annualRate / 12
	if r == 0 {
		return loanAmount / n, nil
	}
	growth := math.Pow(1+r, n)
	return loanAmount * r * growth / (growth - 1), nil
}

// FirstYearAmortization walks twelve monthly steps of the standard schedule:
// interest accrues on the running balance, the remainder of the payment
// retires principal.
func FirstYearAmortization(loanAmount, annualRate float64, termYears int) (Amortization, error) {
	payment, err := MonthlyPayment(loanAmount, annualRate, termYears)
	if err != nil {
		return Amortization{}, err
	}

	monthlyRate := annualRate / 12
	balance := loanAmount
	var totalInterest, totalPrincipal float64

	for month := 0; month < 12; month++ {
		interest := balance * monthlyRate
		principal := payment - interest
		totalInterest += interest
		totalPrincipal += principal
		balance -= principal
	}

	return Amortization{
		MonthlyPayment:   payment,
		AnnualInterest:   totalInterest,
		AnnualPrincipal:  totalPrincipal,
		RemainingBalance: balance,
	}, nil
}

// CalculateMortgage derives financing terms for a purchase under the given
// assumptions. Inputs are assumed validated (see Engine.Underwrite).
func CalculateMortgage(purchasePrice float64, a Assumptions) (MortgageTerms, error) {
	downPayment := purchasePrice * a.DownPaymentPct
	loanAmount := purchasePrice - downPayment

	payment, err := MonthlyPayment(loanAmount, a.InterestRate, a.LoanTermYears)
	if err != nil {
		return MortgageTerms{}, err
	}

	closingCosts := purchasePrice * a.ClosingCostsPct

	return MortgageTerms{
		DownPayment:    downPayment,
		LoanAmount:     loanAmount,
		MonthlyPayment: payment,
		ClosingCosts:   closingCosts,
		TotalOOP:       downPayment + closingCosts,
		MonthlyRate:    a.InterestRate / 12,
		NumPayments:    a.LoanTermYears * 12,
	}, nil
}
