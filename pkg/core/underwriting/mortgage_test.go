package underwriting

import (
	"errors"
	"math"
	"testing"
)

func TestMonthlyPayment(t *testing.T) {
	// $325,000 at 6.5% over 30 years, standard amortization
	p, err := MonthlyPayment(325000, 0.065, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(p-2054.22) > 0.01 {
		t.Errorf("expected payment ~2054.22, got %f", p)
	}

	// 80% LTV on the same price
	p, err = MonthlyPayment(260000, 0.065, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(p-1643.38) > 0.01 {
		t.Errorf("expected payment ~1643.38, got %f", p)
	}
}

func TestMonthlyPaymentZeroRate(t *testing.T) {
	// Zero rate degenerates to straight division, exactly
	p, err := MonthlyPayment(360000, 0, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != 1000 {
		t.Errorf("expected exactly 1000, got %f", p)
	}
}

func TestMonthlyPaymentNegativeLoan(t *testing.T) {
	_, err := MonthlyPayment(-1, 0.065, 30)
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
	if invalid.Field != "loan_amount" {
		t.Errorf("expected loan_amount constraint, got %s", invalid.Field)
	}
}

func TestFirstYearAmortization(t *testing.T) {
	a, err := FirstYearAmortization(260000, 0.065, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Reference figures from a standard amortization schedule
	if math.Abs(a.AnnualInterest-16814.44) > 0.01 {
		t.Errorf("expected first-year interest ~16814.44, got %f", a.AnnualInterest)
	}
	if math.Abs(a.AnnualPrincipal-2906.09) > 0.01 {
		t.Errorf("expected first-year principal ~2906.09, got %f", a.AnnualPrincipal)
	}
	if math.Abs(a.RemainingBalance-257093.91) > 0.01 {
		t.Errorf("expected remaining balance ~257093.91, got %f", a.RemainingBalance)
	}

	// Interest + principal must equal twelve payments
	total := a.AnnualInterest + a.AnnualPrincipal
	if math.Abs(total-a.MonthlyPayment*12) > 1e-6 {
		t.Errorf("interest+principal %f != 12 payments %f", total, a.MonthlyPayment*12)
	}
	// Balance consistency
	if math.Abs((260000-a.AnnualPrincipal)-a.RemainingBalance) > 1e-6 {
		t.Errorf("balance %f inconsistent with principal paid %f", a.RemainingBalance, a.AnnualPrincipal)
	}
}

func TestCalculateMortgageInvariant(t *testing.T) {
	a := DefaultAssumptions()
	for _, price := range []float64{100000, 285000, 325000, 333333.33, 450000, 1250000} {
		terms, err := CalculateMortgage(price, a)
		if err != nil {
			t.Fatalf("price %f: unexpected error: %v", price, err)
		}
		if terms.DownPayment+terms.LoanAmount != price {
			t.Errorf("price %f: down %f + loan %f != price", price, terms.DownPayment, terms.LoanAmount)
		}
		if terms.TotalOOP != terms.DownPayment+terms.ClosingCosts {
			t.Errorf("price %f: total OOP %f != down + closing", price, terms.TotalOOP)
		}
	}
}

func TestCalculateMortgageTerms(t *testing.T) {
	terms, err := CalculateMortgage(325000, DefaultAssumptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if terms.DownPayment != 65000 {
		t.Errorf("expected down payment 65000, got %f", terms.DownPayment)
	}
	if terms.LoanAmount != 260000 {
		t.Errorf("expected loan 260000, got %f", terms.LoanAmount)
	}
	if math.Abs(terms.ClosingCosts-9750) > 1e-9 {
		t.Errorf("expected closing costs 9750, got %f", terms.ClosingCosts)
	}
	if terms.NumPayments != 360 {
		t.Errorf("expected 360 payments, got %d", terms.NumPayments)
	}
}
