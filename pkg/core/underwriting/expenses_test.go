package underwriting

import (
	"math"
	"testing"
)

func TestComputeExpenses(t *testing.T) {
	e := ComputeExpenses(325000, 2200, DefaultAssumptions())

	// Rate-derived items: purchase price * annual rate / 12
	if math.Abs(e.PropertyTax-677.08) > 0.01 {
		t.Errorf("expected property tax ~677.08, got %f", e.PropertyTax)
	}
	if math.Abs(e.Insurance-216.67) > 0.01 {
		t.Errorf("expected insurance ~216.67, got %f", e.Insurance)
	}
	if math.Abs(e.Maintenance-406.25) > 0.01 {
		t.Errorf("expected maintenance ~406.25, got %f", e.Maintenance)
	}

	// Rent-derived items
	if e.Management != 2200*0.08 {
		t.Errorf("expected management 176, got %f", e.Management)
	}
	if e.Vacancy != 2200*0.05 {
		t.Errorf("expected vacancy 110, got %f", e.Vacancy)
	}

	// Fixed utility-style items
	if e.Internet != 100 || e.Water != 60 || e.Electricity != 300 ||
		e.NaturalGas != 0 || e.PestControl != 50 || e.PoolMaintenance != 150 {
		t.Errorf("fixed items mismatch: %+v", e)
	}
}

func TestExpenseTotalEqualsSumOfLines(t *testing.T) {
	e := ComputeExpenses(325000, 2200, DefaultAssumptions())

	sum := e.Internet + e.Water + e.Electricity + e.NaturalGas +
		e.PestControl + e.PoolMaintenance + e.PropertyTax +
		e.Insurance + e.Maintenance + e.Management + e.Vacancy
	if e.Total() != sum {
		t.Errorf("Total() %f != sum of line items %f", e.Total(), sum)
	}
	if math.Abs(e.Total()-2246.0) > 0.01 {
		t.Errorf("expected total ~2246.00, got %f", e.Total())
	}
}

func TestExpenseGroupsCoverEverything(t *testing.T) {
	e := ComputeExpenses(450000, 3800, DefaultAssumptions())
	g := e.Groups()

	grouped := g.Utilities + g.Maintenance + g.TaxesInsurance + g.Management + g.Vacancy
	if math.Abs(grouped-e.Total()) > 1e-9 {
		t.Errorf("grouped view %f does not cover total %f", grouped, e.Total())
	}
}
