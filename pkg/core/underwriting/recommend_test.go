package underwriting

import (
	"math"
	"testing"
)

func TestRecommendThresholds(t *testing.T) {
	unbounded := math.Inf(1)
	cases := []struct {
		coc  float64
		want string
	}{
		{0.09, RecStrongBuy},
		{0.12, RecStrongBuy},
		{0.089, RecBuy},
		{0.07, RecBuy},
		{0.069, RecHold},
		{0.05, RecHold},
		{0.049, RecPassReturn},
		{-0.10, RecPassReturn},
	}
	for _, c := range cases {
		got := Recommend(c.coc, LevelLow, 100000, unbounded)
		if got != c.want {
			t.Errorf("coc %f: got %q, want %q", c.coc, got, c.want)
		}
	}
}

func TestRecommendOOPDominates(t *testing.T) {
	// Over budget is a PASS no matter how strong the return
	got := Recommend(0.50, LevelLow, 400000, 375000)
	if got != RecPassOOP {
		t.Errorf("over-budget property must PASS, got %q", got)
	}
	// At exactly the budget the constraint is satisfied
	got = Recommend(0.10, LevelLow, 375000, 375000)
	if got != RecStrongBuy {
		t.Errorf("at-budget property should pass the OOP rule, got %q", got)
	}
}

func TestRecommendHighRiskDominatesReturn(t *testing.T) {
	got := Recommend(0.20, LevelHigh, 100000, math.Inf(1))
	if got != RecPassRisk {
		t.Errorf("high risk must PASS before return rules, got %q", got)
	}
	// But the OOP rule still comes first
	got = Recommend(0.20, LevelHigh, 400000, 375000)
	if got != RecPassOOP {
		t.Errorf("OOP rule should fire before risk rule, got %q", got)
	}
}
