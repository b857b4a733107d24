package underwriting

import "testing"

func TestFlattenRoundTrip(t *testing.T) {
	e := newTestEngine(t)
	original, err := e.Underwrite(testProperty())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	flat := Flatten(original)
	restored, err := Unflatten(flat)
	if err != nil {
		t.Fatalf("unflatten failed: %v", err)
	}

	// Every numeric field must survive bit-for-bit
	if restored.Property != original.Property {
		t.Errorf("property mismatch:\n got %+v\nwant %+v", restored.Property, original.Property)
	}
	if restored.Mortgage != original.Mortgage {
		t.Errorf("mortgage mismatch:\n got %+v\nwant %+v", restored.Mortgage, original.Mortgage)
	}
	if restored.CashFlow != original.CashFlow {
		t.Errorf("cash flow mismatch:\n got %+v\nwant %+v", restored.CashFlow, original.CashFlow)
	}
	if restored.Returns != original.Returns {
		t.Errorf("returns mismatch:\n got %+v\nwant %+v", restored.Returns, original.Returns)
	}
	if restored.CoCReturn != original.CoCReturn {
		t.Errorf("coc mismatch: got %v want %v", restored.CoCReturn, original.CoCReturn)
	}
	for name, want := range original.Scenarios {
		if restored.Scenarios[name] != want {
			t.Errorf("scenario %q mismatch:\n got %+v\nwant %+v", name, restored.Scenarios[name], want)
		}
	}
	if restored.Risk.Score != original.Risk.Score || restored.Risk.Level != original.Risk.Level {
		t.Errorf("risk mismatch: got %+v want %+v", restored.Risk, original.Risk)
	}
	if restored.Recommendation != original.Recommendation || restored.AnalysisID != original.AnalysisID {
		t.Error("label fields did not survive the round trip")
	}
}

func TestUnflattenMissingField(t *testing.T) {
	e := newTestEngine(t)
	r, err := e.Underwrite(testProperty())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	flat := Flatten(r)
	delete(flat, "monthly_payment")
	if _, err := Unflatten(flat); err == nil {
		t.Error("expected an error for a missing numeric field")
	}
}
