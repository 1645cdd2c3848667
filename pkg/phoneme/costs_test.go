package phoneme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSubstitutionCostDefaults(t *testing.T) {
	costs := DefaultCosts()

	if c := costs.SubstitutionCost("TH", "S"); c != 0.5 {
		t.Errorf("TH/S = %v, want 0.5", c)
	}
	// Table is order-insensitive.
	if c := costs.SubstitutionCost("S", "TH"); c != 0.5 {
		t.Errorf("S/TH = %v, want 0.5", c)
	}
	if c := costs.SubstitutionCost("TH", "K"); c != 1.0 {
		t.Errorf("TH/K = %v, want 1.0", c)
	}
	// Stress digits are ignored.
	if c := costs.SubstitutionCost("AE1", "EH0"); c != 0.5 {
		t.Errorf("AE1/EH0 = %v, want 0.5", c)
	}
	if c := costs.SubstitutionCost("AH0", "AH1"); c != 0 {
		t.Errorf("AH0/AH1 = %v, want 0", c)
	}
}

func TestLoadCostTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "costs.yaml")
	yaml := `pairs:
  - a: TH
    b: S
    cost: 0.25
  - a: P
    b: B
    cost: 0.75
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	costs, err := LoadCostTable(path)
	if err != nil {
		t.Fatalf("LoadCostTable: %v", err)
	}
	if c := costs.SubstitutionCost("S", "TH"); c != 0.25 {
		t.Errorf("TH/S = %v, want 0.25", c)
	}
	if c := costs.SubstitutionCost("B", "P"); c != 0.75 {
		t.Errorf("P/B = %v, want 0.75", c)
	}
	// A pair from the built-in defaults but absent from the file is full cost.
	if c := costs.SubstitutionCost("M", "N"); c != 1.0 {
		t.Errorf("M/N = %v, want 1.0 after override", c)
	}
}

func TestLoadCostTableErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadCostTable(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("pairs:\n  - a: TH\n    cost: 0.5\n"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadCostTable(bad); err == nil {
		t.Error("expected error for entry missing a phoneme")
	}

	neg := filepath.Join(dir, "neg.yaml")
	if err := os.WriteFile(neg, []byte("pairs:\n  - a: TH\n    b: S\n    cost: -1\n"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadCostTable(neg); err == nil {
		t.Error("expected error for negative cost")
	}
}
