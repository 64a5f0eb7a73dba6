package rules

import (
	"reflect"
	"testing"

	"compliancehub/cmd/internal/domain/entity"
)

func countWhere(drafts []Draft, pred func(Draft) bool) int {
	n := 0
	for _, d := range drafts {
		if pred(d) {
			n++
		}
	}
	return n
}

func TestTurnoverAboveThresholdGetsMonthlyGST(t *testing.T) {
	drafts := ApplicableCompliances(BusinessProfile{AnnualTurnover: 15_000_001, EmployeeCount: 1, State: "DL"})

	monthly := countWhere(drafts, func(d Draft) bool {
		return d.Type == entity.TypeTax && d.Frequency == entity.FrequencyMonthly
	})
	quarterly := countWhere(drafts, func(d Draft) bool {
		return d.Type == entity.TypeTax && d.Frequency == entity.FrequencyQuarterly
	})
	if monthly != 1 || quarterly != 0 {
		t.Fatalf("expected monthly GST only, got monthly=%d quarterly=%d", monthly, quarterly)
	}
}

func TestTurnoverAtThresholdGetsQuarterlyGST(t *testing.T) {
	// Exactly ₹1.5 Crores takes the quarterly branch; the threshold is strict.
	drafts := ApplicableCompliances(BusinessProfile{AnnualTurnover: 15_000_000, EmployeeCount: 1, State: "DL"})

	monthly := countWhere(drafts, func(d Draft) bool {
		return d.Type == entity.TypeTax && d.Frequency == entity.FrequencyMonthly
	})
	quarterly := countWhere(drafts, func(d Draft) bool {
		return d.Type == entity.TypeTax && d.Frequency == entity.FrequencyQuarterly
	})
	if monthly != 0 || quarterly != 1 {
		t.Fatalf("expected quarterly GST only, got monthly=%d quarterly=%d", monthly, quarterly)
	}
}

func TestHeadcountBoundary(t *testing.T) {
	nine := ApplicableCompliances(BusinessProfile{AnnualTurnover: 1, EmployeeCount: 9, State: "DL"})
	if n := countWhere(nine, func(d Draft) bool { return d.Type == entity.TypeLabor }); n != 0 {
		t.Fatalf("9 employees: expected no labor compliances, got %d", n)
	}

	ten := ApplicableCompliances(BusinessProfile{AnnualTurnover: 1, EmployeeCount: 10, State: "DL"})
	var bodies []entity.RegulatoryBody
	for _, d := range ten {
		if d.Type == entity.TypeLabor {
			bodies = append(bodies, d.RegulatoryBody)
		}
	}
	want := []entity.RegulatoryBody{entity.BodyEPFO, entity.BodyESIC}
	if !reflect.DeepEqual(bodies, want) {
		t.Fatalf("10 employees: expected labor bodies %v, got %v", want, bodies)
	}
}

func TestProfessionalTaxStateJustificationNamesState(t *testing.T) {
	drafts := ApplicableCompliances(BusinessProfile{AnnualTurnover: 1, EmployeeCount: 1, State: "KA"})

	found := false
	for _, d := range drafts {
		if d.RegulatoryBody == entity.BodyState {
			found = true
			if d.Justification != "Required in KA" {
				t.Fatalf("unexpected justification %q", d.Justification)
			}
		}
	}
	if !found {
		t.Fatal("KA should trigger a professional tax compliance")
	}

	none := ApplicableCompliances(BusinessProfile{AnnualTurnover: 1, EmployeeCount: 1, State: "DL"})
	if n := countWhere(none, func(d Draft) bool { return d.RegulatoryBody == entity.BodyState }); n != 0 {
		t.Fatalf("DL should not trigger professional tax, got %d", n)
	}
}

func TestCorporateBaselineAlwaysPresent(t *testing.T) {
	// Negative turnover and zero headcount are not rejected here.
	profiles := []BusinessProfile{
		{},
		{AnnualTurnover: -5, EmployeeCount: 0, State: "ZZ"},
		{AnnualTurnover: 99_999_999, EmployeeCount: 500, State: "MH"},
	}

	wantNames := []string{
		"Annual Return (MGT-7)",
		"Financial Statements (AOC-4)",
		"Board Meetings",
		"Director KYC (DIR-3 KYC)",
	}

	for _, p := range profiles {
		drafts := ApplicableCompliances(p)

		var corporate []string
		for _, d := range drafts {
			if d.Type == entity.TypeCorporate {
				corporate = append(corporate, d.Name)
			}
		}
		if !reflect.DeepEqual(corporate, wantNames) {
			t.Fatalf("profile %+v: corporate baseline = %v", p, corporate)
		}
	}
}

func TestMaharashtraScenarioYieldsEight(t *testing.T) {
	drafts := ApplicableCompliances(BusinessProfile{AnnualTurnover: 20_000_000, EmployeeCount: 15, State: "MH"})
	if len(drafts) != 8 {
		t.Fatalf("expected 8 compliances, got %d", len(drafts))
	}
}

func TestDeterministicOutput(t *testing.T) {
	p := BusinessProfile{AnnualTurnover: 20_000_000, EmployeeCount: 15, State: "MH"}
	first := ApplicableCompliances(p)
	second := ApplicableCompliances(p)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same profile must produce identical drafts, justifications included")
	}
}
