package service

import (
	"testing"

	"compliancehub/cmd/internal/contract"
)

func TestCountByFieldKeepsFirstSeenOrder(t *testing.T) {
	items := []string{"tax", "corporate", "tax", "labor", "corporate", "tax"}
	counts := CountByField(items, func(s string) string { return s })

	want := []contract.FieldCount{
		{Name: "tax", Value: 3},
		{Name: "corporate", Value: 2},
		{Name: "labor", Value: 1},
	}
	if len(counts) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(counts))
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("bucket %d: got %+v, want %+v", i, counts[i], want[i])
		}
	}
}

func TestCountByFieldEmptyInput(t *testing.T) {
	counts := CountByField([]int{}, func(int) string { return "x" })
	if len(counts) != 0 {
		t.Fatalf("expected no buckets, got %d", len(counts))
	}
}

func TestGroupByDueDateSortsAndPreservesOrderWithinGroups(t *testing.T) {
	a := &contract.ComplianceResponse{ID: 1, NextDueDate: "2025-02-15"}
	b := &contract.ComplianceResponse{ID: 2, NextDueDate: "2025-01-11"}
	c := &contract.ComplianceResponse{ID: 3, NextDueDate: "2025-02-15"}

	groups := GroupByDueDate([]*contract.ComplianceResponse{a, b, c})
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	if groups[0].Date != "2025-01-11" || groups[1].Date != "2025-02-15" {
		t.Fatalf("groups not sorted ascending: %s, %s", groups[0].Date, groups[1].Date)
	}

	shared := groups[1].Compliances
	if len(shared) != 2 || shared[0].ID != 1 || shared[1].ID != 3 {
		t.Fatalf("shared-date group must preserve input order, got %+v", shared)
	}
}

func TestGroupByDueDateEmptyInput(t *testing.T) {
	groups := GroupByDueDate(nil)
	if len(groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(groups))
	}
}
