package entity

import "testing"

func TestEffectiveStatus(t *testing.T) {
	cases := []struct {
		name    string
		status  ComplianceStatus
		dueDate string
		today   string
		want    ComplianceStatus
	}{
		{"pending past due reads overdue", ComplianceStatusPending, "2025-01-10", "2025-01-11", ComplianceStatusOverdue},
		{"in progress past due reads overdue", ComplianceStatusInProgress, "2025-01-10", "2025-01-11", ComplianceStatusOverdue},
		{"completed never reads overdue", ComplianceStatusCompleted, "2025-01-10", "2025-01-11", ComplianceStatusCompleted},
		{"due today is not overdue", ComplianceStatusPending, "2025-01-11", "2025-01-11", ComplianceStatusPending},
		{"due in the future keeps its status", ComplianceStatusPending, "2025-01-12", "2025-01-11", ComplianceStatusPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Compliance{Status: tc.status, NextDueDate: tc.dueDate}
			if got := c.EffectiveStatus(tc.today); got != tc.want {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}
