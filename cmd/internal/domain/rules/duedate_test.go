package rules

import (
	"testing"
	"time"

	"compliancehub/cmd/internal/domain/entity"
)

func day(value string) time.Time {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNextDueDate(t *testing.T) {
	cases := []struct {
		freq entity.Frequency
		now  string
		want string
	}{
		{entity.FrequencyMonthly, "2024-01-20", "2024-02-11"},
		{entity.FrequencyMonthly, "2024-12-05", "2025-01-11"}, // year rollover
		{entity.FrequencyQuarterly, "2024-01-01", "2024-04-15"},
		{entity.FrequencyQuarterly, "2024-11-02", "2025-02-15"},
		{entity.FrequencyAnnual, "2024-06-01", "2025-03-30"},
		{entity.Frequency("unknown"), "2024-01-01", "2024-02-15"},
		{entity.FrequencyWeekly, "2024-12-31", "2025-01-15"}, // fallback branch
	}

	for _, c := range cases {
		got := NextDueDate(c.freq, day(c.now)).Format(DateLayout)
		if got != c.want {
			t.Errorf("NextDueDate(%s, %s) = %s, want %s", c.freq, c.now, got, c.want)
		}
	}
}
