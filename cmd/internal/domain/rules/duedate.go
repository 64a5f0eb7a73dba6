package rules

import (
	"time"

	"compliancehub/cmd/internal/domain/entity"
)

// DateLayout is the calendar-date format used across the API and storage.
const DateLayout = "2006-01-02"

// NextDueDate projects the next occurrence for a filing frequency, anchored
// at now. Unrecognized frequencies fall back to the 15th of next month
// rather than failing. Month/year overflow is normalized by time.Date, so
// December anchors roll into January correctly.
func NextDueDate(freq entity.Frequency, now time.Time) time.Time {
	y, m, _ := now.Date()

	switch freq {
	case entity.FrequencyMonthly:
		return time.Date(y, m+1, 11, 0, 0, 0, 0, time.UTC)
	case entity.FrequencyQuarterly:
		return time.Date(y, m+3, 15, 0, 0, 0, 0, time.UTC)
	case entity.FrequencyAnnual:
		return time.Date(y+1, time.March, 30, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(y, m+1, 15, 0, 0, 0, 0, time.UTC)
	}
}
