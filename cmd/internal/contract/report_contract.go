package contract

// FieldCount is one slice of a chart: a field value and how many records
// carry it. Order follows first occurrence in the scanned records.
type FieldCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type ReportsResponse struct {
	ComplianceByType   []FieldCount `json:"compliance_by_type"`
	ComplianceByStatus []FieldCount `json:"compliance_by_status"`
	TaskByStatus       []FieldCount `json:"task_by_status"`
}

// CalendarGroup is one calendar date and every compliance due on it.
type CalendarGroup struct {
	Date        string                `json:"date"`
	Compliances []*ComplianceResponse `json:"compliances"`
}

type CompanyStats struct {
	TotalCompliances int     `json:"total_compliances"`
	DueThisWeek      int     `json:"due_this_week"`
	Overdue          int     `json:"overdue"`
	CompletionRate   float64 `json:"completion_rate"`
}

type DashboardResponse struct {
	Stats             CompanyStats          `json:"stats"`
	UpcomingDeadlines []*ComplianceResponse `json:"upcoming_deadlines"`
	RecentTasks       []*TaskResponse       `json:"recent_tasks"`
}
