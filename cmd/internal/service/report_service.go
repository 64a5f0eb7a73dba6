package service

import (
	"sort"
	"time"

	"github.com/labstack/gommon/log"

	"compliancehub/cmd/internal/contract"
	"compliancehub/cmd/internal/domain/entity"
	"compliancehub/cmd/internal/domain/policy"
	"compliancehub/cmd/internal/domain/sqlite/repository"
	"compliancehub/cmd/internal/utils"
	"compliancehub/cmd/internal/utils/apierror"
)

const (
	dashboardUpcomingLimit = 5
	dashboardTasksLimit    = 5
)

// ReportService aggregates compliances and tasks into the dashboard,
// calendar and report screens. Everything is computed per request; nothing
// here writes.
type ReportService struct {
	ComplianceRepo ComplianceRepository
	TaskRepo       TaskRepository
	Policy         *policy.MemberPolicy
}

func NewReportService(complianceRepo ComplianceRepository, taskRepo TaskRepository, memberPolicy *policy.MemberPolicy) *ReportService {
	return &ReportService{
		ComplianceRepo: complianceRepo,
		TaskRepo:       taskRepo,
		Policy:         memberPolicy,
	}
}

func (s *ReportService) GetDashboard(actor *entity.Profile) (*contract.DashboardResponse, apierror.ErrorResponse) {
	compliances, tasks, perr := s.fetchAll(actor)
	if perr != nil {
		return nil, perr
	}

	today := utils.Today()
	weekEnd := time.Now().UTC().AddDate(0, 0, 7).Format(utils.DateLayout)

	stats := contract.CompanyStats{TotalCompliances: len(compliances)}
	completed := 0
	upcoming := []*contract.ComplianceResponse{}
	for _, c := range compliances {
		effective := c.EffectiveStatus(today)
		if effective == entity.ComplianceStatusOverdue {
			stats.Overdue++
		}
		if c.Status == entity.ComplianceStatusCompleted {
			completed++
		}
		if c.NextDueDate >= today && c.NextDueDate < weekEnd && c.Status != entity.ComplianceStatusCompleted {
			stats.DueThisWeek++
		}
		if c.Status != entity.ComplianceStatusCompleted && c.NextDueDate >= today && len(upcoming) < dashboardUpcomingLimit {
			upcoming = append(upcoming, toComplianceResponse(c, today))
		}
	}
	if len(compliances) > 0 {
		stats.CompletionRate = float64(completed) / float64(len(compliances)) * 100
	}

	sort.SliceStable(tasks, func(a, b int) bool {
		return tasks[a].CreatedAt > tasks[b].CreatedAt
	})
	if len(tasks) > dashboardTasksLimit {
		tasks = tasks[:dashboardTasksLimit]
	}
	recent := make([]*contract.TaskResponse, len(tasks))
	for i, t := range tasks {
		recent[i] = toTaskResponse(t)
	}

	return &contract.DashboardResponse{
		Stats:             stats,
		UpcomingDeadlines: upcoming,
		RecentTasks:       recent,
	}, nil
}

// GetCalendar returns every compliance of the company grouped by due date.
func (s *ReportService) GetCalendar(actor *entity.Profile) ([]*contract.CalendarGroup, apierror.ErrorResponse) {
	compliances, perr := s.fetchCompliances(actor)
	if perr != nil {
		return nil, perr
	}

	today := utils.Today()
	resp := make([]*contract.ComplianceResponse, len(compliances))
	for i, c := range compliances {
		resp[i] = toComplianceResponse(c, today)
	}
	return GroupByDueDate(resp), nil
}

func (s *ReportService) GetReports(actor *entity.Profile) (*contract.ReportsResponse, apierror.ErrorResponse) {
	compliances, tasks, perr := s.fetchAll(actor)
	if perr != nil {
		return nil, perr
	}

	today := utils.Today()
	return &contract.ReportsResponse{
		ComplianceByType: CountByField(compliances, func(c *entity.Compliance) string {
			return string(c.Type)
		}),
		ComplianceByStatus: CountByField(compliances, func(c *entity.Compliance) string {
			return string(c.EffectiveStatus(today))
		}),
		TaskByStatus: CountByField(tasks, func(t *entity.Task) string {
			return string(t.Status)
		}),
	}, nil
}

func (s *ReportService) fetchCompliances(actor *entity.Profile) ([]*entity.Compliance, apierror.ErrorResponse) {
	companyID, perr := s.Policy.CompanyScope(actor)
	if perr != nil {
		return nil, perr
	}

	compliances, err := s.ComplianceRepo.FindAllByCompany(companyID, repository.ComplianceFilter{})
	if err != nil {
		log.Errorf("failed to fetch compliances for company %d: %v", companyID, err)
		return nil, apierror.InternalServerError
	}
	return compliances, nil
}

func (s *ReportService) fetchAll(actor *entity.Profile) ([]*entity.Compliance, []*entity.Task, apierror.ErrorResponse) {
	companyID, perr := s.Policy.CompanyScope(actor)
	if perr != nil {
		return nil, nil, perr
	}

	compliances, err := s.ComplianceRepo.FindAllByCompany(companyID, repository.ComplianceFilter{})
	if err != nil {
		log.Errorf("failed to fetch compliances for company %d: %v", companyID, err)
		return nil, nil, apierror.InternalServerError
	}

	tasks, err := s.TaskRepo.FindAllByCompany(companyID)
	if err != nil {
		log.Errorf("failed to fetch tasks for company %d: %v", companyID, err)
		return nil, nil, apierror.InternalServerError
	}
	return compliances, tasks, nil
}
