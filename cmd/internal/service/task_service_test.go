package service

import (
	"testing"

	"gorm.io/gorm"

	"compliancehub/cmd/internal/contract"
	"compliancehub/cmd/internal/domain/entity"
	"compliancehub/cmd/internal/domain/policy"
	"compliancehub/cmd/internal/domain/sqlite/repository"
	"compliancehub/cmd/internal/utils/apierror"
	"compliancehub/cmd/internal/utils/uid"
)

func newTaskService(t *testing.T) (*TaskService, *gorm.DB) {
	t.Helper()
	uid.Init(1)

	db := newTestDB(t)
	return NewTaskService(
		repository.NewTaskRepository(db),
		repository.NewComplianceRepository(db),
		repository.NewNotificationRepository(db),
		newTestValidator(t),
		policy.NewMemberPolicy(),
	), db
}

func seedCompliance(t *testing.T, db *gorm.DB, companyID int64) *entity.Compliance {
	t.Helper()

	compliance := &entity.Compliance{
		ID:             uid.Generate(),
		CompanyID:      companyID,
		Name:           "Board Meetings",
		RegulatoryBody: entity.BodyMCA,
		Type:           entity.TypeCorporate,
		Frequency:      entity.FrequencyQuarterly,
		Priority:       entity.PriorityMedium,
		NextDueDate:    "2025-06-15",
		Status:         entity.ComplianceStatusPending,
		IsActive:       true,
	}
	if err := db.Create(compliance).Error; err != nil {
		t.Fatalf("failed to seed compliance: %v", err)
	}
	return compliance
}

func memberOf(companyID int64, role entity.Role) *entity.Profile {
	return &entity.Profile{
		ID:        uid.Generate(),
		SubUUID:   "sub-" + string(role),
		CompanyID: &companyID,
		Name:      "Member",
		Email:     string(role) + "@example.com",
		Role:      role,
	}
}

func TestCompletionMetadataFollowsStatus(t *testing.T) {
	svc, db := newTaskService(t)
	compliance := seedCompliance(t, db, 100)
	actor := memberOf(100, entity.RoleOwner)

	task, apierr := svc.CreateTask(actor, compliance.ID, &contract.TaskRequest{
		Title:   "Prepare agenda",
		DueDate: "2025-06-01",
	})
	if apierr != nil {
		t.Fatalf("failed to create task: %v", apierr)
	}
	if task.CompletedAt != "" || task.CompletedBy != nil {
		t.Fatal("new pending task must carry no completion metadata")
	}

	completed := "completed"
	task, apierr = svc.UpdateTask(actor, task.ID, &contract.UpdateTaskRequest{Status: &completed})
	if apierr != nil {
		t.Fatalf("failed to complete task: %v", apierr)
	}
	if task.CompletedAt == "" || task.CompletedBy == nil || *task.CompletedBy != actor.ID {
		t.Fatalf("completion must record time and actor, got at=%q by=%v", task.CompletedAt, task.CompletedBy)
	}

	pending := "pending"
	task, apierr = svc.UpdateTask(actor, task.ID, &contract.UpdateTaskRequest{Status: &pending})
	if apierr != nil {
		t.Fatalf("failed to reopen task: %v", apierr)
	}
	if task.CompletedAt != "" || task.CompletedBy != nil {
		t.Fatal("reopening must clear completion metadata")
	}
}

func TestViewOnlyCannotWriteTasks(t *testing.T) {
	svc, db := newTaskService(t)
	compliance := seedCompliance(t, db, 100)
	viewer := memberOf(100, entity.RoleViewOnly)

	_, apierr := svc.CreateTask(viewer, compliance.ID, &contract.TaskRequest{
		Title:   "Prepare agenda",
		DueDate: "2025-06-01",
	})
	if apierr == nil || apierr.Code() != 403 {
		t.Fatalf("expected 403 for view-only member, got %v", apierr)
	}
}

func TestTasksOfOtherCompaniesAreHidden(t *testing.T) {
	svc, db := newTaskService(t)
	compliance := seedCompliance(t, db, 100)
	owner := memberOf(100, entity.RoleOwner)

	task, apierr := svc.CreateTask(owner, compliance.ID, &contract.TaskRequest{
		Title:   "Prepare agenda",
		DueDate: "2025-06-01",
	})
	if apierr != nil {
		t.Fatalf("failed to create task: %v", apierr)
	}

	outsider := memberOf(200, entity.RoleOwner)
	title := "hijacked"
	if _, apierr = svc.UpdateTask(outsider, task.ID, &contract.UpdateTaskRequest{Title: &title}); apierr != apierror.NotFoundError {
		t.Fatalf("expected 404 for foreign task, got %v", apierr)
	}
	if apierr = svc.DeleteTask(outsider, task.ID); apierr != apierror.NotFoundError {
		t.Fatalf("expected 404 for foreign delete, got %v", apierr)
	}
}

func TestAssignmentNotifiesAssignee(t *testing.T) {
	svc, db := newTaskService(t)
	compliance := seedCompliance(t, db, 100)
	owner := memberOf(100, entity.RoleOwner)
	colleague := memberOf(100, entity.RoleComplianceOfficer)

	_, apierr := svc.CreateTask(owner, compliance.ID, &contract.TaskRequest{
		Title:        "File return",
		DueDate:      "2025-06-01",
		AssignedToID: &colleague.ID,
	})
	if apierr != nil {
		t.Fatalf("failed to create task: %v", apierr)
	}

	var count int64
	if err := db.Model(&entity.Notification{}).Where("profile_id = ?", colleague.ID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count notifications: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one assignment notification, got %d", count)
	}

	// Self-assignment stays silent.
	_, apierr = svc.CreateTask(owner, compliance.ID, &contract.TaskRequest{
		Title:        "Review minutes",
		DueDate:      "2025-06-02",
		AssignedToID: &owner.ID,
	})
	if apierr != nil {
		t.Fatalf("failed to create self-assigned task: %v", apierr)
	}

	if err := db.Model(&entity.Notification{}).Where("profile_id = ?", owner.ID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count notifications: %v", err)
	}
	if count != 0 {
		t.Fatalf("self-assignment must not notify, got %d notifications", count)
	}
}
