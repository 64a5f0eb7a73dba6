package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"compliancehub/cmd/internal/contract"
	"compliancehub/cmd/internal/domain/entity"
	"compliancehub/cmd/internal/domain/policy"
	"compliancehub/cmd/internal/utils"
	"compliancehub/cmd/internal/utils/apierror"
	"compliancehub/cmd/internal/utils/uid"
)

type TaskRepository interface {
	FindAllByCompliance(complianceID int64) ([]*entity.Task, error)
	FindAllByCompany(companyID int64) ([]*entity.Task, error)
	FindByID(id int64) (*entity.Task, error)
	Save(task *entity.Task) error
	Delete(task *entity.Task) error
}

type NotificationWriter interface {
	Save(notif *entity.Notification) error
}

type TaskService struct {
	TaskRepo       TaskRepository
	ComplianceRepo ComplianceRepository
	NotifRepo      NotificationWriter
	Validate       *validator.Validate
	Policy         *policy.MemberPolicy
}

func NewTaskService(taskRepo TaskRepository, complianceRepo ComplianceRepository, notifRepo NotificationWriter, validate *validator.Validate, memberPolicy *policy.MemberPolicy) *TaskService {
	return &TaskService{
		TaskRepo:       taskRepo,
		ComplianceRepo: complianceRepo,
		NotifRepo:      notifRepo,
		Validate:       validate,
		Policy:         memberPolicy,
	}
}

func (s *TaskService) GetTasks(actor *entity.Profile, complianceID int64) ([]*contract.TaskResponse, apierror.ErrorResponse) {
	if _, perr := s.fetchCompliance(actor, complianceID); perr != nil {
		return nil, perr
	}

	tasks, err := s.TaskRepo.FindAllByCompliance(complianceID)
	if err != nil {
		log.Errorf("failed to fetch tasks of compliance %d: %v", complianceID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.TaskResponse, len(tasks))
	for i, t := range tasks {
		resp[i] = toTaskResponse(t)
	}
	return resp, nil
}

func (s *TaskService) CreateTask(actor *entity.Profile, complianceID int64, req *contract.TaskRequest) (*contract.TaskResponse, apierror.ErrorResponse) {
	if perr := s.Policy.CanWrite(actor); perr != nil {
		return nil, perr
	}
	if _, perr := s.fetchCompliance(actor, complianceID); perr != nil {
		return nil, perr
	}

	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	status := entity.TaskStatusPending
	if req.Status != "" {
		status = entity.TaskStatus(req.Status)
	}
	priority := entity.TaskPriorityMedium
	if req.Priority != "" {
		priority = entity.TaskPriority(req.Priority)
	}

	now := utils.NowUTC()
	task := &entity.Task{
		ID:           uid.Generate(),
		ComplianceID: complianceID,
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      req.DueDate,
		AssignedToID: req.AssignedToID,
		Status:       status,
		Priority:     priority,
		Checklist:    toChecklist(req.Checklist),
		Notes:        req.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if task.Status == entity.TaskStatusCompleted {
		task.CompletedAt = &now
		task.CompletedByID = &actor.ID
	}

	if err := s.TaskRepo.Save(task); err != nil {
		log.Errorf("failed to create task under compliance %d: %v", complianceID, err)
		return nil, apierror.InternalServerError
	}

	s.notifyAssignment(task, actor)
	return toTaskResponse(task), nil
}

func (s *TaskService) UpdateTask(actor *entity.Profile, id int64, req *contract.UpdateTaskRequest) (*contract.TaskResponse, apierror.ErrorResponse) {
	if perr := s.Policy.CanWrite(actor); perr != nil {
		return nil, perr
	}

	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	task, perr := s.fetchTask(actor, id)
	if perr != nil {
		return nil, perr
	}

	previousAssignee := task.AssignedToID
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.AssignedToID != nil {
		task.AssignedToID = req.AssignedToID
	}
	if req.Priority != nil {
		task.Priority = entity.TaskPriority(*req.Priority)
	}
	if req.Checklist != nil {
		task.Checklist = toChecklist(req.Checklist)
	}
	if req.Notes != nil {
		task.Notes = *req.Notes
	}

	now := utils.NowUTC()
	if req.Status != nil {
		next := entity.TaskStatus(*req.Status)
		// Completion metadata lives and dies with the completed status.
		if next == entity.TaskStatusCompleted && task.Status != entity.TaskStatusCompleted {
			task.CompletedAt = &now
			task.CompletedByID = &actor.ID
		} else if next != entity.TaskStatusCompleted {
			task.CompletedAt = nil
			task.CompletedByID = nil
		}
		task.Status = next
	}

	task.UpdatedAt = now
	if err := s.TaskRepo.Save(task); err != nil {
		log.Errorf("failed to update task %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if req.AssignedToID != nil && (previousAssignee == nil || *previousAssignee != *req.AssignedToID) {
		s.notifyAssignment(task, actor)
	}
	return toTaskResponse(task), nil
}

func (s *TaskService) DeleteTask(actor *entity.Profile, id int64) apierror.ErrorResponse {
	if perr := s.Policy.CanWrite(actor); perr != nil {
		return perr
	}

	task, perr := s.fetchTask(actor, id)
	if perr != nil {
		return perr
	}

	if err := s.TaskRepo.Delete(task); err != nil {
		log.Errorf("failed to delete task %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *TaskService) fetchCompliance(actor *entity.Profile, complianceID int64) (*entity.Compliance, apierror.ErrorResponse) {
	companyID, perr := s.Policy.CompanyScope(actor)
	if perr != nil {
		return nil, perr
	}

	compliance, err := s.ComplianceRepo.FindByID(complianceID)
	if err != nil {
		log.Errorf("failed to fetch compliance %d: %v", complianceID, err)
		return nil, apierror.InternalServerError
	}

	if compliance == nil || compliance.CompanyID != companyID {
		return nil, apierror.NotFoundError
	}
	return compliance, nil
}

func (s *TaskService) fetchTask(actor *entity.Profile, id int64) (*entity.Task, apierror.ErrorResponse) {
	task, err := s.TaskRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch task %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if task == nil {
		return nil, apierror.NotFoundError
	}

	// Scope through the parent compliance.
	if _, perr := s.fetchCompliance(actor, task.ComplianceID); perr != nil {
		return nil, apierror.NotFoundError
	}
	return task, nil
}

func (s *TaskService) notifyAssignment(task *entity.Task, actor *entity.Profile) {
	if task.AssignedToID == nil || *task.AssignedToID == actor.ID {
		return
	}

	notif := &entity.Notification{
		ID:           uid.Generate(),
		ProfileID:    *task.AssignedToID,
		Type:         entity.NotifTaskAssigned,
		Title:        "Task assigned",
		Message:      actor.Name + " assigned you the task \"" + task.Title + "\"",
		ComplianceID: &task.ComplianceID,
		TaskID:       &task.ID,
		DueDate:      task.DueDate,
		CreatedAt:    utils.NowUTC(),
	}

	if err := s.NotifRepo.Save(notif); err != nil {
		// The assignment itself succeeded; only the notice was lost.
		log.Errorf("failed to notify assignee %d of task %d: %v", *task.AssignedToID, task.ID, err)
	}
}

func toChecklist(items []contract.ChecklistItemPayload) []entity.ChecklistItem {
	if items == nil {
		return []entity.ChecklistItem{}
	}

	checklist := make([]entity.ChecklistItem, len(items))
	for i, item := range items {
		id := item.ID
		if id == "" {
			id = uuid.NewString()
		}
		checklist[i] = entity.ChecklistItem{ID: id, Text: item.Text, Completed: item.Completed}
	}
	return checklist
}

func toTaskResponse(t *entity.Task) *contract.TaskResponse {
	checklist := make([]contract.ChecklistItemPayload, len(t.Checklist))
	for i, item := range t.Checklist {
		checklist[i] = contract.ChecklistItemPayload{ID: item.ID, Text: item.Text, Completed: item.Completed}
	}

	resp := &contract.TaskResponse{
		ID:           t.ID,
		ComplianceID: t.ComplianceID,
		Title:        t.Title,
		Description:  t.Description,
		DueDate:      t.DueDate,
		AssignedToID: t.AssignedToID,
		Status:       string(t.Status),
		Priority:     string(t.Priority),
		Checklist:    checklist,
		Notes:        t.Notes,
		CompletedBy:  t.CompletedByID,
		CreatedAt:    utils.FormatEpoch(t.CreatedAt),
		UpdatedAt:    utils.FormatEpoch(t.UpdatedAt),
	}
	if t.CompletedAt != nil {
		resp.CompletedAt = utils.FormatEpoch(*t.CompletedAt)
	}
	return resp
}
