package repository

import (
	"errors"

	"gorm.io/gorm"

	"compliancehub/cmd/internal/domain/entity"
)

type DefaultTaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *DefaultTaskRepository {
	return &DefaultTaskRepository{db: db}
}

func (r *DefaultTaskRepository) FindAllByCompliance(complianceID int64) ([]*entity.Task, error) {
	var tasks []*entity.Task
	err := r.db.
		Where("compliance_id = ?", complianceID).
		Order("due_date ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindAllByCompany joins through compliances; tasks carry no direct
// company reference.
func (r *DefaultTaskRepository) FindAllByCompany(companyID int64) ([]*entity.Task, error) {
	var tasks []*entity.Task
	err := r.db.
		Joins("JOIN compliances ON compliances.id = tasks.compliance_id").
		Where("compliances.company_id = ?", companyID).
		Order("tasks.due_date ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *DefaultTaskRepository) FindByID(id int64) (*entity.Task, error) {
	var task entity.Task
	err := r.db.First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *DefaultTaskRepository) Save(task *entity.Task) error {
	return r.db.Save(task).Error
}

func (r *DefaultTaskRepository) Delete(task *entity.Task) error {
	return r.db.Delete(task).Error
}
