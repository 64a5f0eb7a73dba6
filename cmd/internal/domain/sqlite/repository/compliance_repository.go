package repository

import (
	"errors"

	"gorm.io/gorm"

	"compliancehub/cmd/internal/domain/entity"
)

// ComplianceFilter narrows a company-scoped listing. Zero values mean
// "no constraint".
type ComplianceFilter struct {
	Status entity.ComplianceStatus
	Type   entity.ComplianceType
	Search string
}

type DefaultComplianceRepository struct {
	db *gorm.DB
}

func NewComplianceRepository(db *gorm.DB) *DefaultComplianceRepository {
	return &DefaultComplianceRepository{db: db}
}

func (r *DefaultComplianceRepository) FindAllByCompany(companyID int64, filter ComplianceFilter) ([]*entity.Compliance, error) {
	q := r.db.Where("company_id = ?", companyID)

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Search != "" {
		q = q.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	var compliances []*entity.Compliance
	err := q.Order("next_due_date ASC").Find(&compliances).Error
	if err != nil {
		return nil, err
	}
	return compliances, nil
}

// FindAllActive returns active compliances across all companies, for the
// reminder scheduler.
func (r *DefaultComplianceRepository) FindAllActive() ([]*entity.Compliance, error) {
	var compliances []*entity.Compliance
	err := r.db.
		Where("is_active = ?", true).
		Order("next_due_date ASC").
		Find(&compliances).Error
	if err != nil {
		return nil, err
	}
	return compliances, nil
}

func (r *DefaultComplianceRepository) FindByID(id int64) (*entity.Compliance, error) {
	var compliance entity.Compliance
	err := r.db.First(&compliance, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &compliance, nil
}

func (r *DefaultComplianceRepository) Save(compliance *entity.Compliance) error {
	return r.db.Save(compliance).Error
}

func (r *DefaultComplianceRepository) Delete(compliance *entity.Compliance) error {
	return r.db.Delete(compliance).Error
}
