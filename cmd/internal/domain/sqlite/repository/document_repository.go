package repository

import (
	"errors"

	"gorm.io/gorm"

	"compliancehub/cmd/internal/domain/entity"
)

type DefaultDocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DefaultDocumentRepository {
	return &DefaultDocumentRepository{db: db}
}

func (r *DefaultDocumentRepository) FindAllByCompany(companyID int64) ([]*entity.Document, error) {
	var docs []*entity.Document
	err := r.db.
		Where("company_id = ?", companyID).
		Order("uploaded_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *DefaultDocumentRepository) FindByID(id int64) (*entity.Document, error) {
	var doc entity.Document
	err := r.db.First(&doc, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *DefaultDocumentRepository) Save(doc *entity.Document) error {
	return r.db.Save(doc).Error
}

func (r *DefaultDocumentRepository) Delete(doc *entity.Document) error {
	return r.db.Delete(doc).Error
}
