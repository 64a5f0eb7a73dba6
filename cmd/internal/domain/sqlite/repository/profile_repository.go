package repository

import (
	"errors"

	"gorm.io/gorm"

	"compliancehub/cmd/internal/domain/entity"
)

type DefaultProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *DefaultProfileRepository {
	return &DefaultProfileRepository{db: db}
}

func (r *DefaultProfileRepository) FindByID(id int64) (*entity.Profile, error) {
	var profile entity.Profile
	err := r.db.First(&profile, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *DefaultProfileRepository) FindBySub(sub string) (*entity.Profile, error) {
	var profile entity.Profile
	err := r.db.Where("sub_uuid = ?", sub).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *DefaultProfileRepository) FindByEmail(email string) (*entity.Profile, error) {
	var profile entity.Profile
	err := r.db.Where("email = ?", email).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *DefaultProfileRepository) FindAllByCompany(companyID int64) ([]*entity.Profile, error) {
	var profiles []*entity.Profile
	err := r.db.
		Where("company_id = ?", companyID).
		Order("created_at ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *DefaultProfileRepository) ExistsByEmail(email string) (bool, error) {
	var exists int
	err := r.db.
		Raw("SELECT EXISTS(SELECT 1 FROM profiles WHERE email = ?)", email).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}

func (r *DefaultProfileRepository) Save(profile *entity.Profile) error {
	return r.db.Save(profile).Error
}
