package repository

import (
	"perform_backend/internal/model"

	"gorm.io/gorm"
)

type TeamRepository struct {
	DB *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{DB: db}
}

func (r *TeamRepository) Create(t *model.Team) error {
	return r.DB.Create(t).Error
}

func (r *TeamRepository) FindByID(id, tenantID string) (*model.Team, error) {
	var t model.Team
	err := r.DB.Where("id = ? AND tenant_id = ?", id, tenantID).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FindByIDs loads a distinct id set in a single query.
func (r *TeamRepository) FindByIDs(ids []string, tenantID string) ([]model.Team, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var ts []model.Team
	err := r.DB.Where("id IN ? AND tenant_id = ?", ids, tenantID).Find(&ts).Error
	return ts, err
}

func (r *TeamRepository) ListByCompany(companyID, tenantID string) ([]model.Team, error) {
	var ts []model.Team
	err := r.DB.Where("company_id = ? AND tenant_id = ?", companyID, tenantID).
		Order("name asc").
		Find(&ts).Error
	return ts, err
}

func (r *TeamRepository) Update(t *model.Team) error {
	return r.DB.Save(t).Error
}

func (r *TeamRepository) Delete(id, tenantID string) error {
	return r.DB.Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&model.Team{}).Error
}
