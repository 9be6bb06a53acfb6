package repository

import (
	"perform_backend/internal/model"

	"gorm.io/gorm"
)

type AssessmentMatrixRepository struct {
	DB *gorm.DB
}

func NewAssessmentMatrixRepository(db *gorm.DB) *AssessmentMatrixRepository {
	return &AssessmentMatrixRepository{DB: db}
}

func (r *AssessmentMatrixRepository) Create(m *model.AssessmentMatrix) error {
	return r.DB.Create(m).Error
}

func (r *AssessmentMatrixRepository) FindByID(id, tenantID string) (*model.AssessmentMatrix, error) {
	var m model.AssessmentMatrix
	err := r.DB.Where("id = ? AND tenant_id = ?", id, tenantID).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *AssessmentMatrixRepository) Save(m *model.AssessmentMatrix) (*model.AssessmentMatrix, error) {
	if err := r.DB.Save(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (r *AssessmentMatrixRepository) ListByPerformanceCycle(cycleID, tenantID string) ([]model.AssessmentMatrix, error) {
	var ms []model.AssessmentMatrix
	err := r.DB.Where("performance_cycle_id = ? AND tenant_id = ?", cycleID, tenantID).
		Order("created_at asc").
		Find(&ms).Error
	return ms, err
}

func (r *AssessmentMatrixRepository) Delete(id, tenantID string) error {
	return r.DB.Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&model.AssessmentMatrix{}).Error
}
