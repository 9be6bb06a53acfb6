package repository

import (
	"perform_backend/internal/model"

	"gorm.io/gorm"
)

type EmployeeAssessmentRepository struct {
	DB *gorm.DB
}

func NewEmployeeAssessmentRepository(db *gorm.DB) *EmployeeAssessmentRepository {
	return &EmployeeAssessmentRepository{DB: db}
}

func (r *EmployeeAssessmentRepository) Create(ea *model.EmployeeAssessment) error {
	return r.DB.Create(ea).Error
}

func (r *EmployeeAssessmentRepository) FindByID(id, tenantID string) (*model.EmployeeAssessment, error) {
	var ea model.EmployeeAssessment
	err := r.DB.Where("id = ? AND tenant_id = ?", id, tenantID).First(&ea).Error
	if err != nil {
		return nil, err
	}
	return &ea, nil
}

// Save upserts and returns the persisted row.
func (r *EmployeeAssessmentRepository) Save(ea *model.EmployeeAssessment) (*model.EmployeeAssessment, error) {
	if err := r.DB.Save(ea).Error; err != nil {
		return nil, err
	}
	return ea, nil
}

func (r *EmployeeAssessmentRepository) ListByMatrix(matrixID, tenantID string) ([]model.EmployeeAssessment, error) {
	var eas []model.EmployeeAssessment
	err := r.DB.Where("assessment_matrix_id = ? AND tenant_id = ?", matrixID, tenantID).
		Order("created_at asc, id asc").
		Find(&eas).Error
	return eas, err
}

// ExistsByMatrixAndEmail backs the enrollment uniqueness check.
func (r *EmployeeAssessmentRepository) ExistsByMatrixAndEmail(matrixID, email, tenantID string) (bool, error) {
	var total int64
	err := r.DB.Model(&model.EmployeeAssessment{}).
		Where("assessment_matrix_id = ? AND employee_email = ? AND tenant_id = ?", matrixID, email, tenantID).
		Count(&total).Error
	return total > 0, err
}
