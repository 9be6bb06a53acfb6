package repository

import (
	"perform_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) FindByID(id, tenantID string) (*model.Question, error) {
	var q model.Question
	err := r.DB.Where("id = ? AND tenant_id = ?", id, tenantID).First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// ListByMatrix returns the matrix's questions in canonical order: the
// explicit question_order column ascending, id as a stable tiebreak.
func (r *QuestionRepository) ListByMatrix(matrixID, tenantID string) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("assessment_matrix_id = ? AND tenant_id = ?", matrixID, tenantID).
		Order("question_order asc, id asc").
		Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) CountByMatrix(matrixID, tenantID string) (int64, error) {
	var total int64
	err := r.DB.Model(&model.Question{}).
		Where("assessment_matrix_id = ? AND tenant_id = ?", matrixID, tenantID).
		Count(&total).Error
	return total, err
}

func (r *QuestionRepository) Update(q *model.Question) error {
	return r.DB.Save(q).Error
}

func (r *QuestionRepository) Delete(id, tenantID string) error {
	return r.DB.Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&model.Question{}).Error
}
