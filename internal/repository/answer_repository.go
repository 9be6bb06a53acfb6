package repository

import (
	"perform_backend/internal/model"

	"gorm.io/gorm"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

// Save upserts an answer and returns the persisted row.
func (r *AnswerRepository) Save(a *model.Answer) (*model.Answer, error) {
	if err := r.DB.Save(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AnswerRepository) FindByAssessmentAndQuestion(employeeAssessmentID, questionID string) (*model.Answer, error) {
	var a model.Answer
	err := r.DB.Where("employee_assessment_id = ? AND question_id = ?", employeeAssessmentID, questionID).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AnswerRepository) ListByEmployeeAssessment(employeeAssessmentID string) ([]model.Answer, error) {
	var as []model.Answer
	err := r.DB.Where("employee_assessment_id = ?", employeeAssessmentID).Find(&as).Error
	return as, err
}

// ListAnsweredQuestionIDs returns the ids of all questions the assessment has
// an answer for.
func (r *AnswerRepository) ListAnsweredQuestionIDs(employeeAssessmentID string) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.Answer{}).
		Where("employee_assessment_id = ?", employeeAssessmentID).
		Pluck("question_id", &ids).Error
	return ids, err
}

// ListByEmployeeAssessmentIDs loads answers for a whole population in one
// query. Used by the analytics aggregator; never called per assessment.
func (r *AnswerRepository) ListByEmployeeAssessmentIDs(employeeAssessmentIDs []string) ([]model.Answer, error) {
	if len(employeeAssessmentIDs) == 0 {
		return nil, nil
	}
	var as []model.Answer
	err := r.DB.Where("employee_assessment_id IN ?", employeeAssessmentIDs).Find(&as).Error
	return as, err
}

func (r *AnswerRepository) CountByEmployeeAssessment(employeeAssessmentID string) (int64, error) {
	var total int64
	err := r.DB.Model(&model.Answer{}).
		Where("employee_assessment_id = ?", employeeAssessmentID).
		Count(&total).Error
	return total, err
}
