package service

import (
	"context"

	"perform_backend/internal/model"
)

// Store contracts consumed by the services. The gorm repositories in
// internal/repository satisfy them; tests substitute in-memory fakes.

type QuestionStore interface {
	Create(q *model.Question) error
	FindByID(id, tenantID string) (*model.Question, error)
	ListByMatrix(matrixID, tenantID string) ([]model.Question, error)
	Update(q *model.Question) error
	Delete(id, tenantID string) error
}

type AnswerStore interface {
	Save(a *model.Answer) (*model.Answer, error)
	FindByAssessmentAndQuestion(employeeAssessmentID, questionID string) (*model.Answer, error)
	ListByEmployeeAssessment(employeeAssessmentID string) ([]model.Answer, error)
	ListAnsweredQuestionIDs(employeeAssessmentID string) ([]string, error)
	ListByEmployeeAssessmentIDs(employeeAssessmentIDs []string) ([]model.Answer, error)
}

type EmployeeAssessmentStore interface {
	Create(ea *model.EmployeeAssessment) error
	FindByID(id, tenantID string) (*model.EmployeeAssessment, error)
	Save(ea *model.EmployeeAssessment) (*model.EmployeeAssessment, error)
	ListByMatrix(matrixID, tenantID string) ([]model.EmployeeAssessment, error)
	ExistsByMatrixAndEmail(matrixID, email, tenantID string) (bool, error)
}

type AssessmentMatrixStore interface {
	FindByID(id, tenantID string) (*model.AssessmentMatrix, error)
	Save(m *model.AssessmentMatrix) (*model.AssessmentMatrix, error)
}

type TeamStore interface {
	FindByIDs(ids []string, tenantID string) ([]model.Team, error)
}

type AnalyticsStore interface {
	FindByKey(ctx context.Context, companyPerformanceID, entityID string) (*model.DashboardAnalytics, error)
	ListByCompanyPerformance(companyPerformanceID string) ([]model.DashboardAnalytics, error)
	SaveAll(rows []model.DashboardAnalytics) error
}
