package service

import (
	"errors"
	"fmt"
	"math/rand"

	"perform_backend/internal/model"
	"perform_backend/internal/util"
	"perform_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// randIntn is swapped out by tests for a deterministic pick.
var randIntn = rand.Intn

// NavigationService is the state machine steering an employee through the
// matrix's questions and detecting completion.
type NavigationService struct {
	EmployeeRepo EmployeeAssessmentStore
	MatrixRepo   AssessmentMatrixStore
	QuestionRepo QuestionStore
	AnswerRepo   AnswerStore
	Assessment   *AssessmentService
}

func NewNavigationService(
	employeeRepo EmployeeAssessmentStore,
	matrixRepo AssessmentMatrixStore,
	questionRepo QuestionStore,
	answerRepo AnswerStore,
	assessment *AssessmentService,
) *NavigationService {
	return &NavigationService{
		EmployeeRepo: employeeRepo,
		MatrixRepo:   matrixRepo,
		QuestionRepo: questionRepo,
		AnswerRepo:   answerRepo,
		Assessment:   assessment,
	}
}

// NextQuestionResponse is what the handler layer returns for navigation
// calls. Question is nil once the assessment is complete.
type NextQuestionResponse struct {
	Question       *model.Question        `json:"question,omitempty"`
	ExistingAnswer *model.Answer          `json:"existingAnswer,omitempty"`
	Status         model.AssessmentStatus `json:"status"`
	AnsweredCount  int                    `json:"answeredCount"`
	TotalQuestions int                    `json:"totalQuestions"`
}

// GetNextUnanswered selects the next question to present according to the
// matrix's navigation mode, finalizing the assessment when every question is
// answered. Calling it on a completed assessment is idempotent.
func (s *NavigationService) GetNextUnanswered(employeeAssessmentID, tenantID string) (*NextQuestionResponse, error) {
	ea, err := s.EmployeeRepo.FindByID(employeeAssessmentID, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: employee assessment %s", util.ErrInvalidIDReference, employeeAssessmentID)
		}
		return nil, err
	}

	matrix, err := s.MatrixRepo.FindByID(ea.AssessmentMatrixID, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: assessment matrix %s", util.ErrInvalidIDReference, ea.AssessmentMatrixID)
		}
		return nil, err
	}

	questions, err := s.QuestionRepo.ListByMatrix(matrix.ID, tenantID)
	if err != nil {
		return nil, err
	}
	answeredIDs, err := s.AnswerRepo.ListAnsweredQuestionIDs(ea.ID)
	if err != nil {
		return nil, err
	}

	answered := make(map[string]bool, len(answeredIDs))
	for _, id := range answeredIDs {
		answered[id] = true
	}

	// order-preserving subtraction from canonical question order
	var unanswered []model.Question
	for _, q := range questions {
		if !answered[q.ID] {
			unanswered = append(unanswered, q)
		}
	}

	// counted against live questions only, so stale answers for deleted
	// questions do not inflate progress
	resp := &NextQuestionResponse{
		AnsweredCount:  len(questions) - len(unanswered),
		TotalQuestions: len(questions),
	}

	if len(questions) > 0 && len(unanswered) == 0 {
		if ea.AssessmentStatus != model.StatusCompleted {
			ea.AssessmentStatus = model.StatusCompleted
			if _, err := s.EmployeeRepo.Save(ea); err != nil {
				return nil, err
			}
			logger.Log.Info("employee assessment completed",
				zap.String("employeeAssessmentId", ea.ID),
				zap.String("assessmentMatrixId", matrix.ID))
		}
		resp.Status = ea.AssessmentStatus
		return resp, nil
	}

	if len(unanswered) > 0 {
		resp.Question = selectNext(unanswered, matrix.Configuration.NavigationMode)
	}

	if ea.AssessmentStatus == model.StatusConfirmed {
		ea.AssessmentStatus = model.StatusInProgress
		if _, err := s.EmployeeRepo.Save(ea); err != nil {
			return nil, err
		}
	}

	resp.Status = ea.AssessmentStatus
	return resp, nil
}

// selectNext applies the navigation mode to the unanswered subset.
// SEQUENTIAL takes the first question in canonical order. RANDOM picks
// uniformly. FREE_FORM lets the client jump freely, so the server-side
// suggestion is the same uniform pick as RANDOM.
func selectNext(unanswered []model.Question, mode model.NavigationMode) *model.Question {
	switch mode {
	case model.NavigationSequential:
		return &unanswered[0]
	default:
		return &unanswered[randIntn(len(unanswered))]
	}
}

// GetQuestionForReview serves a client-directed jump to a specific question,
// returning the existing answer (if any) so the client can pre-fill it. Only
// allowed when the matrix permits question review.
func (s *NavigationService) GetQuestionForReview(employeeAssessmentID, questionID, tenantID string) (*NextQuestionResponse, error) {
	ea, err := s.EmployeeRepo.FindByID(employeeAssessmentID, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: employee assessment %s", util.ErrInvalidIDReference, employeeAssessmentID)
		}
		return nil, err
	}

	matrix, err := s.MatrixRepo.FindByID(ea.AssessmentMatrixID, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: assessment matrix %s", util.ErrInvalidIDReference, ea.AssessmentMatrixID)
		}
		return nil, err
	}
	if !matrix.Configuration.AllowQuestionReview {
		return nil, fmt.Errorf("%w: matrix %s does not allow question review", util.ErrInvalidIDReference, matrix.ID)
	}

	q, err := s.QuestionRepo.FindByID(questionID, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: question %s", util.ErrInvalidIDReference, questionID)
		}
		return nil, err
	}
	if q.AssessmentMatrixID != matrix.ID {
		return nil, fmt.Errorf("%w: question %s does not belong to matrix %s", util.ErrInvalidIDReference, q.ID, matrix.ID)
	}

	answeredIDs, err := s.AnswerRepo.ListAnsweredQuestionIDs(ea.ID)
	if err != nil {
		return nil, err
	}

	resp := &NextQuestionResponse{
		Question:       q,
		Status:         ea.AssessmentStatus,
		AnsweredCount:  len(answeredIDs),
		TotalQuestions: matrix.QuestionCount,
	}
	if existing, err := s.AnswerRepo.FindByAssessmentAndQuestion(ea.ID, q.ID); err == nil {
		resp.ExistingAnswer = existing
	}
	return resp, nil
}

// SaveAnswerAndGetNext composes answer submission with next-question
// selection.
func (s *NavigationService) SaveAnswerAndGetNext(req SubmitAnswerRequest) (*NextQuestionResponse, error) {
	answer, err := s.Assessment.SubmitAnswer(req)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		return nil, fmt.Errorf("%w: answer for question %s", util.ErrSaveFailed, req.QuestionID)
	}

	return s.GetNextUnanswered(req.EmployeeAssessmentID, req.TenantID)
}
