package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"perform_backend/internal/config"
	"perform_backend/internal/model"
	"perform_backend/internal/util"
	"perform_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// timeNow is swapped out by tests for a frozen clock.
var timeNow = time.Now

// AssessmentService owns answer submission, the potential-score snapshot and
// question maintenance on a matrix.
type AssessmentService struct {
	MatrixRepo   AssessmentMatrixStore
	QuestionRepo QuestionStore
	AnswerRepo   AnswerStore
	EmployeeRepo EmployeeAssessmentStore
	Cfg          *config.Config
}

func NewAssessmentService(
	matrixRepo AssessmentMatrixStore,
	questionRepo QuestionStore,
	answerRepo AnswerStore,
	employeeRepo EmployeeAssessmentStore,
	cfg *config.Config,
) *AssessmentService {
	return &AssessmentService{
		MatrixRepo:   matrixRepo,
		QuestionRepo: questionRepo,
		AnswerRepo:   answerRepo,
		EmployeeRepo: employeeRepo,
		Cfg:          cfg,
	}
}

type SubmitAnswerRequest struct {
	EmployeeAssessmentID string    `json:"employeeAssessmentId"`
	QuestionID           string    `json:"questionId" binding:"required"`
	Value                string    `json:"value" binding:"required"`
	AnsweredAt           time.Time `json:"answeredAt"`
	Notes                string    `json:"notes"`
	TenantID             string    `json:"-"`
}

// SubmitAnswer validates and scores one submission, upserts the answer row
// and refreshes the owning assessment's count, score, status and activity
// timestamp. All validation happens before any write.
func (s *AssessmentService) SubmitAnswer(req SubmitAnswerRequest) (*model.Answer, error) {
	ea, err := s.EmployeeRepo.FindByID(req.EmployeeAssessmentID, req.TenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: employee assessment %s", util.ErrInvalidIDReference, req.EmployeeAssessmentID)
		}
		return nil, err
	}

	now := timeNow()
	answeredAt := req.AnsweredAt
	if answeredAt.IsZero() {
		answeredAt = now
	}
	if answeredAt.After(now.Add(s.Cfg.Assessment.AnsweredAtTolerance())) {
		return nil, fmt.Errorf("%w: answeredAt %s is too far in the future", util.ErrInvalidAnswerValue, answeredAt.Format(time.RFC3339))
	}

	q, err := s.QuestionRepo.FindByID(req.QuestionID, req.TenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: question %s", util.ErrInvalidIDReference, req.QuestionID)
		}
		return nil, err
	}
	if q.AssessmentMatrixID != ea.AssessmentMatrixID {
		return nil, fmt.Errorf("%w: question %s does not belong to matrix %s", util.ErrInvalidIDReference, q.ID, ea.AssessmentMatrixID)
	}

	scored, err := CalculateScore(q, req.Value)
	if err != nil {
		return nil, err
	}

	answer, err := s.AnswerRepo.FindByAssessmentAndQuestion(ea.ID, q.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		answer = &model.Answer{
			TenantScoped:         model.TenantScoped{TenantID: req.TenantID},
			EmployeeAssessmentID: ea.ID,
			QuestionID:           q.ID,
		}
	}

	answer.PillarID = q.PillarID
	answer.CategoryID = q.CategoryID
	answer.QuestionType = q.QuestionType
	answer.Value = req.Value
	answer.Score = scored.Score
	answer.PendingReview = scored.PendingReview
	answer.Notes = req.Notes
	answer.AnsweredAt = answeredAt

	saved, err := s.AnswerRepo.Save(answer)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, fmt.Errorf("%w: answer for question %s", util.ErrSaveFailed, q.ID)
	}

	monitoring.AnswersScored.WithLabelValues(string(q.QuestionType)).Inc()

	if err := s.refreshAssessment(ea); err != nil {
		return nil, err
	}

	return saved, nil
}

// refreshAssessment recomputes the assessment's score tree from its full
// answer set and advances count, status and activity. Full recomputation is
// chosen over incremental patching on every submission.
func (s *AssessmentService) refreshAssessment(ea *model.EmployeeAssessment) error {
	questions, err := s.QuestionRepo.ListByMatrix(ea.AssessmentMatrixID, ea.TenantID)
	if err != nil {
		return err
	}
	answers, err := s.AnswerRepo.ListByEmployeeAssessment(ea.ID)
	if err != nil {
		return err
	}

	// Answers whose question has since been deleted stay in storage but no
	// longer count toward progress or completion.
	live := make(map[string]bool, len(questions))
	for _, q := range questions {
		live[q.ID] = true
	}
	answeredLive := 0
	for _, a := range answers {
		if live[a.QuestionID] {
			answeredLive++
		}
	}

	ea.AnsweredQuestionCount = answeredLive

	score := AggregateActual(questions, answers)
	if err := ea.SetScore(&score); err != nil {
		return err
	}

	completed := len(questions) > 0 && answeredLive >= len(questions)
	switch {
	case ea.AssessmentStatus == model.StatusCompleted:
		// terminal: the activity timestamp stays frozen
	case completed:
		ea.AssessmentStatus = model.StatusCompleted
	default:
		if ea.AssessmentStatus.CanTransitionTo(model.StatusInProgress) {
			ea.AssessmentStatus = model.StatusInProgress
		}
		now := timeNow()
		ea.LastActivityDate = &now
	}

	saved, err := s.EmployeeRepo.Save(ea)
	if err != nil {
		return err
	}
	if saved == nil {
		return fmt.Errorf("%w: employee assessment %s", util.ErrSaveFailed, ea.ID)
	}
	return nil
}

// ComputePotentialScore rebuilds the matrix's maximum-achievable-score tree
// from its question set and stores the snapshot on the matrix.
func (s *AssessmentService) ComputePotentialScore(matrixID, tenantID string) (*model.PotentialScore, error) {
	matrix, err := s.MatrixRepo.FindByID(matrixID, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: assessment matrix %s", util.ErrInvalidIDReference, matrixID)
		}
		return nil, err
	}

	questions, err := s.QuestionRepo.ListByMatrix(matrixID, tenantID)
	if err != nil {
		return nil, err
	}

	ps := AggregatePotential(questions)
	if err := matrix.SetPotentialScore(&ps); err != nil {
		return nil, err
	}
	matrix.QuestionCount = len(questions)

	saved, err := s.MatrixRepo.Save(matrix)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, fmt.Errorf("%w: assessment matrix %s", util.ErrSaveFailed, matrixID)
	}

	return &ps, nil
}

type QuestionRequest struct {
	AssessmentMatrixID string                 `json:"assessmentMatrixId" binding:"required"`
	PillarID           string                 `json:"pillarId" binding:"required"`
	PillarName         string                 `json:"pillarName"`
	CategoryID         string                 `json:"categoryId" binding:"required"`
	CategoryName       string                 `json:"categoryName"`
	QuestionType       model.QuestionType     `json:"questionType" binding:"required"`
	Text               string                 `json:"text" binding:"required"`
	Points             float64                `json:"points"`
	Order              int                    `json:"order"`
	MultipleChoice     bool                   `json:"multipleChoice"`
	Options            []model.QuestionOption `json:"options"`
}

func (s *AssessmentService) validateQuestion(req QuestionRequest) error {
	if !req.QuestionType.Valid() {
		return fmt.Errorf("%w: unknown question type %q", util.ErrInvalidAnswerValue, req.QuestionType)
	}
	if req.Points < 0 {
		return fmt.Errorf("%w: negative points", util.ErrInvalidAnswerValue)
	}
	if req.QuestionType == model.QuestionCustomized {
		if len(req.Options) == 0 {
			return fmt.Errorf("%w: customized question needs at least one option", util.ErrInvalidAnswerValue)
		}
		seen := make(map[string]bool, len(req.Options))
		for _, opt := range req.Options {
			if opt.ID == "" {
				return fmt.Errorf("%w: option without id", util.ErrInvalidAnswerValue)
			}
			if seen[opt.ID] {
				return fmt.Errorf("%w: duplicate option id %q", util.ErrInvalidAnswerValue, opt.ID)
			}
			seen[opt.ID] = true
			if opt.Points < 0 {
				return fmt.Errorf("%w: option %q has negative points", util.ErrInvalidAnswerValue, opt.ID)
			}
		}
	}
	return nil
}

// CreateQuestion adds a question to a matrix and refreshes the stored
// potential score and question count.
func (s *AssessmentService) CreateQuestion(req QuestionRequest, tenantID string) (*model.Question, error) {
	if err := s.validateQuestion(req); err != nil {
		return nil, err
	}
	if _, err := s.MatrixRepo.FindByID(req.AssessmentMatrixID, tenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: assessment matrix %s", util.ErrInvalidIDReference, req.AssessmentMatrixID)
		}
		return nil, err
	}

	q := &model.Question{
		TenantScoped:       model.TenantScoped{TenantID: tenantID},
		AssessmentMatrixID: req.AssessmentMatrixID,
		PillarID:           req.PillarID,
		PillarName:         req.PillarName,
		CategoryID:         req.CategoryID,
		CategoryName:       req.CategoryName,
		QuestionType:       req.QuestionType,
		Text:               req.Text,
		Points:             req.Points,
		Order:              req.Order,
		MultipleChoice:     req.MultipleChoice,
	}
	if len(req.Options) > 0 {
		raw, err := json.Marshal(req.Options)
		if err != nil {
			return nil, err
		}
		q.Options = raw
	}

	if err := s.QuestionRepo.Create(q); err != nil {
		return nil, err
	}

	if _, err := s.ComputePotentialScore(req.AssessmentMatrixID, tenantID); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *AssessmentService) UpdateQuestion(id string, req QuestionRequest, tenantID string) (*model.Question, error) {
	if err := s.validateQuestion(req); err != nil {
		return nil, err
	}

	q, err := s.QuestionRepo.FindByID(id, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: question %s", util.ErrInvalidIDReference, id)
		}
		return nil, err
	}

	q.PillarID = req.PillarID
	q.PillarName = req.PillarName
	q.CategoryID = req.CategoryID
	q.CategoryName = req.CategoryName
	q.QuestionType = req.QuestionType
	q.Text = req.Text
	q.Points = req.Points
	q.Order = req.Order
	q.MultipleChoice = req.MultipleChoice
	q.Options = nil
	if len(req.Options) > 0 {
		raw, err := json.Marshal(req.Options)
		if err != nil {
			return nil, err
		}
		q.Options = raw
	}

	if err := s.QuestionRepo.Update(q); err != nil {
		return nil, err
	}

	if _, err := s.ComputePotentialScore(q.AssessmentMatrixID, tenantID); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *AssessmentService) DeleteQuestion(id, tenantID string) error {
	q, err := s.QuestionRepo.FindByID(id, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: question %s", util.ErrInvalidIDReference, id)
		}
		return err
	}

	if err := s.QuestionRepo.Delete(id, tenantID); err != nil {
		return err
	}

	_, err = s.ComputePotentialScore(q.AssessmentMatrixID, tenantID)
	return err
}

func (s *AssessmentService) ListQuestions(matrixID, tenantID string) ([]model.Question, error) {
	return s.QuestionRepo.ListByMatrix(matrixID, tenantID)
}
