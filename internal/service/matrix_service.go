package service

import (
	"errors"
	"fmt"

	"perform_backend/internal/model"
	"perform_backend/internal/repository"
	"perform_backend/internal/util"

	"gorm.io/gorm"
)

// MatrixService manages assessment matrices themselves; question maintenance
// inside a matrix lives on AssessmentService.
type MatrixService struct {
	MatrixRepo *repository.AssessmentMatrixRepository
}

func NewMatrixService(matrixRepo *repository.AssessmentMatrixRepository) *MatrixService {
	return &MatrixService{MatrixRepo: matrixRepo}
}

type MatrixRequest struct {
	CompanyID          string                         `json:"companyId" binding:"required"`
	PerformanceCycleID string                         `json:"performanceCycleId" binding:"required"`
	Name               string                         `json:"name" binding:"required"`
	Description        string                         `json:"description"`
	Configuration      *model.AssessmentConfiguration `json:"configuration"`
}

func (s *MatrixService) Create(req *MatrixRequest, tenantID string) (*model.AssessmentMatrix, error) {
	m := &model.AssessmentMatrix{
		TenantScoped:       model.TenantScoped{TenantID: tenantID},
		CompanyID:          req.CompanyID,
		PerformanceCycleID: req.PerformanceCycleID,
		Name:               req.Name,
		Description:        req.Description,
	}

	if req.Configuration != nil {
		if !req.Configuration.NavigationMode.Valid() {
			return nil, fmt.Errorf("navigation mode %q: %w", req.Configuration.NavigationMode, util.ErrInvalidAnswerValue)
		}
		m.Configuration = *req.Configuration
	} else {
		m.Configuration = model.AssessmentConfiguration{
			NavigationMode:      model.NavigationRandom,
			AllowQuestionReview: true,
			RequireAllQuestions: true,
			AutoSave:            true,
		}
	}

	if err := s.MatrixRepo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MatrixService) Get(id, tenantID string) (*model.AssessmentMatrix, error) {
	m, err := s.MatrixRepo.FindByID(id, tenantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("assessment matrix %s: %w", id, util.ErrInvalidIDReference)
	}
	return m, err
}

func (s *MatrixService) ListByCycle(cycleID, tenantID string) ([]model.AssessmentMatrix, error) {
	return s.MatrixRepo.ListByPerformanceCycle(cycleID, tenantID)
}

func (s *MatrixService) Update(id string, req *MatrixRequest, tenantID string) (*model.AssessmentMatrix, error) {
	m, err := s.Get(id, tenantID)
	if err != nil {
		return nil, err
	}

	m.Name = req.Name
	m.Description = req.Description
	if req.Configuration != nil {
		if !req.Configuration.NavigationMode.Valid() {
			return nil, fmt.Errorf("navigation mode %q: %w", req.Configuration.NavigationMode, util.ErrInvalidAnswerValue)
		}
		m.Configuration = *req.Configuration
	}

	return s.MatrixRepo.Save(m)
}

func (s *MatrixService) Delete(id, tenantID string) error {
	if _, err := s.Get(id, tenantID); err != nil {
		return err
	}
	return s.MatrixRepo.Delete(id, tenantID)
}
