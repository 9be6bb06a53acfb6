package service

import (
	"errors"
	"fmt"
	"strings"

	"perform_backend/internal/model"
	"perform_backend/internal/util"

	"gorm.io/gorm"
)

// EmployeeAssessmentService handles enrollment and the invitation side of the
// lifecycle.
type EmployeeAssessmentService struct {
	EmployeeRepo EmployeeAssessmentStore
	MatrixRepo   AssessmentMatrixStore
}

func NewEmployeeAssessmentService(employeeRepo EmployeeAssessmentStore, matrixRepo AssessmentMatrixStore) *EmployeeAssessmentService {
	return &EmployeeAssessmentService{
		EmployeeRepo: employeeRepo,
		MatrixRepo:   matrixRepo,
	}
}

type EnrollRequest struct {
	AssessmentMatrixID string `json:"assessmentMatrixId" binding:"required"`
	EmployeeEmail      string `json:"employeeEmail" binding:"required,email"`
	EmployeeName       string `json:"employeeName"`
	TeamID             string `json:"teamId"`
	TenantID           string `json:"-"`
}

// Enroll creates an INVITED assessment for one employee. At most one
// assessment may exist per (matrix, email) within a tenant.
func (s *EmployeeAssessmentService) Enroll(req EnrollRequest) (*model.EmployeeAssessment, error) {
	if _, err := s.MatrixRepo.FindByID(req.AssessmentMatrixID, req.TenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: assessment matrix %s", util.ErrInvalidIDReference, req.AssessmentMatrixID)
		}
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.EmployeeEmail))

	exists, err := s.EmployeeRepo.ExistsByMatrixAndEmail(req.AssessmentMatrixID, email, req.TenantID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: employee assessment for %s on matrix %s", util.ErrAlreadyExists, email, req.AssessmentMatrixID)
	}

	ea := &model.EmployeeAssessment{
		TenantScoped:       model.TenantScoped{TenantID: req.TenantID},
		AssessmentMatrixID: req.AssessmentMatrixID,
		EmployeeEmail:      email,
		EmployeeName:       req.EmployeeName,
		TeamID:             req.TeamID,
		AssessmentStatus:   model.StatusInvited,
	}
	if err := s.EmployeeRepo.Create(ea); err != nil {
		return nil, err
	}
	return ea, nil
}

// Confirm moves an invited assessment forward to CONFIRMED. Forward-only:
// confirming an assessment already past INVITED is a no-op, a completed one
// stays completed.
func (s *EmployeeAssessmentService) Confirm(employeeAssessmentID, tenantID string) (*model.EmployeeAssessment, error) {
	ea, err := s.EmployeeRepo.FindByID(employeeAssessmentID, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: employee assessment %s", util.ErrInvalidIDReference, employeeAssessmentID)
		}
		return nil, err
	}

	if ea.AssessmentStatus == model.StatusInvited {
		ea.AssessmentStatus = model.StatusConfirmed
		saved, err := s.EmployeeRepo.Save(ea)
		if err != nil {
			return nil, err
		}
		if saved == nil {
			return nil, fmt.Errorf("%w: employee assessment %s", util.ErrSaveFailed, ea.ID)
		}
		return saved, nil
	}
	return ea, nil
}

func (s *EmployeeAssessmentService) ListByMatrix(matrixID, tenantID string) ([]model.EmployeeAssessment, error) {
	return s.EmployeeRepo.ListByMatrix(matrixID, tenantID)
}

func (s *EmployeeAssessmentService) Get(employeeAssessmentID, tenantID string) (*model.EmployeeAssessment, error) {
	ea, err := s.EmployeeRepo.FindByID(employeeAssessmentID, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: employee assessment %s", util.ErrInvalidIDReference, employeeAssessmentID)
		}
		return nil, err
	}
	return ea, nil
}
