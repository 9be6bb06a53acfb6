package service

import (
	"errors"
	"fmt"

	"perform_backend/internal/model"
	"perform_backend/internal/repository"
	"perform_backend/internal/util"

	"gorm.io/gorm"
)

type TeamService struct {
	TeamRepo *repository.TeamRepository
}

func NewTeamService(teamRepo *repository.TeamRepository) *TeamService {
	return &TeamService{TeamRepo: teamRepo}
}

type TeamRequest struct {
	CompanyID    string `json:"companyId" binding:"required"`
	DepartmentID string `json:"departmentId"`
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
}

func (s *TeamService) Create(req *TeamRequest, tenantID string) (*model.Team, error) {
	t := &model.Team{
		TenantScoped: model.TenantScoped{TenantID: tenantID},
		CompanyID:    req.CompanyID,
		DepartmentID: req.DepartmentID,
		Name:         req.Name,
		Description:  req.Description,
	}
	if err := s.TeamRepo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TeamService) Get(id, tenantID string) (*model.Team, error) {
	t, err := s.TeamRepo.FindByID(id, tenantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("team %s: %w", id, util.ErrInvalidIDReference)
	}
	return t, err
}

func (s *TeamService) ListByCompany(companyID, tenantID string) ([]model.Team, error) {
	return s.TeamRepo.ListByCompany(companyID, tenantID)
}

func (s *TeamService) Update(id string, req *TeamRequest, tenantID string) (*model.Team, error) {
	t, err := s.Get(id, tenantID)
	if err != nil {
		return nil, err
	}

	t.Name = req.Name
	t.Description = req.Description
	t.DepartmentID = req.DepartmentID
	if err := s.TeamRepo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TeamService) Delete(id, tenantID string) error {
	if _, err := s.Get(id, tenantID); err != nil {
		return err
	}
	return s.TeamRepo.Delete(id, tenantID)
}
