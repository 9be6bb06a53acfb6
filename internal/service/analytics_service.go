package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"perform_backend/internal/model"
	"perform_backend/internal/util"
	"perform_backend/pkg/logger"
	"perform_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AnalyticsService is the batch aggregator behind the dashboards. A recompute
// run issues exactly three data loads regardless of population size: the
// matrix's assessments, the distinct team set, the answers for the distinct
// assessment id set. It then writes every snapshot row in one batch.
type AnalyticsService struct {
	EmployeeRepo  EmployeeAssessmentStore
	TeamRepo      TeamStore
	AnswerRepo    AnswerStore
	MatrixRepo    AssessmentMatrixStore
	AnalyticsRepo AnalyticsStore
}

func NewAnalyticsService(
	employeeRepo EmployeeAssessmentStore,
	teamRepo TeamStore,
	answerRepo AnswerStore,
	matrixRepo AssessmentMatrixStore,
	analyticsRepo AnalyticsStore,
) *AnalyticsService {
	return &AnalyticsService{
		EmployeeRepo:  employeeRepo,
		TeamRepo:      teamRepo,
		AnswerRepo:    answerRepo,
		MatrixRepo:    matrixRepo,
		AnalyticsRepo: analyticsRepo,
	}
}

// analyticsPayload is the opaque JSON carried by each snapshot row for richer
// front-end rendering.
type analyticsPayload struct {
	WordCloud map[string]int `json:"wordCloud,omitempty"`
}

// RecomputeAnalytics rebuilds all dashboard snapshots for one matrix: one row
// per team with members plus one matrix-scope row. Every row is a full
// overwrite; concurrent runs converge because the result is a pure function
// of stored state. An empty population writes nothing and is not an error.
func (s *AnalyticsService) RecomputeAnalytics(matrixID, tenantID string) error {
	timer := monitoring.AnalyticsRecomputeDuration
	start := timeNow()
	defer func() { timer.Observe(timeNow().Sub(start).Seconds()) }()

	matrix, err := s.MatrixRepo.FindByID(matrixID, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: assessment matrix %s", util.ErrInvalidIDReference, matrixID)
		}
		return err
	}

	assessments, err := s.EmployeeRepo.ListByMatrix(matrixID, tenantID)
	if err != nil {
		return err
	}
	if len(assessments) == 0 {
		logger.Log.Info("analytics recompute skipped, no employee assessments",
			zap.String("assessmentMatrixId", matrixID))
		return nil
	}

	lookups, err := s.loadDependencies(assessments, tenantID)
	if err != nil {
		return err
	}

	byTeam := make(map[string][]model.EmployeeAssessment)
	for _, ea := range assessments {
		if ea.TeamID == "" {
			// no team: counted at matrix scope only
			continue
		}
		byTeam[ea.TeamID] = append(byTeam[ea.TeamID], ea)
	}

	rows := make([]model.DashboardAnalytics, 0, len(byTeam)+1)
	for teamID, members := range byTeam {
		row, err := s.buildRow(matrix, model.ScopeTeam, teamID, members, lookups)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	matrixRow, err := s.buildRow(matrix, model.ScopeAssessmentMatrix, "", assessments, lookups)
	if err != nil {
		return err
	}
	rows = append(rows, matrixRow)

	if err := s.AnalyticsRepo.SaveAll(rows); err != nil {
		return err
	}

	logger.Log.Info("analytics recomputed",
		zap.String("assessmentMatrixId", matrixID),
		zap.Int("employeeAssessments", len(assessments)),
		zap.Int("rows", len(rows)))
	return nil
}

// analyticsLookups is everything the row builder needs, loaded up front so no
// per-employee or per-team call can sneak in.
type analyticsLookups struct {
	teamsByID     map[string]model.Team
	answersByEAID map[string][]model.Answer
}

func (s *AnalyticsService) loadDependencies(assessments []model.EmployeeAssessment, tenantID string) (*analyticsLookups, error) {
	teamIDSet := make(map[string]bool)
	eaIDs := make([]string, 0, len(assessments))
	for _, ea := range assessments {
		eaIDs = append(eaIDs, ea.ID)
		if ea.TeamID != "" {
			teamIDSet[ea.TeamID] = true
		}
	}
	teamIDs := make([]string, 0, len(teamIDSet))
	for id := range teamIDSet {
		teamIDs = append(teamIDs, id)
	}

	teams, err := s.TeamRepo.FindByIDs(teamIDs, tenantID)
	if err != nil {
		return nil, err
	}
	answers, err := s.AnswerRepo.ListByEmployeeAssessmentIDs(eaIDs)
	if err != nil {
		return nil, err
	}

	lookups := &analyticsLookups{
		teamsByID:     make(map[string]model.Team, len(teams)),
		answersByEAID: make(map[string][]model.Answer),
	}
	for _, t := range teams {
		lookups.teamsByID[t.ID] = t
	}
	for _, a := range answers {
		lookups.answersByEAID[a.EmployeeAssessmentID] = append(lookups.answersByEAID[a.EmployeeAssessmentID], a)
	}
	return lookups, nil
}

func (s *AnalyticsService) buildRow(
	matrix *model.AssessmentMatrix,
	scope model.AnalyticsScope,
	teamID string,
	members []model.EmployeeAssessment,
	lookups *analyticsLookups,
) (model.DashboardAnalytics, error) {
	employeeCount := len(members)
	completedCount := 0
	var scoreSum float64
	scoredCount := 0
	wordCloud := make(map[string]int)

	for _, ea := range members {
		if ea.AssessmentStatus != model.StatusCompleted {
			continue
		}
		completedCount++

		// scoreless completed assessments are excluded from the mean,
		// not treated as zero
		score, err := ea.Score()
		if err != nil {
			return model.DashboardAnalytics{}, err
		}
		if score != nil {
			scoreSum += score.Score
			scoredCount++
		}

		for _, a := range lookups.answersByEAID[ea.ID] {
			tokenize(a.Notes, wordCloud)
		}
	}

	completionPercentage := 0.0
	if employeeCount > 0 {
		completionPercentage = 100 * float64(completedCount) / float64(employeeCount)
	}
	generalAverage := 0.0
	if scoredCount > 0 {
		generalAverage = scoreSum / float64(scoredCount)
	}

	row := model.DashboardAnalytics{
		CompanyPerformanceID: model.AnalyticsCompanyPerformanceID(matrix.CompanyID, matrix.PerformanceCycleID),
		EntityID:             model.AnalyticsEntityID(matrix.ID, scope, teamID),
		TenantID:             matrix.TenantID,
		CompanyID:            matrix.CompanyID,
		PerformanceCycleID:   matrix.PerformanceCycleID,
		AssessmentMatrixID:   matrix.ID,
		AssessmentMatrixName: matrix.Name,
		Scope:                scope,
		EmployeeCount:        employeeCount,
		CompletionPercentage: completionPercentage,
		GeneralAverage:       generalAverage,
		LastUpdated:          timeNow(),
	}
	if scope == model.ScopeTeam {
		row.TeamID = teamID
		if team, ok := lookups.teamsByID[teamID]; ok {
			row.TeamName = team.Name
		}
	}

	if len(wordCloud) > 0 {
		raw, err := json.Marshal(analyticsPayload{WordCloud: wordCloud})
		if err != nil {
			return model.DashboardAnalytics{}, err
		}
		row.AnalyticsDataJSON = raw
	}

	return row, nil
}

// tokenize splits free-text notes into lower-cased whitespace-delimited
// tokens and counts them into freq.
func tokenize(notes string, freq map[string]int) {
	for _, tok := range strings.Fields(strings.ToLower(notes)) {
		freq[tok]++
	}
}

// GetOverview returns the matrix-scope snapshot.
func (s *AnalyticsService) GetOverview(ctx context.Context, companyID, performanceCycleID, matrixID string) (*model.DashboardAnalytics, error) {
	row, err := s.AnalyticsRepo.FindByKey(ctx,
		model.AnalyticsCompanyPerformanceID(companyID, performanceCycleID),
		model.AnalyticsEntityID(matrixID, model.ScopeAssessmentMatrix, ""))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: analytics for matrix %s", util.ErrInvalidIDReference, matrixID)
		}
		return nil, err
	}
	return row, nil
}

// GetTeamAnalytics returns the snapshot for one team.
func (s *AnalyticsService) GetTeamAnalytics(ctx context.Context, companyID, performanceCycleID, matrixID, teamID string) (*model.DashboardAnalytics, error) {
	row, err := s.AnalyticsRepo.FindByKey(ctx,
		model.AnalyticsCompanyPerformanceID(companyID, performanceCycleID),
		model.AnalyticsEntityID(matrixID, model.ScopeTeam, teamID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: analytics for team %s", util.ErrInvalidIDReference, teamID)
		}
		return nil, err
	}
	return row, nil
}

// ListCycleAnalytics range-scans every snapshot for one company+cycle.
func (s *AnalyticsService) ListCycleAnalytics(companyID, performanceCycleID string) ([]model.DashboardAnalytics, error) {
	return s.AnalyticsRepo.ListByCompanyPerformance(
		model.AnalyticsCompanyPerformanceID(companyID, performanceCycleID))
}
