package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"perform_backend/internal/model"
	"perform_backend/internal/util"
)

type analyticsFixture struct {
	svc       *AnalyticsService
	matrices  *fakeMatrixStore
	employees *fakeEmployeeStore
	teams     *fakeTeamStore
	answers   *fakeBatchAnswerStore
	store     *fakeAnalyticsStore
}

func newAnalyticsFixture(t *testing.T) *analyticsFixture {
	t.Helper()
	freezeClock(t)

	f := &analyticsFixture{
		matrices:  newFakeMatrixStore(),
		employees: newFakeEmployeeStore(),
		teams:     newFakeTeamStore(),
		answers:   &fakeBatchAnswerStore{fakeAnswerStore: newFakeAnswerStore()},
		store:     newFakeAnalyticsStore(),
	}
	f.svc = NewAnalyticsService(f.employees, f.teams, f.answers, f.matrices, f.store)

	f.matrices.put(model.AssessmentMatrix{
		UUIDBase:           model.UUIDBase{ID: "m-1"},
		TenantScoped:       model.TenantScoped{TenantID: "t-1"},
		CompanyID:          "co-1",
		PerformanceCycleID: "cycle-1",
		Name:               "Annual 2026",
	})
	f.teams.teams["team-a"] = model.Team{
		UUIDBase:     model.UUIDBase{ID: "team-a"},
		TenantScoped: model.TenantScoped{TenantID: "t-1"},
		CompanyID:    "co-1",
		Name:         "Platform",
	}
	f.teams.teams["team-b"] = model.Team{
		UUIDBase:     model.UUIDBase{ID: "team-b"},
		TenantScoped: model.TenantScoped{TenantID: "t-1"},
		CompanyID:    "co-1",
		Name:         "Mobile",
	}
	return f
}

func (f *analyticsFixture) seedAssessment(t *testing.T, id, teamID string, status model.AssessmentStatus, total float64) {
	t.Helper()
	ea := &model.EmployeeAssessment{
		UUIDBase:           model.UUIDBase{ID: id},
		TenantScoped:       model.TenantScoped{TenantID: "t-1"},
		AssessmentMatrixID: "m-1",
		EmployeeEmail:      id + "@acme.test",
		TeamID:             teamID,
		AssessmentStatus:   status,
	}
	if status == model.StatusCompleted {
		if err := ea.SetScore(&model.EmployeeAssessmentScore{Score: total}); err != nil {
			t.Fatalf("SetScore: %v", err)
		}
	}
	if err := f.employees.Create(ea); err != nil {
		t.Fatalf("seed assessment: %v", err)
	}
}

func (f *analyticsFixture) row(t *testing.T, entityID string) model.DashboardAnalytics {
	t.Helper()
	row, ok := f.store.rows["co-1#cycle-1|"+entityID]
	if !ok {
		t.Fatalf("snapshot %q not written; have %v", entityID, len(f.store.rows))
	}
	return row
}

func TestRecomputeAnalyticsPartitionsByTeam(t *testing.T) {
	f := newAnalyticsFixture(t)
	// team-a: 3 of 5 completed; team-b: 5 invited
	for i := 0; i < 5; i++ {
		status := model.StatusInvited
		if i < 3 {
			status = model.StatusCompleted
		}
		f.seedAssessment(t, fmt.Sprintf("ea-a%d", i), "team-a", status, 10)
	}
	for i := 0; i < 5; i++ {
		f.seedAssessment(t, fmt.Sprintf("ea-b%d", i), "team-b", model.StatusInvited, 0)
	}

	if err := f.svc.RecomputeAnalytics("m-1", "t-1"); err != nil {
		t.Fatalf("RecomputeAnalytics: %v", err)
	}

	if len(f.store.rows) != 3 {
		t.Fatalf("rows written = %d, want 2 team rows + 1 matrix row", len(f.store.rows))
	}

	teamA := f.row(t, "m-1#TEAM#team-a")
	if teamA.EmployeeCount != 5 {
		t.Errorf("team-a employee count = %d, want 5", teamA.EmployeeCount)
	}
	if teamA.CompletionPercentage != 60 {
		t.Errorf("team-a completion = %v, want 60", teamA.CompletionPercentage)
	}
	if teamA.GeneralAverage != 10 {
		t.Errorf("team-a average = %v, want 10", teamA.GeneralAverage)
	}
	if teamA.TeamName != "Platform" {
		t.Errorf("team-a name = %q, want Platform", teamA.TeamName)
	}
	if teamA.Scope != model.ScopeTeam {
		t.Errorf("team-a scope = %s, want TEAM", teamA.Scope)
	}

	teamB := f.row(t, "m-1#TEAM#team-b")
	if teamB.CompletionPercentage != 0 || teamB.GeneralAverage != 0 {
		t.Errorf("team-b completion/average = %v/%v, want 0/0", teamB.CompletionPercentage, teamB.GeneralAverage)
	}

	matrixRow := f.row(t, "m-1#ASSESSMENT_MATRIX")
	if matrixRow.EmployeeCount != 10 {
		t.Errorf("matrix employee count = %d, want 10", matrixRow.EmployeeCount)
	}
	if matrixRow.CompletionPercentage != 30 {
		t.Errorf("matrix completion = %v, want 30", matrixRow.CompletionPercentage)
	}
	if matrixRow.Scope != model.ScopeAssessmentMatrix {
		t.Errorf("matrix scope = %s, want ASSESSMENT_MATRIX", matrixRow.Scope)
	}
	if !matrixRow.LastUpdated.Equal(testClock) {
		t.Errorf("lastUpdated = %v, want %v", matrixRow.LastUpdated, testClock)
	}
}

func TestRecomputeAnalyticsUsesBatchedLoads(t *testing.T) {
	f := newAnalyticsFixture(t)
	for i := 0; i < 50; i++ {
		team := "team-a"
		if i%2 == 0 {
			team = "team-b"
		}
		f.seedAssessment(t, fmt.Sprintf("ea-%02d", i), team, model.StatusCompleted, float64(i))
	}

	if err := f.svc.RecomputeAnalytics("m-1", "t-1"); err != nil {
		t.Fatalf("RecomputeAnalytics: %v", err)
	}

	if f.employees.listCalls != 1 {
		t.Errorf("assessment loads = %d, want 1", f.employees.listCalls)
	}
	if f.teams.findCalls != 1 {
		t.Errorf("team loads = %d, want 1", f.teams.findCalls)
	}
	if f.answers.batchCalls != 1 {
		t.Errorf("answer loads = %d, want 1", f.answers.batchCalls)
	}
	if f.store.saveCalls != 1 {
		t.Errorf("snapshot writes = %d, want 1 batch", f.store.saveCalls)
	}
}

func TestRecomputeAnalyticsEmptyPopulationWritesNothing(t *testing.T) {
	f := newAnalyticsFixture(t)

	if err := f.svc.RecomputeAnalytics("m-1", "t-1"); err != nil {
		t.Fatalf("RecomputeAnalytics: %v", err)
	}
	if f.store.saveCalls != 0 || len(f.store.rows) != 0 {
		t.Fatalf("writes = %d rows = %d, want none for empty population", f.store.saveCalls, len(f.store.rows))
	}
}

func TestRecomputeAnalyticsTeamlessCountedAtMatrixScopeOnly(t *testing.T) {
	f := newAnalyticsFixture(t)
	f.seedAssessment(t, "ea-1", "team-a", model.StatusCompleted, 8)
	f.seedAssessment(t, "ea-2", "", model.StatusCompleted, 4)

	if err := f.svc.RecomputeAnalytics("m-1", "t-1"); err != nil {
		t.Fatalf("RecomputeAnalytics: %v", err)
	}

	if len(f.store.rows) != 2 {
		t.Fatalf("rows written = %d, want 1 team row + 1 matrix row", len(f.store.rows))
	}
	teamA := f.row(t, "m-1#TEAM#team-a")
	if teamA.EmployeeCount != 1 {
		t.Errorf("team-a employee count = %d, want 1", teamA.EmployeeCount)
	}
	matrixRow := f.row(t, "m-1#ASSESSMENT_MATRIX")
	if matrixRow.EmployeeCount != 2 {
		t.Errorf("matrix employee count = %d, want 2", matrixRow.EmployeeCount)
	}
	if matrixRow.GeneralAverage != 6 {
		t.Errorf("matrix average = %v, want 6", matrixRow.GeneralAverage)
	}
}

func TestRecomputeAnalyticsIsIdempotent(t *testing.T) {
	f := newAnalyticsFixture(t)
	f.seedAssessment(t, "ea-1", "team-a", model.StatusCompleted, 12)

	if err := f.svc.RecomputeAnalytics("m-1", "t-1"); err != nil {
		t.Fatalf("first recompute: %v", err)
	}
	first := f.row(t, "m-1#ASSESSMENT_MATRIX")

	if err := f.svc.RecomputeAnalytics("m-1", "t-1"); err != nil {
		t.Fatalf("second recompute: %v", err)
	}
	second := f.row(t, "m-1#ASSESSMENT_MATRIX")

	if len(f.store.rows) != 2 {
		t.Fatalf("rows after two runs = %d, want 2 (overwritten, not duplicated)", len(f.store.rows))
	}
	if first.GeneralAverage != second.GeneralAverage || first.CompletionPercentage != second.CompletionPercentage {
		t.Errorf("runs diverged: %+v vs %+v", first, second)
	}
}

func TestRecomputeAnalyticsBuildsWordCloud(t *testing.T) {
	f := newAnalyticsFixture(t)
	f.seedAssessment(t, "ea-1", "team-a", model.StatusCompleted, 10)
	for i, notes := range []string{"Great delivery", "great focus"} {
		if _, err := f.answers.Save(&model.Answer{
			EmployeeAssessmentID: "ea-1",
			QuestionID:           fmt.Sprintf("q-%d", i),
			Notes:                notes,
		}); err != nil {
			t.Fatalf("seed answer: %v", err)
		}
	}

	if err := f.svc.RecomputeAnalytics("m-1", "t-1"); err != nil {
		t.Fatalf("RecomputeAnalytics: %v", err)
	}

	row := f.row(t, "m-1#TEAM#team-a")
	if len(row.AnalyticsDataJSON) == 0 {
		t.Fatal("analytics data payload missing")
	}
	var payload struct {
		WordCloud map[string]int `json:"wordCloud"`
	}
	if err := json.Unmarshal(row.AnalyticsDataJSON, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.WordCloud["great"] != 2 {
		t.Errorf("word count for great = %d, want 2 (case-folded)", payload.WordCloud["great"])
	}
}

func TestRecomputeAnalyticsUnknownMatrix(t *testing.T) {
	f := newAnalyticsFixture(t)

	err := f.svc.RecomputeAnalytics("missing", "t-1")
	if !errors.Is(err, util.ErrInvalidIDReference) {
		t.Fatalf("error = %v, want ErrInvalidIDReference", err)
	}
}

func TestAnalyticsReads(t *testing.T) {
	f := newAnalyticsFixture(t)
	f.seedAssessment(t, "ea-1", "team-a", model.StatusCompleted, 10)
	f.seedAssessment(t, "ea-2", "team-b", model.StatusInvited, 0)
	if err := f.svc.RecomputeAnalytics("m-1", "t-1"); err != nil {
		t.Fatalf("RecomputeAnalytics: %v", err)
	}

	ctx := context.Background()

	overview, err := f.svc.GetOverview(ctx, "co-1", "cycle-1", "m-1")
	if err != nil {
		t.Fatalf("GetOverview: %v", err)
	}
	if overview.EmployeeCount != 2 {
		t.Errorf("overview employee count = %d, want 2", overview.EmployeeCount)
	}

	team, err := f.svc.GetTeamAnalytics(ctx, "co-1", "cycle-1", "m-1", "team-a")
	if err != nil {
		t.Fatalf("GetTeamAnalytics: %v", err)
	}
	if team.TeamID != "team-a" || team.CompletionPercentage != 100 {
		t.Errorf("team row = %+v, want team-a at 100%%", team)
	}

	if _, err := f.svc.GetTeamAnalytics(ctx, "co-1", "cycle-1", "m-1", "team-x"); !errors.Is(err, util.ErrInvalidIDReference) {
		t.Errorf("missing team error = %v, want ErrInvalidIDReference", err)
	}

	rows, err := f.svc.ListCycleAnalytics("co-1", "cycle-1")
	if err != nil {
		t.Fatalf("ListCycleAnalytics: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("cycle rows = %d, want 3", len(rows))
	}
}
