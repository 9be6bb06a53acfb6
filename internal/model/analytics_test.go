package model

import "testing"

func TestAnalyticsKeys(t *testing.T) {
	if got := AnalyticsCompanyPerformanceID("co-1", "cycle-1"); got != "co-1#cycle-1" {
		t.Errorf("company performance id = %q, want co-1#cycle-1", got)
	}

	if got := AnalyticsEntityID("m-1", ScopeAssessmentMatrix, ""); got != "m-1#ASSESSMENT_MATRIX" {
		t.Errorf("matrix entity id = %q, want m-1#ASSESSMENT_MATRIX", got)
	}
	// teamID is ignored outside TEAM scope
	if got := AnalyticsEntityID("m-1", ScopeAssessmentMatrix, "team-a"); got != "m-1#ASSESSMENT_MATRIX" {
		t.Errorf("matrix entity id with stray team = %q, want m-1#ASSESSMENT_MATRIX", got)
	}

	if got := AnalyticsEntityID("m-1", ScopeTeam, "team-a"); got != "m-1#TEAM#team-a" {
		t.Errorf("team entity id = %q, want m-1#TEAM#team-a", got)
	}
}
