package model

import (
	"encoding/json"
	"time"
)

type AnalyticsScope string

const (
	ScopeTeam             AnalyticsScope = "TEAM"
	ScopeAssessmentMatrix AnalyticsScope = "ASSESSMENT_MATRIX"
)

// DashboardAnalytics is a precomputed, fully-overwritable dashboard snapshot.
// It is derived data only: safe to delete and regenerate at any time, and no
// other entity references it.
//
// Identity is composite so all rows for one company+cycle can be range-scanned
// together while each matrix/scope/team combination stays independently
// addressable:
//
//	company_performance_id = companyId#performanceCycleId
//	entity_id              = matrixId#ASSESSMENT_MATRIX
//	                       | matrixId#TEAM#teamId
//
// swagger:model DashboardAnalytics
type DashboardAnalytics struct {
	CompanyPerformanceID string          `gorm:"primaryKey;size:80" json:"companyPerformanceId"`
	EntityID             string          `gorm:"primaryKey;size:130" json:"entityId"`
	TenantID             string          `gorm:"index;size:36" json:"tenantId"`
	CompanyID            string          `gorm:"type:varchar(36)" json:"companyId"`
	PerformanceCycleID   string          `gorm:"type:varchar(36)" json:"performanceCycleId"`
	AssessmentMatrixID   string          `gorm:"index;type:varchar(36)" json:"assessmentMatrixId"`
	Scope                AnalyticsScope  `gorm:"size:20" json:"scope"`
	TeamID               string          `gorm:"type:varchar(36)" json:"teamId,omitempty"`
	TeamName             string          `gorm:"size:255" json:"teamName,omitempty"`
	CompanyName          string          `gorm:"size:255" json:"companyName,omitempty"`
	PerformanceCycleName string          `gorm:"size:255" json:"performanceCycleName,omitempty"`
	AssessmentMatrixName string          `gorm:"size:255" json:"assessmentMatrixName,omitempty"`
	EmployeeCount        int             `gorm:"default:0" json:"employeeCount"`
	CompletionPercentage float64         `gorm:"default:0" json:"completionPercentage"`
	GeneralAverage       float64         `gorm:"default:0" json:"generalAverage"`
	AnalyticsDataJSON    json.RawMessage `gorm:"column:analytics_data;type:json" json:"analyticsData,omitempty"`
	LastUpdated          time.Time       `json:"lastUpdated"`
}

func (DashboardAnalytics) TableName() string {
	return "dashboard_analytics"
}

const analyticsKeySep = "#"

// AnalyticsCompanyPerformanceID builds the range-scan half of the snapshot key.
func AnalyticsCompanyPerformanceID(companyID, performanceCycleID string) string {
	return companyID + analyticsKeySep + performanceCycleID
}

// AnalyticsEntityID builds the point-lookup half of the snapshot key. teamID
// is only used for TEAM scope.
func AnalyticsEntityID(assessmentMatrixID string, scope AnalyticsScope, teamID string) string {
	if scope == ScopeTeam {
		return assessmentMatrixID + analyticsKeySep + string(ScopeTeam) + analyticsKeySep + teamID
	}
	return assessmentMatrixID + analyticsKeySep + string(ScopeAssessmentMatrix)
}
