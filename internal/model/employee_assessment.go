package model

import (
	"encoding/json"
	"time"
)

type AssessmentStatus string

const (
	StatusInvited    AssessmentStatus = "INVITED"
	StatusConfirmed  AssessmentStatus = "CONFIRMED"
	StatusInProgress AssessmentStatus = "IN_PROGRESS"
	StatusCompleted  AssessmentStatus = "COMPLETED"
)

var statusRank = map[AssessmentStatus]int{
	StatusInvited:    0,
	StatusConfirmed:  1,
	StatusInProgress: 2,
	StatusCompleted:  3,
}

// CanTransitionTo reports whether moving to next is a forward move. The
// lifecycle is monotonic: no backward transitions and no transition out of
// COMPLETED.
func (s AssessmentStatus) CanTransitionTo(next AssessmentStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// EmployeeAssessment is the unit of progress tracking for one employee on one
// assessment matrix.
// swagger:model EmployeeAssessment
type EmployeeAssessment struct {
	UUIDBase
	TenantScoped
	AssessmentMatrixID    string           `gorm:"uniqueIndex:idx_employee_assessments_matrix_email;type:varchar(36)" json:"assessmentMatrixId"`
	EmployeeEmail         string           `gorm:"uniqueIndex:idx_employee_assessments_matrix_email;size:255" json:"employeeEmail"`
	EmployeeName          string           `gorm:"size:255" json:"employeeName"`
	TeamID                string           `gorm:"index;type:varchar(36)" json:"teamId,omitempty"`
	AssessmentStatus      AssessmentStatus `gorm:"size:20;default:'INVITED'" json:"assessmentStatus"`
	AnsweredQuestionCount int              `gorm:"default:0" json:"answeredQuestionCount"`
	LastActivityDate      *time.Time       `json:"lastActivityDate,omitempty"`
	ScoreJSON             json.RawMessage  `gorm:"column:score;type:json" json:"-"`
}

func (EmployeeAssessment) TableName() string {
	return "employee_assessments"
}

func (ea *EmployeeAssessment) Score() (*EmployeeAssessmentScore, error) {
	if len(ea.ScoreJSON) == 0 {
		return nil, nil
	}
	var s EmployeeAssessmentScore
	if err := json.Unmarshal(ea.ScoreJSON, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (ea *EmployeeAssessment) SetScore(s *EmployeeAssessmentScore) error {
	if s == nil {
		ea.ScoreJSON = nil
		return nil
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	ea.ScoreJSON = raw
	return nil
}
