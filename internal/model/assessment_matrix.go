package model

import "encoding/json"

type NavigationMode string

const (
	NavigationRandom     NavigationMode = "RANDOM"
	NavigationSequential NavigationMode = "SEQUENTIAL"
	NavigationFreeForm   NavigationMode = "FREE_FORM"
)

func (m NavigationMode) Valid() bool {
	switch m {
	case NavigationRandom, NavigationSequential, NavigationFreeForm:
		return true
	}
	return false
}

// AssessmentConfiguration carries the per-matrix navigation settings. It is
// read fresh on every navigation call and passed in by value so callers and
// tests can inject any mode deterministically.
type AssessmentConfiguration struct {
	NavigationMode      NavigationMode `gorm:"size:20;default:'RANDOM'" json:"navigationMode"`
	AllowQuestionReview bool           `gorm:"default:true" json:"allowQuestionReview"`
	RequireAllQuestions bool           `gorm:"default:true" json:"requireAllQuestions"`
	AutoSave            bool           `gorm:"default:true" json:"autoSave"`
}

// AssessmentMatrix owns the question set of one performance cycle. The
// potential score snapshot is stored on the matrix and recomputed whenever a
// question is added, edited or removed.
// swagger:model AssessmentMatrix
type AssessmentMatrix struct {
	UUIDBase
	TenantScoped
	CompanyID          string                  `gorm:"index;type:varchar(36)" json:"companyId"`
	PerformanceCycleID string                  `gorm:"index;type:varchar(36)" json:"performanceCycleId"`
	Name               string                  `gorm:"size:255;not null" json:"name"`
	Description        string                  `gorm:"type:text" json:"description"`
	QuestionCount      int                     `gorm:"default:0" json:"questionCount"`
	Configuration      AssessmentConfiguration `gorm:"embedded;embeddedPrefix:config_" json:"configuration"`
	PotentialScoreJSON json.RawMessage         `gorm:"column:potential_score;type:json" json:"-"`
}

func (AssessmentMatrix) TableName() string {
	return "assessment_matrices"
}

func (m *AssessmentMatrix) PotentialScore() (*PotentialScore, error) {
	if len(m.PotentialScoreJSON) == 0 {
		return nil, nil
	}
	var ps PotentialScore
	if err := json.Unmarshal(m.PotentialScoreJSON, &ps); err != nil {
		return nil, err
	}
	return &ps, nil
}

func (m *AssessmentMatrix) SetPotentialScore(ps *PotentialScore) error {
	if ps == nil {
		m.PotentialScoreJSON = nil
		return nil
	}
	raw, err := json.Marshal(ps)
	if err != nil {
		return err
	}
	m.PotentialScoreJSON = raw
	return nil
}
