package model

import "time"

// Answer holds one employee's submitted value for one question. At most one
// row exists per (employee assessment, question); a resubmission updates the
// existing row in place.
// swagger:model Answer
type Answer struct {
	UUIDBase
	TenantScoped
	EmployeeAssessmentID string    `gorm:"uniqueIndex:idx_answers_assessment_question;type:varchar(36)" json:"employeeAssessmentId"`
	QuestionID           string    `gorm:"uniqueIndex:idx_answers_assessment_question;type:varchar(36)" json:"questionId"`
	PillarID             string    `gorm:"type:varchar(36)" json:"pillarId"`
	CategoryID           string    `gorm:"type:varchar(36)" json:"categoryId"`
	QuestionType         QuestionType `gorm:"size:50" json:"questionType"`
	Value                string    `gorm:"type:text" json:"value"`
	Score                float64   `gorm:"default:0" json:"score"`
	PendingReview        bool      `gorm:"default:false" json:"pendingReview"`
	Notes                string    `gorm:"type:text" json:"notes"`
	AnsweredAt           time.Time `json:"answeredAt"`
}

func (Answer) TableName() string {
	return "answers"
}
