package model

// Score value objects. These are never persisted as rows of their own; they
// are serialized as JSON onto their owning EmployeeAssessment or
// AssessmentMatrix.

// swagger:model CategoryScore
type CategoryScore struct {
	CategoryID   string  `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	Score        float64 `json:"score"`
}

// swagger:model PillarScore
type PillarScore struct {
	PillarID       string                   `json:"pillarId"`
	PillarName     string                   `json:"pillarName"`
	Score          float64                  `json:"score"`
	CategoryScores map[string]CategoryScore `json:"categoryScores"`
}

// EmployeeAssessmentScore is the actual-score snapshot for one employee
// assessment, recomputed whenever its answer set changes.
// swagger:model EmployeeAssessmentScore
type EmployeeAssessmentScore struct {
	Score        float64                `json:"score"`
	PillarScores map[string]PillarScore `json:"pillarScores"`
}

// PotentialScore is the maximum achievable score for an assessment matrix,
// derived from the question set alone.
// swagger:model PotentialScore
type PotentialScore struct {
	Score        float64                `json:"score"`
	PillarScores map[string]PillarScore `json:"pillarScores"`
}
