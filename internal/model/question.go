package model

import "encoding/json"

type QuestionType string

const (
	QuestionYesNo      QuestionType = "YES_NO"
	QuestionGoodBad    QuestionType = "GOOD_BAD"
	QuestionStarThree  QuestionType = "STAR_THREE"
	QuestionStarFive   QuestionType = "STAR_FIVE"
	QuestionOneToTen   QuestionType = "ONE_TO_TEN"
	QuestionOpenAnswer QuestionType = "OPEN_ANSWER"
	QuestionCustomized QuestionType = "CUSTOMIZED"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionYesNo, QuestionGoodBad, QuestionStarThree, QuestionStarFive,
		QuestionOneToTen, QuestionOpenAnswer, QuestionCustomized:
		return true
	}
	return false
}

// QuestionOption is one selectable option of a CUSTOMIZED question,
// stored as part of the question's Options JSON column.
type QuestionOption struct {
	ID     string  `json:"id"`
	Text   string  `json:"text"`
	Points float64 `json:"points"`
}

// Question belongs to one Pillar and one Category within an assessment matrix.
// Points is the maximum score the question can contribute, for every type.
// swagger:model Question
type Question struct {
	UUIDBase
	TenantScoped
	AssessmentMatrixID string          `gorm:"index;type:varchar(36)" json:"assessmentMatrixId"`
	PillarID           string          `gorm:"index;type:varchar(36)" json:"pillarId"`
	PillarName         string          `gorm:"size:255" json:"pillarName"`
	CategoryID         string          `gorm:"index;type:varchar(36)" json:"categoryId"`
	CategoryName       string          `gorm:"size:255" json:"categoryName"`
	QuestionType       QuestionType    `gorm:"size:50;not null" json:"questionType"`
	Text               string          `gorm:"type:text;not null" json:"text"`
	Points             float64         `gorm:"default:0" json:"points"`
	Order              int             `gorm:"column:question_order;default:0" json:"order"`
	MultipleChoice     bool            `gorm:"default:false" json:"multipleChoice"`
	Options            json.RawMessage `gorm:"type:json" json:"options,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// OptionList decodes the Options column. Nil Options yields an empty list.
func (q *Question) OptionList() ([]QuestionOption, error) {
	if len(q.Options) == 0 {
		return nil, nil
	}
	var opts []QuestionOption
	if err := json.Unmarshal(q.Options, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}
