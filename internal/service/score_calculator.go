package service

import (
	"fmt"
	"strconv"
	"strings"

	"perform_backend/internal/model"
	"perform_backend/internal/util"
)

// ScoredAnswer is the outcome of scoring one raw value against one question.
type ScoredAnswer struct {
	Score         float64
	PendingReview bool
}

type scoreFunc func(q *model.Question, value string) (ScoredAnswer, error)

// scoreFuncs dispatches per question type. Adding a type means adding one
// entry here.
var scoreFuncs = map[model.QuestionType]scoreFunc{
	model.QuestionYesNo:      scoreBool,
	model.QuestionGoodBad:    scoreBool,
	model.QuestionStarThree:  ratingScorer(3),
	model.QuestionStarFive:   ratingScorer(5),
	model.QuestionOneToTen:   ratingScorer(10),
	model.QuestionOpenAnswer: scoreOpenAnswer,
	model.QuestionCustomized: scoreCustomized,
}

// CalculateScore validates value against the question type's domain and
// returns the derived score in [0, q.Points]. Out-of-domain values fail with
// util.ErrInvalidAnswerValue before any persistence happens.
func CalculateScore(q *model.Question, value string) (ScoredAnswer, error) {
	fn, ok := scoreFuncs[q.QuestionType]
	if !ok {
		return ScoredAnswer{}, fmt.Errorf("%w: unknown question type %q", util.ErrInvalidAnswerValue, q.QuestionType)
	}
	return fn(q, value)
}

// MaxScore is the maximum achievable score for any question type. The
// potential-score computation uses this instead of the per-answer calculator:
// an actual score may fall below Points, the potential is always exactly
// Points.
func MaxScore(q *model.Question) float64 {
	return q.Points
}

func scoreBool(q *model.Question, value string) (ScoredAnswer, error) {
	switch value {
	case "true":
		return ScoredAnswer{Score: q.Points}, nil
	case "false":
		return ScoredAnswer{Score: 0}, nil
	}
	return ScoredAnswer{}, fmt.Errorf("%w: %q is not a boolean value", util.ErrInvalidAnswerValue, value)
}

func ratingScorer(max int) scoreFunc {
	return func(q *model.Question, value string) (ScoredAnswer, error) {
		v, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return ScoredAnswer{}, fmt.Errorf("%w: %q is not an integer", util.ErrInvalidAnswerValue, value)
		}
		if v < 1 || v > max {
			return ScoredAnswer{}, fmt.Errorf("%w: %d is outside 1-%d", util.ErrInvalidAnswerValue, v, max)
		}
		return ScoredAnswer{Score: float64(v) / float64(max) * q.Points}, nil
	}
}

func scoreOpenAnswer(q *model.Question, value string) (ScoredAnswer, error) {
	if strings.TrimSpace(value) == "" {
		return ScoredAnswer{}, fmt.Errorf("%w: empty free-text answer", util.ErrInvalidAnswerValue)
	}
	// free text carries no numeric score until reviewed
	return ScoredAnswer{Score: 0, PendingReview: true}, nil
}

// scoreCustomized scores a comma-separated list of option ids against the
// question's configured option list. Multi-choice questions sum the selected
// options' points, single-choice take the highest; either way the result is
// clamped to q.Points.
func scoreCustomized(q *model.Question, value string) (ScoredAnswer, error) {
	opts, err := q.OptionList()
	if err != nil {
		return ScoredAnswer{}, fmt.Errorf("%w: malformed option list: %v", util.ErrInvalidAnswerValue, err)
	}
	if len(opts) == 0 {
		return ScoredAnswer{}, fmt.Errorf("%w: question has no options", util.ErrInvalidAnswerValue)
	}

	pointsByID := make(map[string]float64, len(opts))
	for _, opt := range opts {
		pointsByID[opt.ID] = opt.Points
	}

	selected := strings.Split(value, ",")
	seen := make(map[string]bool, len(selected))
	var ids []string
	for _, raw := range selected {
		id := strings.TrimSpace(raw)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return ScoredAnswer{}, fmt.Errorf("%w: no option selected", util.ErrInvalidAnswerValue)
	}
	if !q.MultipleChoice && len(ids) > 1 {
		return ScoredAnswer{}, fmt.Errorf("%w: question accepts a single option, got %d", util.ErrInvalidAnswerValue, len(ids))
	}

	var score float64
	for _, id := range ids {
		pts, ok := pointsByID[id]
		if !ok {
			return ScoredAnswer{}, fmt.Errorf("%w: unknown option id %q", util.ErrInvalidAnswerValue, id)
		}
		if q.MultipleChoice {
			score += pts
		} else if pts > score {
			score = pts
		}
	}

	if score > q.Points {
		score = q.Points
	}
	return ScoredAnswer{Score: score}, nil
}
