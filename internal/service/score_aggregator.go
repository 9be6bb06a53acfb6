package service

import (
	"perform_backend/internal/model"
)

// The score roll-up. One algorithm serves both trees: the actual tree feeds
// each answer's derived score into its question's category, the potential
// tree feeds each question's maximum points. Both are pure functions; callers
// recompute in full rather than patching incrementally.

type scoreContribution struct {
	pillarID     string
	pillarName   string
	categoryID   string
	categoryName string
	score        float64
}

// AggregateActual rolls the assessment's answers up into the
// category → pillar → total tree. The tree's shape comes from the question
// set, so unanswered questions contribute 0 instead of dropping their
// category from the result.
func AggregateActual(questions []model.Question, answers []model.Answer) model.EmployeeAssessmentScore {
	items := make([]scoreContribution, 0, len(questions)+len(answers))
	byID := make(map[string]*model.Question, len(questions))
	for i := range questions {
		q := &questions[i]
		byID[q.ID] = q
		items = append(items, scoreContribution{
			pillarID:     q.PillarID,
			pillarName:   q.PillarName,
			categoryID:   q.CategoryID,
			categoryName: q.CategoryName,
			score:        0,
		})
	}
	for _, a := range answers {
		item := scoreContribution{
			pillarID:   a.PillarID,
			categoryID: a.CategoryID,
			score:      a.Score,
		}
		if q, ok := byID[a.QuestionID]; ok {
			item.pillarID = q.PillarID
			item.pillarName = q.PillarName
			item.categoryID = q.CategoryID
			item.categoryName = q.CategoryName
		}
		items = append(items, item)
	}

	pillars, total := rollUp(items)
	return model.EmployeeAssessmentScore{Score: total, PillarScores: pillars}
}

// AggregatePotential builds the same tree from question configuration alone,
// with each question contributing exactly its Points.
func AggregatePotential(questions []model.Question) model.PotentialScore {
	items := make([]scoreContribution, len(questions))
	for i, q := range questions {
		items[i] = scoreContribution{
			pillarID:     q.PillarID,
			pillarName:   q.PillarName,
			categoryID:   q.CategoryID,
			categoryName: q.CategoryName,
			score:        MaxScore(&q),
		}
	}

	pillars, total := rollUp(items)
	return model.PotentialScore{Score: total, PillarScores: pillars}
}

func rollUp(items []scoreContribution) (map[string]model.PillarScore, float64) {
	pillars := make(map[string]model.PillarScore)
	var total float64

	for _, item := range items {
		pillar, ok := pillars[item.pillarID]
		if !ok {
			pillar = model.PillarScore{
				PillarID:       item.pillarID,
				PillarName:     item.pillarName,
				CategoryScores: make(map[string]model.CategoryScore),
			}
		}
		if pillar.PillarName == "" {
			pillar.PillarName = item.pillarName
		}

		category, ok := pillar.CategoryScores[item.categoryID]
		if !ok {
			category = model.CategoryScore{
				CategoryID:   item.categoryID,
				CategoryName: item.categoryName,
			}
		}
		if category.CategoryName == "" {
			category.CategoryName = item.categoryName
		}

		category.Score += item.score
		pillar.CategoryScores[item.categoryID] = category
		pillar.Score += item.score
		pillars[item.pillarID] = pillar
		total += item.score
	}

	return pillars, total
}
