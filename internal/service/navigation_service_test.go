package service

import (
	"errors"
	"fmt"
	"testing"

	"perform_backend/internal/model"
	"perform_backend/internal/util"
)

type navigationFixture struct {
	*assessmentFixture
	nav *NavigationService
}

func newNavigationFixture(t *testing.T) *navigationFixture {
	t.Helper()
	base := newAssessmentFixture(t)
	return &navigationFixture{
		assessmentFixture: base,
		nav:               NewNavigationService(base.employees, base.matrices, base.questions, base.answers, base.svc),
	}
}

func (f *navigationFixture) seedNavMatrix(t *testing.T, id string, mode model.NavigationMode, review bool) {
	t.Helper()
	f.matrices.put(model.AssessmentMatrix{
		UUIDBase:           model.UUIDBase{ID: id},
		TenantScoped:       model.TenantScoped{TenantID: "t-1"},
		CompanyID:          "co-1",
		PerformanceCycleID: "cycle-1",
		Name:               "Annual 2026",
		Configuration: model.AssessmentConfiguration{
			NavigationMode:      mode,
			AllowQuestionReview: review,
		},
	})
}

func freezeRand(t *testing.T, pick int) {
	t.Helper()
	orig := randIntn
	randIntn = func(n int) int { return pick % n }
	t.Cleanup(func() { randIntn = orig })
}

func TestGetNextUnansweredSequential(t *testing.T) {
	f := newNavigationFixture(t)
	f.seedNavMatrix(t, "m-1", model.NavigationSequential, true)
	for i := 1; i <= 10; i++ {
		f.seedQuestion(t, fmt.Sprintf("q-%02d", i), "m-1", model.QuestionYesNo, 5, i)
	}
	f.seedEmployee(t, "ea-1", "m-1", model.StatusInProgress)

	// first two questions answered: next must be the third
	for _, qid := range []string{"q-01", "q-02"} {
		if _, err := f.svc.SubmitAnswer(SubmitAnswerRequest{
			EmployeeAssessmentID: "ea-1", QuestionID: qid, Value: "true", TenantID: "t-1",
		}); err != nil {
			t.Fatalf("SubmitAnswer(%s): %v", qid, err)
		}
	}

	resp, err := f.nav.GetNextUnanswered("ea-1", "t-1")
	if err != nil {
		t.Fatalf("GetNextUnanswered: %v", err)
	}
	if resp.Question == nil || resp.Question.ID != "q-03" {
		t.Fatalf("next question = %+v, want q-03", resp.Question)
	}
	if resp.AnsweredCount != 2 || resp.TotalQuestions != 10 {
		t.Errorf("progress = %d/%d, want 2/10", resp.AnsweredCount, resp.TotalQuestions)
	}
	if resp.Status != model.StatusInProgress {
		t.Errorf("status = %s, want IN_PROGRESS", resp.Status)
	}
}

func TestGetNextUnansweredRandomIsFromUnansweredSet(t *testing.T) {
	f := newNavigationFixture(t)
	f.seedNavMatrix(t, "m-1", model.NavigationRandom, true)
	for i := 1; i <= 5; i++ {
		f.seedQuestion(t, fmt.Sprintf("q-%d", i), "m-1", model.QuestionYesNo, 5, i)
	}
	f.seedEmployee(t, "ea-1", "m-1", model.StatusInProgress)
	if _, err := f.svc.SubmitAnswer(SubmitAnswerRequest{
		EmployeeAssessmentID: "ea-1", QuestionID: "q-2", Value: "true", TenantID: "t-1",
	}); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	// unanswered are q-1, q-3, q-4, q-5 in canonical order; a frozen pick of
	// index 1 must land on q-3
	freezeRand(t, 1)

	resp, err := f.nav.GetNextUnanswered("ea-1", "t-1")
	if err != nil {
		t.Fatalf("GetNextUnanswered: %v", err)
	}
	if resp.Question == nil || resp.Question.ID != "q-3" {
		t.Fatalf("next question = %+v, want q-3", resp.Question)
	}
}

func TestGetNextUnansweredFreeFormBehavesLikeRandom(t *testing.T) {
	f := newNavigationFixture(t)
	f.seedNavMatrix(t, "m-1", model.NavigationFreeForm, true)
	for i := 1; i <= 3; i++ {
		f.seedQuestion(t, fmt.Sprintf("q-%d", i), "m-1", model.QuestionYesNo, 5, i)
	}
	f.seedEmployee(t, "ea-1", "m-1", model.StatusInProgress)
	freezeRand(t, 2)

	resp, err := f.nav.GetNextUnanswered("ea-1", "t-1")
	if err != nil {
		t.Fatalf("GetNextUnanswered: %v", err)
	}
	if resp.Question == nil || resp.Question.ID != "q-3" {
		t.Fatalf("next question = %+v, want q-3", resp.Question)
	}
}

func TestGetNextUnansweredPromotesConfirmed(t *testing.T) {
	f := newNavigationFixture(t)
	f.seedNavMatrix(t, "m-1", model.NavigationSequential, true)
	f.seedQuestion(t, "q-1", "m-1", model.QuestionYesNo, 5, 1)
	f.seedEmployee(t, "ea-1", "m-1", model.StatusConfirmed)

	resp, err := f.nav.GetNextUnanswered("ea-1", "t-1")
	if err != nil {
		t.Fatalf("GetNextUnanswered: %v", err)
	}
	if resp.Status != model.StatusInProgress {
		t.Errorf("response status = %s, want IN_PROGRESS", resp.Status)
	}
	ea, _ := f.employees.FindByID("ea-1", "t-1")
	if ea.AssessmentStatus != model.StatusInProgress {
		t.Errorf("persisted status = %s, want IN_PROGRESS", ea.AssessmentStatus)
	}
}

func TestGetNextUnansweredExcludesDeletedQuestionAnswers(t *testing.T) {
	f := newNavigationFixture(t)
	f.seedNavMatrix(t, "m-1", model.NavigationSequential, true)
	for i := 1; i <= 3; i++ {
		f.seedQuestion(t, fmt.Sprintf("q-%d", i), "m-1", model.QuestionYesNo, 5, i)
	}
	f.seedEmployee(t, "ea-1", "m-1", model.StatusInProgress)

	for _, qid := range []string{"q-1", "q-2"} {
		if _, err := f.svc.SubmitAnswer(SubmitAnswerRequest{
			EmployeeAssessmentID: "ea-1", QuestionID: qid, Value: "true", TenantID: "t-1",
		}); err != nil {
			t.Fatalf("SubmitAnswer(%s): %v", qid, err)
		}
	}
	if err := f.svc.DeleteQuestion("q-1", "t-1"); err != nil {
		t.Fatalf("DeleteQuestion: %v", err)
	}

	// q-1's stale answer must not inflate progress or trigger completion
	resp, err := f.nav.GetNextUnanswered("ea-1", "t-1")
	if err != nil {
		t.Fatalf("GetNextUnanswered: %v", err)
	}
	if resp.Question == nil || resp.Question.ID != "q-3" {
		t.Fatalf("next question = %+v, want q-3", resp.Question)
	}
	if resp.AnsweredCount != 1 || resp.TotalQuestions != 2 {
		t.Errorf("progress = %d/%d, want 1/2", resp.AnsweredCount, resp.TotalQuestions)
	}
	if resp.Status == model.StatusCompleted {
		t.Errorf("status = %s, want not COMPLETED while q-3 is open", resp.Status)
	}
}

func TestGetNextUnansweredFinalizesCompletion(t *testing.T) {
	f := newNavigationFixture(t)
	f.seedNavMatrix(t, "m-1", model.NavigationSequential, true)
	for i := 1; i <= 3; i++ {
		f.seedQuestion(t, fmt.Sprintf("q-%d", i), "m-1", model.QuestionYesNo, 5, i)
	}
	f.seedEmployee(t, "ea-1", "m-1", model.StatusInProgress)
	for i := 1; i <= 3; i++ {
		if _, err := f.answers.Save(&model.Answer{
			EmployeeAssessmentID: "ea-1",
			QuestionID:           fmt.Sprintf("q-%d", i),
			Value:                "true",
			Score:                5,
		}); err != nil {
			t.Fatalf("seed answer: %v", err)
		}
	}

	resp, err := f.nav.GetNextUnanswered("ea-1", "t-1")
	if err != nil {
		t.Fatalf("GetNextUnanswered: %v", err)
	}
	if resp.Question != nil {
		t.Errorf("question = %+v, want nil on completion", resp.Question)
	}
	if resp.Status != model.StatusCompleted {
		t.Errorf("status = %s, want COMPLETED", resp.Status)
	}

	ea, _ := f.employees.FindByID("ea-1", "t-1")
	if ea.AssessmentStatus != model.StatusCompleted {
		t.Fatalf("persisted status = %s, want COMPLETED", ea.AssessmentStatus)
	}

	// calling again on a completed assessment is a no-op
	again, err := f.nav.GetNextUnanswered("ea-1", "t-1")
	if err != nil {
		t.Fatalf("GetNextUnanswered again: %v", err)
	}
	if again.Question != nil || again.Status != model.StatusCompleted {
		t.Errorf("second call = %+v, want nil question and COMPLETED", again)
	}
}

func TestGetNextUnansweredEmptyMatrix(t *testing.T) {
	f := newNavigationFixture(t)
	f.seedNavMatrix(t, "m-1", model.NavigationSequential, true)
	f.seedEmployee(t, "ea-1", "m-1", model.StatusInProgress)

	resp, err := f.nav.GetNextUnanswered("ea-1", "t-1")
	if err != nil {
		t.Fatalf("GetNextUnanswered: %v", err)
	}
	if resp.Question != nil {
		t.Errorf("question = %+v, want nil for empty matrix", resp.Question)
	}
	if resp.Status == model.StatusCompleted {
		t.Error("empty matrix must not be treated as completed")
	}
}

func TestSaveAnswerAndGetNext(t *testing.T) {
	f := newNavigationFixture(t)
	f.seedNavMatrix(t, "m-1", model.NavigationSequential, true)
	f.seedQuestion(t, "q-1", "m-1", model.QuestionYesNo, 5, 1)
	f.seedQuestion(t, "q-2", "m-1", model.QuestionYesNo, 5, 2)
	f.seedEmployee(t, "ea-1", "m-1", model.StatusConfirmed)

	resp, err := f.nav.SaveAnswerAndGetNext(SubmitAnswerRequest{
		EmployeeAssessmentID: "ea-1",
		QuestionID:           "q-1",
		Value:                "true",
		TenantID:             "t-1",
	})
	if err != nil {
		t.Fatalf("SaveAnswerAndGetNext: %v", err)
	}
	if resp.Question == nil || resp.Question.ID != "q-2" {
		t.Fatalf("next question = %+v, want q-2", resp.Question)
	}
	if resp.AnsweredCount != 1 {
		t.Errorf("answered count = %d, want 1", resp.AnsweredCount)
	}

	// the last answer completes the assessment in the same call
	resp, err = f.nav.SaveAnswerAndGetNext(SubmitAnswerRequest{
		EmployeeAssessmentID: "ea-1",
		QuestionID:           "q-2",
		Value:                "false",
		TenantID:             "t-1",
	})
	if err != nil {
		t.Fatalf("SaveAnswerAndGetNext: %v", err)
	}
	if resp.Question != nil || resp.Status != model.StatusCompleted {
		t.Fatalf("final call = %+v, want nil question and COMPLETED", resp)
	}
}

func TestSaveAnswerAndGetNextPropagatesValidation(t *testing.T) {
	f := newNavigationFixture(t)
	f.seedNavMatrix(t, "m-1", model.NavigationSequential, true)
	f.seedQuestion(t, "q-1", "m-1", model.QuestionYesNo, 5, 1)
	f.seedEmployee(t, "ea-1", "m-1", model.StatusConfirmed)

	_, err := f.nav.SaveAnswerAndGetNext(SubmitAnswerRequest{
		EmployeeAssessmentID: "ea-1",
		QuestionID:           "q-1",
		Value:                "maybe",
		TenantID:             "t-1",
	})
	if !errors.Is(err, util.ErrInvalidAnswerValue) {
		t.Fatalf("error = %v, want ErrInvalidAnswerValue", err)
	}
}

func TestGetQuestionForReview(t *testing.T) {
	f := newNavigationFixture(t)
	f.seedNavMatrix(t, "m-1", model.NavigationFreeForm, true)
	f.seedQuestion(t, "q-1", "m-1", model.QuestionYesNo, 5, 1)
	f.seedEmployee(t, "ea-1", "m-1", model.StatusInProgress)
	if _, err := f.svc.SubmitAnswer(SubmitAnswerRequest{
		EmployeeAssessmentID: "ea-1", QuestionID: "q-1", Value: "true", TenantID: "t-1",
	}); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	resp, err := f.nav.GetQuestionForReview("ea-1", "q-1", "t-1")
	if err != nil {
		t.Fatalf("GetQuestionForReview: %v", err)
	}
	if resp.Question == nil || resp.Question.ID != "q-1" {
		t.Fatalf("question = %+v, want q-1", resp.Question)
	}
	if resp.ExistingAnswer == nil || resp.ExistingAnswer.Value != "true" {
		t.Fatalf("existing answer = %+v, want value true", resp.ExistingAnswer)
	}
}

func TestGetQuestionForReviewDisallowed(t *testing.T) {
	f := newNavigationFixture(t)
	f.seedNavMatrix(t, "m-1", model.NavigationSequential, false)
	f.seedQuestion(t, "q-1", "m-1", model.QuestionYesNo, 5, 1)
	f.seedEmployee(t, "ea-1", "m-1", model.StatusInProgress)

	_, err := f.nav.GetQuestionForReview("ea-1", "q-1", "t-1")
	if !errors.Is(err, util.ErrInvalidIDReference) {
		t.Fatalf("error = %v, want ErrInvalidIDReference", err)
	}
}

func TestGetNextUnansweredUnknownAssessment(t *testing.T) {
	f := newNavigationFixture(t)

	_, err := f.nav.GetNextUnanswered("missing", "t-1")
	if !errors.Is(err, util.ErrInvalidIDReference) {
		t.Fatalf("error = %v, want ErrInvalidIDReference", err)
	}
}
