package service

import (
	"context"
	"fmt"
	"sort"

	"perform_backend/internal/model"

	"gorm.io/gorm"
)

// In-memory stand-ins for the gorm repositories. They keep copies, hand out
// fresh pointers, and count the calls the batching tests care about.

type fakeQuestionStore struct {
	questions map[string]model.Question
	seq       int
}

func newFakeQuestionStore() *fakeQuestionStore {
	return &fakeQuestionStore{questions: make(map[string]model.Question)}
}

func (f *fakeQuestionStore) Create(q *model.Question) error {
	if q.ID == "" {
		f.seq++
		q.ID = fmt.Sprintf("q-%d", f.seq)
	}
	f.questions[q.ID] = *q
	return nil
}

func (f *fakeQuestionStore) FindByID(id, tenantID string) (*model.Question, error) {
	q, ok := f.questions[id]
	if !ok || q.TenantID != tenantID {
		return nil, gorm.ErrRecordNotFound
	}
	out := q
	return &out, nil
}

func (f *fakeQuestionStore) ListByMatrix(matrixID, tenantID string) ([]model.Question, error) {
	var out []model.Question
	for _, q := range f.questions {
		if q.AssessmentMatrixID == matrixID && q.TenantID == tenantID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeQuestionStore) Update(q *model.Question) error {
	if _, ok := f.questions[q.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.questions[q.ID] = *q
	return nil
}

func (f *fakeQuestionStore) Delete(id, tenantID string) error {
	delete(f.questions, id)
	return nil
}

type fakeAnswerStore struct {
	answers map[string]model.Answer // key: eaID|questionID
	seq     int
}

func newFakeAnswerStore() *fakeAnswerStore {
	return &fakeAnswerStore{answers: make(map[string]model.Answer)}
}

func answerKey(eaID, questionID string) string {
	return eaID + "|" + questionID
}

func (f *fakeAnswerStore) Save(a *model.Answer) (*model.Answer, error) {
	if a.ID == "" {
		f.seq++
		a.ID = fmt.Sprintf("ans-%d", f.seq)
	}
	f.answers[answerKey(a.EmployeeAssessmentID, a.QuestionID)] = *a
	out := *a
	return &out, nil
}

func (f *fakeAnswerStore) FindByAssessmentAndQuestion(eaID, questionID string) (*model.Answer, error) {
	a, ok := f.answers[answerKey(eaID, questionID)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := a
	return &out, nil
}

func (f *fakeAnswerStore) ListByEmployeeAssessment(eaID string) ([]model.Answer, error) {
	var out []model.Answer
	for _, a := range f.answers {
		if a.EmployeeAssessmentID == eaID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAnswerStore) ListAnsweredQuestionIDs(eaID string) ([]string, error) {
	answers, _ := f.ListByEmployeeAssessment(eaID)
	ids := make([]string, 0, len(answers))
	for _, a := range answers {
		ids = append(ids, a.QuestionID)
	}
	return ids, nil
}

func (f *fakeAnswerStore) ListByEmployeeAssessmentIDs(eaIDs []string) ([]model.Answer, error) {
	want := make(map[string]bool, len(eaIDs))
	for _, id := range eaIDs {
		want[id] = true
	}
	var out []model.Answer
	for _, a := range f.answers {
		if want[a.EmployeeAssessmentID] {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// fakeBatchAnswerStore counts the batched loads the analytics tests assert on.
type fakeBatchAnswerStore struct {
	*fakeAnswerStore
	batchCalls int
}

func (f *fakeBatchAnswerStore) ListByEmployeeAssessmentIDs(eaIDs []string) ([]model.Answer, error) {
	f.batchCalls++
	return f.fakeAnswerStore.ListByEmployeeAssessmentIDs(eaIDs)
}

type fakeEmployeeStore struct {
	assessments map[string]model.EmployeeAssessment
	seq         int
	listCalls   int
}

func newFakeEmployeeStore() *fakeEmployeeStore {
	return &fakeEmployeeStore{assessments: make(map[string]model.EmployeeAssessment)}
}

func (f *fakeEmployeeStore) Create(ea *model.EmployeeAssessment) error {
	if ea.ID == "" {
		f.seq++
		ea.ID = fmt.Sprintf("ea-%d", f.seq)
	}
	f.assessments[ea.ID] = *ea
	return nil
}

func (f *fakeEmployeeStore) FindByID(id, tenantID string) (*model.EmployeeAssessment, error) {
	ea, ok := f.assessments[id]
	if !ok || ea.TenantID != tenantID {
		return nil, gorm.ErrRecordNotFound
	}
	out := ea
	return &out, nil
}

func (f *fakeEmployeeStore) Save(ea *model.EmployeeAssessment) (*model.EmployeeAssessment, error) {
	f.assessments[ea.ID] = *ea
	out := *ea
	return &out, nil
}

func (f *fakeEmployeeStore) ListByMatrix(matrixID, tenantID string) ([]model.EmployeeAssessment, error) {
	f.listCalls++
	var out []model.EmployeeAssessment
	for _, ea := range f.assessments {
		if ea.AssessmentMatrixID == matrixID && ea.TenantID == tenantID {
			out = append(out, ea)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEmployeeStore) ExistsByMatrixAndEmail(matrixID, email, tenantID string) (bool, error) {
	for _, ea := range f.assessments {
		if ea.AssessmentMatrixID == matrixID && ea.EmployeeEmail == email && ea.TenantID == tenantID {
			return true, nil
		}
	}
	return false, nil
}

type fakeMatrixStore struct {
	matrices map[string]model.AssessmentMatrix
}

func newFakeMatrixStore() *fakeMatrixStore {
	return &fakeMatrixStore{matrices: make(map[string]model.AssessmentMatrix)}
}

func (f *fakeMatrixStore) put(m model.AssessmentMatrix) {
	f.matrices[m.ID] = m
}

func (f *fakeMatrixStore) FindByID(id, tenantID string) (*model.AssessmentMatrix, error) {
	m, ok := f.matrices[id]
	if !ok || m.TenantID != tenantID {
		return nil, gorm.ErrRecordNotFound
	}
	out := m
	return &out, nil
}

func (f *fakeMatrixStore) Save(m *model.AssessmentMatrix) (*model.AssessmentMatrix, error) {
	f.matrices[m.ID] = *m
	out := *m
	return &out, nil
}

type fakeTeamStore struct {
	teams     map[string]model.Team
	findCalls int
}

func newFakeTeamStore() *fakeTeamStore {
	return &fakeTeamStore{teams: make(map[string]model.Team)}
}

func (f *fakeTeamStore) FindByIDs(ids []string, tenantID string) ([]model.Team, error) {
	f.findCalls++
	var out []model.Team
	for _, id := range ids {
		if t, ok := f.teams[id]; ok && t.TenantID == tenantID {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeAnalyticsStore struct {
	rows      map[string]model.DashboardAnalytics // key: cpID|entityID
	saveCalls int
}

func newFakeAnalyticsStore() *fakeAnalyticsStore {
	return &fakeAnalyticsStore{rows: make(map[string]model.DashboardAnalytics)}
}

func (f *fakeAnalyticsStore) FindByKey(ctx context.Context, companyPerformanceID, entityID string) (*model.DashboardAnalytics, error) {
	row, ok := f.rows[companyPerformanceID+"|"+entityID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := row
	return &out, nil
}

func (f *fakeAnalyticsStore) ListByCompanyPerformance(companyPerformanceID string) ([]model.DashboardAnalytics, error) {
	var out []model.DashboardAnalytics
	for _, row := range f.rows {
		if row.CompanyPerformanceID == companyPerformanceID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntityID < out[j].EntityID })
	return out, nil
}

func (f *fakeAnalyticsStore) SaveAll(rows []model.DashboardAnalytics) error {
	f.saveCalls++
	for _, row := range rows {
		f.rows[row.CompanyPerformanceID+"|"+row.EntityID] = row
	}
	return nil
}
