package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/lshigami/mcqdesk/internal/model"
	"github.com/lshigami/mcqdesk/internal/repository"
	"gorm.io/gorm"
)

/* ---------------- In-memory fakes for the repository interfaces ---------------- */

type fakeStore struct {
	assessments map[uint]*model.Assessment
	questions   map[uint]*model.Question
	attempts    map[uint]*model.Attempt
	nextID      uint
	failBatch   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		assessments: map[uint]*model.Assessment{},
		questions:   map[uint]*model.Question{},
		attempts:    map[uint]*model.Attempt{},
	}
}

func (s *fakeStore) id() uint {
	s.nextID++
	return s.nextID
}

type fakeAssessmentRepo struct{ s *fakeStore }

func (r fakeAssessmentRepo) Create(a *model.Assessment) error {
	for _, existing := range r.s.assessments {
		if existing.Title == a.Title {
			return gorm.ErrDuplicatedKey
		}
	}
	a.ID = r.s.id()
	a.CreatedAt = time.Now()
	for i := range a.Questions {
		a.Questions[i].ID = r.s.id()
		a.Questions[i].AssessmentID = a.ID
		q := a.Questions[i]
		r.s.questions[q.ID] = &q
	}
	stored := *a
	stored.Questions = nil
	r.s.assessments[a.ID] = &stored
	return nil
}

func (r fakeAssessmentRepo) Update(a *model.Assessment) error {
	stored := *a
	stored.Questions = nil
	r.s.assessments[a.ID] = &stored
	return nil
}

func (r fakeAssessmentRepo) FindByID(id uint) (*model.Assessment, error) {
	a, ok := r.s.assessments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (r fakeAssessmentRepo) FindByIDWithQuestions(id uint) (*model.Assessment, error) {
	a, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	a.Questions, _ = fakeQuestionRepo(r).FindByAssessmentID(id)
	return a, nil
}

func (r fakeAssessmentRepo) FindAllWithQuestionCount(status string) ([]repository.AssessmentWithCount, error) {
	var out []repository.AssessmentWithCount
	for _, a := range r.s.assessments {
		if status != "" && a.Status != status {
			continue
		}
		n, _ := fakeQuestionRepo(r).CountByAssessmentID(a.ID)
		out = append(out, repository.AssessmentWithCount{Assessment: *a, QuestionCount: int(n)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Assessment.ID > out[j].Assessment.ID })
	return out, nil
}

type fakeQuestionRepo struct{ s *fakeStore }

func (r fakeQuestionRepo) AppendToAssessment(assessmentID uint, questions []model.Question) error {
	if r.s.failBatch != nil {
		return r.s.failBatch
	}
	a, ok := r.s.assessments[assessmentID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if a.Status != model.AssessmentStatusDraft {
		return repository.ErrAssessmentNotDraft
	}
	last := r.maxOrder(assessmentID)
	for i := range questions {
		questions[i].ID = r.s.id()
		questions[i].AssessmentID = assessmentID
		questions[i].OrderInAssessment = last + 1 + i
		q := questions[i]
		r.s.questions[q.ID] = &q
	}
	return nil
}

func (r fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	q, ok := r.s.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *q
	return &cp, nil
}

func (r fakeQuestionRepo) FindByAssessmentID(assessmentID uint) ([]model.Question, error) {
	var out []model.Question
	for _, q := range r.s.questions {
		if q.AssessmentID == assessmentID {
			out = append(out, *q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderInAssessment < out[j].OrderInAssessment })
	return out, nil
}

func (r fakeQuestionRepo) CountByAssessmentID(assessmentID uint) (int64, error) {
	qs, _ := r.FindByAssessmentID(assessmentID)
	return int64(len(qs)), nil
}

func (r fakeQuestionRepo) maxOrder(assessmentID uint) int {
	max := 0
	for _, q := range r.s.questions {
		if q.AssessmentID == assessmentID && q.OrderInAssessment > max {
			max = q.OrderInAssessment
		}
	}
	return max
}

func (r fakeQuestionRepo) Delete(id uint) error {
	delete(r.s.questions, id)
	return nil
}

type fakeAttemptRepo struct{ s *fakeStore }

func (r fakeAttemptRepo) Create(at *model.Attempt) error {
	at.ID = r.s.id()
	for i := range at.Answers {
		at.Answers[i].ID = r.s.id()
		at.Answers[i].AttemptID = at.ID
	}
	cp := *at
	r.s.attempts[at.ID] = &cp
	return nil
}

func (r fakeAttemptRepo) FindByIDWithDetails(id uint) (*model.Attempt, error) {
	at, ok := r.s.attempts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *at
	if a, ok := r.s.assessments[at.AssessmentID]; ok {
		cp.Assessment = *a
	}
	cp.Answers = append([]model.Answer(nil), at.Answers...)
	for i := range cp.Answers {
		if q, ok := r.s.questions[cp.Answers[i].QuestionID]; ok {
			cp.Answers[i].Question = *q
		}
	}
	return &cp, nil
}

func (r fakeAttemptRepo) FindAllByAssessmentAndUser(assessmentID uint, userID *uint) ([]model.Attempt, error) {
	var out []model.Attempt
	for _, at := range r.s.attempts {
		if at.AssessmentID != assessmentID {
			continue
		}
		if userID != nil && (at.UserID == nil || *at.UserID != *userID) {
			continue
		}
		out = append(out, *at)
	}
	return out, nil
}

type fakeAttendanceRepo struct {
	records map[string]model.AttendanceRecord
	fail    error
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: map[string]model.AttendanceRecord{}}
}

func attendanceKey(session string, student uint) string {
	return fmt.Sprintf("%s|%d", session, student)
}

func (r *fakeAttendanceRepo) Upsert(records []model.AttendanceRecord) error {
	if r.fail != nil {
		return r.fail
	}
	for _, rec := range records {
		k := attendanceKey(rec.SessionID, rec.StudentID)
		if existing, ok := r.records[k]; ok {
			rec.ID = existing.ID
		} else {
			rec.ID = uint(len(r.records) + 1)
		}
		r.records[k] = rec
	}
	return nil
}

func (r *fakeAttendanceRepo) FindBySession(sessionID string) ([]model.AttendanceRecord, error) {
	var out []model.AttendanceRecord
	for _, rec := range r.records {
		if rec.SessionID == sessionID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StudentID < out[j].StudentID })
	return out, nil
}

func (r *fakeAttendanceRepo) CountByStudent(studentID uint) ([]repository.StatusCount, error) {
	byStatus := map[string]int{}
	for _, rec := range r.records {
		if rec.StudentID == studentID {
			byStatus[rec.Status]++
		}
	}
	var out []repository.StatusCount
	for st, n := range byStatus {
		out = append(out, repository.StatusCount{Status: st, Count: n})
	}
	return out, nil
}

type fakeGenerator struct {
	reply  string
	err    error
	prompt string
}

func (g *fakeGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.reply, g.err
}
