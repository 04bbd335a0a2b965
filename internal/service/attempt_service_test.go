package service

import (
	"testing"

	"github.com/lshigami/mcqdesk/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPublished(t *testing.T, n int) (*fakeStore, AttemptService, *dto.AssessmentResponseDTO) {
	st, assessments := setupAssessments()
	inputs := make([]dto.QuestionInputDTO, n)
	for i := range inputs {
		inputs[i] = validInput("Q") // correct option C
	}
	a, err := assessments.CreateAssessment(dto.AssessmentCreateDTO{Title: "Quiz", PassPercentage: 60, Questions: inputs})
	require.NoError(t, err)
	a, err = assessments.PublishAssessment(a.ID)
	require.NoError(t, err)
	return st, NewAttemptService(fakeAssessmentRepo{st}, fakeAttemptRepo{st}), a
}

func TestGetForLearnerHidesAnswers(t *testing.T) {
	_, svc, a := setupPublished(t, 2)
	got, err := svc.GetForLearner(a.ID)
	require.NoError(t, err)
	require.Len(t, got.Questions, 2)
	assert.Equal(t, "a", got.Questions[0].OptionA)
	assert.Equal(t, a.Questions[0].ID, got.Questions[0].ID)
}

func TestGetForLearnerDraftIsHidden(t *testing.T) {
	st, svc, _ := setupPublished(t, 1)
	draft, err := NewAssessmentService(fakeAssessmentRepo{st}, fakeQuestionRepo{st}).
		CreateAssessment(dto.AssessmentCreateDTO{Title: "Draft", Questions: []dto.QuestionInputDTO{validInput("Q")}})
	require.NoError(t, err)

	_, err = svc.GetForLearner(draft.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.SubmitAttempt(draft.ID, dto.AttemptSubmitDTO{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitAttemptGrades(t *testing.T) {
	_, svc, a := setupPublished(t, 4)
	uid := uint(7)

	res, err := svc.SubmitAttempt(a.ID, dto.AttemptSubmitDTO{
		UserID: &uid,
		Answers: []dto.UserAnswerDTO{
			{QuestionID: a.Questions[0].ID, SelectedOption: "c"},
			{QuestionID: a.Questions[1].ID, SelectedOption: "C"},
			{QuestionID: a.Questions[2].ID, SelectedOption: "A"},
			{QuestionID: 9999, SelectedOption: "C"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Score)
	assert.Equal(t, 4, res.MaxScore)
	assert.Equal(t, 50.0, res.Percentage)
	assert.False(t, res.Passed)
	assert.Equal(t, "Quiz", res.AssessmentTitle)
	require.Len(t, res.Answers, 4)
	assert.True(t, res.Answers[0].IsCorrect)
	assert.False(t, res.Answers[2].IsCorrect)
	assert.Equal(t, "", res.Answers[3].SelectedOption)
	assert.Equal(t, "C", res.Answers[3].CorrectOption)

	got, err := svc.GetAttempt(res.ID)
	require.NoError(t, err)
	assert.Equal(t, res.Score, got.Score)

	list, err := svc.ListAttempts(a.ID, &uid)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	other := uint(8)
	list, err = svc.ListAttempts(a.ID, &other)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSubmitAttemptPasses(t *testing.T) {
	_, svc, a := setupPublished(t, 3)
	res, err := svc.SubmitAttempt(a.ID, dto.AttemptSubmitDTO{Answers: []dto.UserAnswerDTO{
		{QuestionID: a.Questions[0].ID, SelectedOption: "C"},
		{QuestionID: a.Questions[1].ID, SelectedOption: "C"},
	}})
	require.NoError(t, err)
	assert.Equal(t, 66.67, res.Percentage)
	assert.True(t, res.Passed)
}

func TestSubmitAttemptRejectsBadAnswers(t *testing.T) {
	_, svc, a := setupPublished(t, 1)
	qid := a.Questions[0].ID

	_, err := svc.SubmitAttempt(a.ID, dto.AttemptSubmitDTO{Answers: []dto.UserAnswerDTO{
		{QuestionID: qid, SelectedOption: "A"},
		{QuestionID: qid, SelectedOption: "B"},
	}})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = svc.SubmitAttempt(a.ID, dto.AttemptSubmitDTO{Answers: []dto.UserAnswerDTO{
		{QuestionID: qid, SelectedOption: "E"},
	}})
	assert.ErrorAs(t, err, &verr)
}

func TestSubmitAttemptUnknownAttempt(t *testing.T) {
	_, svc, _ := setupPublished(t, 1)
	_, err := svc.GetAttempt(12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListPublished(t *testing.T) {
	st, svc, a := setupPublished(t, 1)
	_, err := NewAssessmentService(fakeAssessmentRepo{st}, fakeQuestionRepo{st}).CreateAssessment(dto.AssessmentCreateDTO{Title: "Draft"})
	require.NoError(t, err)

	list, err := svc.ListPublished()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)
}
