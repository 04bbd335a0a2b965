package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/mcqdesk/internal/dto"
	"github.com/lshigami/mcqdesk/internal/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoGenerated = `[
  {"question_text":"What does := do?","option_a":"assign","option_b":"declare and assign","option_c":"compare","option_d":"nothing","correct_option":"b","explanation":"short variable declaration"},
  {"question_text":"Zero value of int?","option_a":"0","option_b":"nil","option_c":"1","option_d":"-1","correct_option":"A","difficulty_level":"Easy","topic":"Types"}
]`

func TestGenerateQuestions(t *testing.T) {
	gen := &fakeGenerator{reply: "```json\n" + twoGenerated + "\n```"}
	svc := NewQuestionGeneratorService(gen)

	resp, err := svc.Generate(context.Background(), dto.GenerateQuestionsRequest{
		Topic: "Go", Count: 2, Difficulty: importer.Hard, Skills: "syntax",
	})
	require.NoError(t, err)
	require.Len(t, resp.Questions, 2)

	first := resp.Questions[0]
	assert.Equal(t, "B", first.CorrectOption)
	assert.Equal(t, importer.Hard, first.DifficultyLevel)
	assert.Equal(t, "Go", first.Topic)
	assert.Equal(t, "syntax", first.Skills)
	assert.NotEmpty(t, first.ID)

	second := resp.Questions[1]
	assert.Equal(t, importer.Easy, second.DifficultyLevel)
	assert.Equal(t, "Types", second.Topic)

	assert.Contains(t, gen.prompt, "exactly 2 questions")
	assert.Contains(t, gen.prompt, `"Go"`)
	assert.Contains(t, gen.prompt, "syntax")
}

func TestGenerateQuestionsTruncatesToCount(t *testing.T) {
	svc := NewQuestionGeneratorService(&fakeGenerator{reply: twoGenerated})
	resp, err := svc.Generate(context.Background(), dto.GenerateQuestionsRequest{Topic: "Go", Count: 1})
	require.NoError(t, err)
	assert.Len(t, resp.Questions, 1)
}

func TestGenerateQuestionsWrappedObject(t *testing.T) {
	svc := NewQuestionGeneratorService(&fakeGenerator{reply: `{"questions":` + twoGenerated + `}`})
	resp, err := svc.Generate(context.Background(), dto.GenerateQuestionsRequest{Topic: "Go", Count: 5})
	require.NoError(t, err)
	assert.Len(t, resp.Questions, 2)
}

func TestGenerateQuestionsInvalidItems(t *testing.T) {
	reply := `[{"question_text":"Q","option_a":"a","option_b":"b","option_c":"c","option_d":"","correct_option":"E"}]`
	svc := NewQuestionGeneratorService(&fakeGenerator{reply: reply})

	_, err := svc.Generate(context.Background(), dto.GenerateQuestionsRequest{Topic: "Go", Count: 1})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		"Row 1: All options (A, B, C, D) are required",
		"Row 1: Correct option must be A, B, C, or D",
	}, verr.Details)
}

func TestGenerateQuestionsBadJSON(t *testing.T) {
	svc := NewQuestionGeneratorService(&fakeGenerator{reply: "Sure! Here are your questions."})
	_, err := svc.Generate(context.Background(), dto.GenerateQuestionsRequest{Topic: "Go", Count: 1})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestGenerateQuestionsEmptyReply(t *testing.T) {
	svc := NewQuestionGeneratorService(&fakeGenerator{reply: "[]"})
	_, err := svc.Generate(context.Background(), dto.GenerateQuestionsRequest{Topic: "Go", Count: 1})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestGenerateQuestionsUnavailable(t *testing.T) {
	_, err := NewQuestionGeneratorService(nil).Generate(context.Background(), dto.GenerateQuestionsRequest{Topic: "Go", Count: 1})
	assert.ErrorIs(t, err, ErrUnavailable)

	svc := NewQuestionGeneratorService(&fakeGenerator{err: errors.New("quota exceeded")})
	_, err = svc.Generate(context.Background(), dto.GenerateQuestionsRequest{Topic: "Go", Count: 1})
	assert.ErrorIs(t, err, ErrUnavailable)
}
