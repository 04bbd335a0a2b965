package service

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/mcqdesk/internal/dto"
	"github.com/lshigami/mcqdesk/internal/importer"
	"github.com/lshigami/mcqdesk/internal/model"
)

// validateInputs runs staged questions through the same rules as CSV rows.
// It returns either every question or every message.
func validateInputs(inputs []dto.QuestionInputDTO) ([]importer.Question, []string) {
	var (
		questions []importer.Question
		errs      []string
	)
	for i, in := range inputs {
		q, rowErrs := importer.ValidateRow(i+1, inputFields(in))
		if len(rowErrs) > 0 {
			errs = append(errs, rowErrs...)
			continue
		}
		questions = append(questions, q)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return questions, nil
}

func inputFields(in dto.QuestionInputDTO) map[string]string {
	return map[string]string{
		importer.ColQuestionText:    in.QuestionText,
		importer.ColOptionA:         in.OptionA,
		importer.ColOptionB:         in.OptionB,
		importer.ColOptionC:         in.OptionC,
		importer.ColOptionD:         in.OptionD,
		importer.ColCorrectOption:   in.CorrectOption,
		importer.ColExplanation:     in.Explanation,
		importer.ColDifficultyLevel: in.DifficultyLevel,
		importer.ColTopic:           in.Topic,
		importer.ColSkills:          in.Skills,
	}
}

func toModelQuestions(assessmentID uint, firstOrder int, source string, staged []importer.Question) []model.Question {
	out := make([]model.Question, len(staged))
	for i, q := range staged {
		// q.ID is a staging key and is not carried over.
		out[i] = model.Question{
			AssessmentID:      assessmentID,
			OrderInAssessment: firstOrder + i,
			QuestionText:      q.QuestionText,
			OptionA:           q.OptionA,
			OptionB:           q.OptionB,
			OptionC:           q.OptionC,
			OptionD:           q.OptionD,
			CorrectOption:     q.CorrectOption,
			Explanation:       q.Explanation,
			DifficultyLevel:   q.DifficultyLevel,
			Topic:             q.Topic,
			Skills:            q.Skills,
			Source:            source,
		}
	}
	return out
}

func toQuestionDTOs(questions []model.Question) []dto.QuestionResponseDTO {
	resp := make([]dto.QuestionResponseDTO, 0, len(questions))
	for _, q := range questions {
		var d dto.QuestionResponseDTO
		copier.Copy(&d, &q)
		resp = append(resp, d)
	}
	return resp
}
