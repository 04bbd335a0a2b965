package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lshigami/mcqdesk/internal/dto"
	"github.com/lshigami/mcqdesk/internal/importer"
	"github.com/rs/zerolog/log"
)

type QuestionGeneratorService interface {
	// Generate returns staged questions; nothing is stored.
	Generate(ctx context.Context, req dto.GenerateQuestionsRequest) (*dto.GenerateQuestionsResponse, error)
}

type questionGeneratorService struct {
	gen TextGenerator
}

func NewQuestionGeneratorService(gen TextGenerator) QuestionGeneratorService {
	return &questionGeneratorService{gen: gen}
}

// generatedQuestion is the JSON shape the model is asked to return.
type generatedQuestion struct {
	QuestionText    string `json:"question_text"`
	OptionA         string `json:"option_a"`
	OptionB         string `json:"option_b"`
	OptionC         string `json:"option_c"`
	OptionD         string `json:"option_d"`
	CorrectOption   string `json:"correct_option"`
	Explanation     string `json:"explanation"`
	DifficultyLevel string `json:"difficulty_level"`
	Topic           string `json:"topic"`
	Skills          string `json:"skills"`
}

func (s *questionGeneratorService) Generate(ctx context.Context, req dto.GenerateQuestionsRequest) (*dto.GenerateQuestionsResponse, error) {
	if s.gen == nil {
		return nil, fmt.Errorf("AI question generation is not configured: %w", ErrUnavailable)
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = importer.DefaultDifficulty
	}

	raw, err := s.gen.GenerateText(ctx, buildGenerationPrompt(req, difficulty))
	if err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("AI question generation failed")
		return nil, fmt.Errorf("AI question generation failed: %v: %w", err, ErrUnavailable)
	}

	items, err := decodeGenerated(raw)
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", raw).Msg("Could not decode AI response")
		return nil, newValidationError("AI response could not be read", err.Error())
	}
	if len(items) > req.Count {
		items = items[:req.Count]
	}

	questions := make([]importer.Question, 0, len(items))
	var errs []string
	for i, item := range items {
		if item.DifficultyLevel == "" {
			item.DifficultyLevel = difficulty
		}
		if item.Topic == "" {
			item.Topic = req.Topic
		}
		if item.Skills == "" {
			item.Skills = req.Skills
		}
		q, rowErrs := importer.ValidateRow(i+1, generatedFields(item))
		if len(rowErrs) > 0 {
			errs = append(errs, rowErrs...)
			continue
		}
		questions = append(questions, q)
	}
	if len(errs) > 0 {
		log.Warn().Strs("errors", errs).Msg("AI returned invalid questions")
		return nil, newValidationError("AI returned invalid questions", errs...)
	}
	if len(questions) == 0 {
		return nil, newValidationError("AI returned no questions")
	}
	log.Info().Str("topic", req.Topic).Int("count", len(questions)).Msg("AI questions generated")
	return &dto.GenerateQuestionsResponse{Questions: questions}, nil
}

func buildGenerationPrompt(req dto.GenerateQuestionsRequest, difficulty string) string {
	var b strings.Builder
	b.WriteString("You are an experienced instructor writing multiple-choice assessment questions.\n")
	fmt.Fprintf(&b, "Write exactly %d questions about the topic %q at %s difficulty.\n", req.Count, req.Topic, difficulty)
	if req.Skills != "" {
		fmt.Fprintf(&b, "The questions should exercise these skills: %s.\n", req.Skills)
	}
	if req.Instructions != "" {
		fmt.Fprintf(&b, "Additional instructions from the author: %s\n", req.Instructions)
	}
	b.WriteString("Each question has exactly four options and exactly one correct option.\n")
	b.WriteString("Reply with a JSON array only. Each element must have these string fields:\n")
	b.WriteString(`question_text, option_a, option_b, option_c, option_d, correct_option ("A", "B", "C" or "D"), explanation, difficulty_level ("Easy", "Medium" or "Hard"), topic, skills`)
	b.WriteString("\n")
	return b.String()
}

// decodeGenerated accepts a bare JSON array, optionally fenced in a markdown
// code block, or an object wrapping the array under "questions".
func decodeGenerated(raw string) ([]generatedQuestion, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}

	var items []generatedQuestion
	if err := json.Unmarshal([]byte(text), &items); err == nil {
		return items, nil
	}
	var wrapped struct {
		Questions []generatedQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(text), &wrapped); err != nil {
		return nil, fmt.Errorf("response is not a JSON array of questions: %w", err)
	}
	return wrapped.Questions, nil
}

func generatedFields(g generatedQuestion) map[string]string {
	return map[string]string{
		importer.ColQuestionText:    g.QuestionText,
		importer.ColOptionA:         g.OptionA,
		importer.ColOptionB:         g.OptionB,
		importer.ColOptionC:         g.OptionC,
		importer.ColOptionD:         g.OptionD,
		importer.ColCorrectOption:   g.CorrectOption,
		importer.ColExplanation:     g.Explanation,
		importer.ColDifficultyLevel: g.DifficultyLevel,
		importer.ColTopic:           g.Topic,
		importer.ColSkills:          g.Skills,
	}
}
