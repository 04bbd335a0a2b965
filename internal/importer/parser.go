package importer

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	ColQuestionText    = "question_text"
	ColOptionA         = "option_a"
	ColOptionB         = "option_b"
	ColOptionC         = "option_c"
	ColOptionD         = "option_d"
	ColCorrectOption   = "correct_option"
	ColExplanation     = "explanation"
	ColDifficultyLevel = "difficulty_level"
	ColTopic           = "topic"
	ColSkills          = "skills"
)

const (
	ErrEmptyFile        = "CSV file is empty or contains only headers"
	missingHeaderPrefix = "Missing required headers: "
)

// RequiredHeaders must all be present in the header row; order does not matter.
var RequiredHeaders = []string{
	ColQuestionText,
	ColOptionA,
	ColOptionB,
	ColOptionC,
	ColOptionD,
	ColCorrectOption,
}

var lineBreak = regexp.MustCompile(`\r?\n`)

// MissingHeaders returns the required headers absent from headers, in the
// order of RequiredHeaders. headers are expected lower-cased and trimmed.
func MissingHeaders(headers []string) []string {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	var missing []string
	for _, h := range RequiredHeaders {
		if !present[h] {
			missing = append(missing, h)
		}
	}
	return missing
}

// ValidateRow checks one data row keyed by header name. row is used only in
// messages. Either a Question or a non-empty list of messages is returned.
func ValidateRow(row int, fields map[string]string) (Question, []string) {
	get := func(k string) string { return strings.TrimSpace(fields[k]) }

	var errs []string
	if get(ColQuestionText) == "" {
		errs = append(errs, fmt.Sprintf("Row %d: Question text is required", row))
	}
	if get(ColOptionA) == "" || get(ColOptionB) == "" || get(ColOptionC) == "" || get(ColOptionD) == "" {
		errs = append(errs, fmt.Sprintf("Row %d: All options (A, B, C, D) are required", row))
	}
	correct := strings.ToUpper(get(ColCorrectOption))
	if !validCorrectOption(correct) {
		errs = append(errs, fmt.Sprintf("Row %d: Correct option must be A, B, C, or D", row))
	}
	difficulty := get(ColDifficultyLevel)
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}
	if !validDifficulty(difficulty) {
		errs = append(errs, fmt.Sprintf("Row %d: Difficulty must be Easy, Medium, or Hard", row))
	}
	if len(errs) > 0 {
		return Question{}, errs
	}

	return Question{
		ID:              NewID(),
		QuestionText:    get(ColQuestionText),
		OptionA:         get(ColOptionA),
		OptionB:         get(ColOptionB),
		OptionC:         get(ColOptionC),
		OptionD:         get(ColOptionD),
		CorrectOption:   correct,
		Explanation:     get(ColExplanation),
		DifficultyLevel: difficulty,
		Topic:           get(ColTopic),
		Skills:          get(ColSkills),
	}, nil
}

// Parse reads a whole CSV blob. Blank lines are dropped before rows are
// numbered, so "Row n" is the n-th non-blank line after the header.
func Parse(text string) Result {
	var lines []string
	for _, l := range lineBreak.Split(text, -1) {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) < 2 {
		return Result{Questions: []Question{}, Errors: []string{ErrEmptyFile}}
	}

	headers := SplitLine(lines[0])
	for i, h := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}
	if missing := MissingHeaders(headers); len(missing) > 0 {
		return Result{
			Questions: []Question{},
			Errors:    []string{missingHeaderPrefix + strings.Join(missing, ", ")},
		}
	}

	questions := []Question{}
	errs := []string{}
	for i, line := range lines[1:] {
		values := SplitLine(line)
		fields := make(map[string]string, len(headers))
		for j, h := range headers {
			if j < len(values) {
				fields[h] = values[j]
			} else {
				fields[h] = ""
			}
		}
		q, rowErrs := ValidateRow(i+1, fields)
		if len(rowErrs) > 0 {
			errs = append(errs, rowErrs...)
			continue
		}
		questions = append(questions, q)
	}

	if len(errs) > 0 {
		return Result{Questions: []Question{}, Errors: errs}
	}
	return Result{Questions: questions, Errors: errs}
}
