// Package importer turns a CSV blob of multiple-choice questions into validated
// Question records. Parsing is all-or-nothing: a batch with any invalid row
// yields no records.
package importer

import "github.com/google/uuid"

const (
	Easy   = "Easy"
	Medium = "Medium"
	Hard   = "Hard"

	DefaultDifficulty = Medium
)

// Question is one MCQ pending import.
type Question struct {
	ID              string `json:"id"`
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

// Result is the outcome of Parse. Questions is empty whenever Errors is not.
type Result struct {
	Questions []Question `json:"questions"`
	Errors    []string   `json:"errors"`
}

// OK reports whether the batch parsed without errors.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// NewID returns an opaque key for a staged question. It is only meant to
// distinguish records within one session, never as a stored identifier.
func NewID() string {
	return uuid.NewString()
}

func validDifficulty(d string) bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

func validCorrectOption(o string) bool {
	switch o {
	case "A", "B", "C", "D":
		return true
	}
	return false
}
