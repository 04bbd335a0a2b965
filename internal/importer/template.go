package importer

import "strings"

const (
	TemplateFileName    = "mcq_template.csv"
	TemplateContentType = "text/csv;charset=utf-8;"
)

// TemplateHeaders is the full column list offered to authors.
var TemplateHeaders = []string{
	ColQuestionText,
	ColOptionA,
	ColOptionB,
	ColOptionC,
	ColOptionD,
	ColCorrectOption,
	ColExplanation,
	ColDifficultyLevel,
	ColTopic,
	ColSkills,
}

// Template returns the header row with no data rows.
func Template() string {
	return strings.Join(TemplateHeaders, ",")
}
