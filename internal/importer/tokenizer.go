package importer

import "strings"

const (
	delimiter = ','
	quote     = '"'
)

// SplitLine splits one CSV line on commas outside quotes. A doubled quote
// inside a quoted field yields a literal quote. Each field is trimmed.
//
// Unlike encoding/csv, a stray quote in the middle of an unquoted field simply
// toggles quoting instead of failing the whole record, and the number of fields
// is always the number of unquoted commas plus one.
func SplitLine(line string) []string {
	var (
		result   []string
		current  strings.Builder
		inQuotes bool
	)
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == quote:
			if inQuotes && i+1 < len(runes) && runes[i+1] == quote {
				current.WriteRune(quote)
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == delimiter && !inQuotes:
			result = append(result, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(c)
		}
	}
	return append(result, strings.TrimSpace(current.String()))
}
