package qianji

import "strings"

// SplitLine tokenizes one line of a Qianji CSV export into its fields.
//
// The export is close to RFC4180 but not strict, so the rules are lenient:
// a field may be wrapped in double quotes, "" inside a quoted field is a
// literal quote, a quote that does not open a field is a literal character,
// and a comma outside quotes ends the field. Malformed quoting never fails;
// the remainder of the line is taken literally. A leading UTF-8 BOM is
// stripped before tokenizing. Field count validation is the caller's job.
func SplitLine(line string) []string {
	line = strings.TrimPrefix(line, "\ufeff")

	var result []string
	var field strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"':
			if inQuotes {
				if i+1 < len(runes) && runes[i+1] == '"' {
					// escaped quote
					field.WriteRune('"')
					i++
				} else {
					inQuotes = false
				}
			} else if field.Len() == 0 || (i > 0 && runes[i-1] == ',') {
				// opening quote: only at field start or right after a separator
				inQuotes = true
			} else {
				// quote in the middle of an unquoted field is literal
				field.WriteRune('"')
			}
		case ch == ',' && !inQuotes:
			result = append(result, field.String())
			field.Reset()
		default:
			field.WriteRune(ch)
		}
	}
	result = append(result, field.String())

	return result
}
