package splitter

import (
	"fmt"
	"strings"

	"github.com/dugjason/split-csv/document"
)

// ValidateAndNormalize checks that rawText is structurally consistent
// tabular data and normalizes trailing-newline formatting. Normalization is
// applied whenever needed, regardless of structural validity; validity
// depends only on structural problems.
func ValidateAndNormalize(rawText string) document.ValidationResult {
	result := document.ValidationResult{NormalizedContent: rawText}
	if strings.TrimSpace(rawText) == "" {
		result.Issues = append(result.Issues, "File is empty or contains only whitespace")
		return result
	}
	if !strings.HasSuffix(rawText, "\n") {
		result.NormalizedContent = rawText + "\n"
		result.Issues = append(result.Issues, "Added missing trailing newline")
	}

	rows := parseRows(result.NormalizedContent)
	if len(rows) == 0 {
		result.Issues = append(result.Issues, "Line 1: no parsable rows")
		return result
	}

	expected := len(rows[0].Fields)
	ragged := false
	for _, row := range rows[1:] {
		if len(row.Fields) != expected {
			ragged = true
			result.Issues = append(result.Issues,
				fmt.Sprintf("Line %d has %d columns, expected %d", row.Line, len(row.Fields), expected))
		}
	}
	result.IsValid = !ragged
	return result
}
