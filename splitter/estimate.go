package splitter

import (
	"strings"
)

// EstimateChunkCount recomputes, without materializing any chunk, the
// TotalChunks that Split would report for the same input and options. It
// fails under exactly the same conditions as Split so the two always agree.
func EstimateChunkCount(rawText string, options Options) (int, error) {
	if strings.TrimSpace(rawText) == "" {
		return 0, ErrEmptyInput
	}
	if options.MaxLinesPerFile <= 0 {
		return 0, ErrInvalidConfiguration
	}
	lines := strings.Split(strings.TrimSpace(rawText), "\n")
	dataLines := len(lines) - 1
	if dataLines == 0 {
		return 1, nil
	}
	effective := options.EffectiveMaxLines()
	if effective <= 0 {
		return 0, ErrInvalidConfiguration
	}
	return (dataLines + effective - 1) / effective, nil
}
