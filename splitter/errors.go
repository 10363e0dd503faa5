package splitter

import (
	"errors"
	"strings"
)

// Sentinel errors returned by Split and EstimateChunkCount.
var (
	// ErrEmptyInput reports input that is empty or whitespace-only.
	ErrEmptyInput = errors.New("input is empty or contains only whitespace")
	// ErrInvalidConfiguration reports a maxLinesPerFile that leaves no room
	// for even a single data line per chunk.
	ErrInvalidConfiguration = errors.New("maxLinesPerFile must allow at least one data line per chunk")
)

// ValidationError carries the issues of a failed structural validation.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return "csv validation failed: " + strings.Join(e.Issues, "; ")
}
