package service

import (
	"github.com/dugjason/split-csv/splitter"
)

// ValidateRequest defines inputs for structural validation. Content takes
// precedence over SourceURL when both are set.
type ValidateRequest struct {
	SourceURL string
	Content   string
	Logf      func(format string, args ...any)
}

// SplitRequest defines inputs for a split operation.
type SplitRequest struct {
	SourceURL string
	Content   string
	Options   splitter.Options
	Logf      func(format string, args ...any)
}

// EstimateRequest defines inputs for a chunk-count estimate.
type EstimateRequest struct {
	SourceURL string
	Content   string
	Options   splitter.Options
	Logf      func(format string, args ...any)
}

// ExportRequest defines inputs for splitting a source and writing one
// object per chunk under DestURL. BaseName seeds the chunk filenames; when
// empty it derives from the source name, falling back to "split".
type ExportRequest struct {
	SourceURL string
	Content   string
	Options   splitter.Options
	DestURL   string
	BaseName  string
	Logf      func(format string, args ...any)
}

// ExportedFile describes one written chunk object.
type ExportedFile struct {
	URL      string `json:"url"`
	Index    int    `json:"index"`
	Size     int    `json:"size"`
	Checksum int    `json:"checksum"`
}

// ExportResult summarizes an export run.
type ExportResult struct {
	JobID             string         `json:"jobId"`
	Files             []ExportedFile `json:"files"`
	TotalChunks       int            `json:"totalChunks"`
	OriginalLineCount int            `json:"originalLineCount"`
}
