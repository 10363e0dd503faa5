package mcp

import (
	"github.com/dugjason/split-csv/document"
	"github.com/dugjason/split-csv/service"
	"github.com/dugjason/split-csv/splitter"
)

type ValidateInput struct {
	SourceURL string `json:"sourceUrl,omitempty"`
	Content   string `json:"content,omitempty"`
}

type ValidateOutput struct {
	Valid             bool     `json:"valid"`
	Issues            []string `json:"issues,omitempty"`
	NormalizedContent string   `json:"normalizedContent,omitempty"`
}

type SplitInput struct {
	SourceURL       string `json:"sourceUrl,omitempty"`
	Content         string `json:"content,omitempty"`
	MaxLinesPerFile int    `json:"maxLinesPerFile"`
	IncludeHeader   bool   `json:"includeHeader,omitempty"`
}

func (in *SplitInput) options() splitter.Options {
	return splitter.Options{MaxLinesPerFile: in.MaxLinesPerFile, IncludeHeader: in.IncludeHeader}
}

type SplitOutput struct {
	Chunks            []document.Chunk `json:"chunks"`
	TotalChunks       int              `json:"totalChunks"`
	OriginalLineCount int              `json:"originalLineCount"`
}

type EstimateInput struct {
	SourceURL       string `json:"sourceUrl,omitempty"`
	Content         string `json:"content,omitempty"`
	MaxLinesPerFile int    `json:"maxLinesPerFile"`
	IncludeHeader   bool   `json:"includeHeader,omitempty"`
}

func (in *EstimateInput) options() splitter.Options {
	return splitter.Options{MaxLinesPerFile: in.MaxLinesPerFile, IncludeHeader: in.IncludeHeader}
}

type EstimateOutput struct {
	Chunks int `json:"chunks"`
}

type ExportInput struct {
	SourceURL       string `json:"sourceUrl,omitempty"`
	Content         string `json:"content,omitempty"`
	DestURL         string `json:"destUrl"`
	BaseName        string `json:"baseName,omitempty"`
	MaxLinesPerFile int    `json:"maxLinesPerFile"`
	IncludeHeader   bool   `json:"includeHeader,omitempty"`
}

func (in *ExportInput) options() splitter.Options {
	return splitter.Options{MaxLinesPerFile: in.MaxLinesPerFile, IncludeHeader: in.IncludeHeader}
}

type ExportOutput struct {
	JobID             string                 `json:"jobId"`
	Files             []service.ExportedFile `json:"files"`
	TotalChunks       int                    `json:"totalChunks"`
	OriginalLineCount int                    `json:"originalLineCount"`
}
