// Package splitter implements the core partitioning of delimited text into
// chunks of bounded record count, together with the structural validation
// that guards it. All operations are pure functions over in-memory strings.
package splitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dugjason/split-csv/document"
)

// Options configures a split operation. No defaults are applied here;
// callers own their defaulting.
type Options struct {
	MaxLinesPerFile int  `json:"maxLinesPerFile" yaml:"maxLinesPerFile"`
	IncludeHeader   bool `json:"includeHeader" yaml:"includeHeader"`
}

// EffectiveMaxLines returns the number of data lines a chunk may hold once
// a slot is reserved for the header.
func (o Options) EffectiveMaxLines() int {
	if o.IncludeHeader {
		return o.MaxLinesPerFile - 1
	}
	return o.MaxLinesPerFile
}

// Split partitions normalizedText into consecutive chunks of at most
// EffectiveMaxLines data lines each, repeating the header line per chunk
// when requested. Line 0 of the trimmed input is the header; splitting is
// purely on the line-feed character, so carriage returns remain part of
// line content.
func Split(normalizedText string, options Options) (*document.SplitResult, error) {
	if strings.TrimSpace(normalizedText) == "" {
		return nil, ErrEmptyInput
	}
	if options.MaxLinesPerFile <= 0 {
		return nil, ErrInvalidConfiguration
	}

	lines := strings.Split(strings.TrimSpace(normalizedText), "\n")
	header := lines[0]
	dataLines := lines[1:]

	if len(dataLines) == 0 {
		content := ""
		if options.IncludeHeader {
			content = header
		}
		chunk := document.NewChunk(0, content, 0, chunkMeta(1, 1))
		return &document.SplitResult{
			Chunks:            []document.Chunk{chunk},
			TotalChunks:       1,
			OriginalLineCount: 1,
		}, nil
	}

	effective := options.EffectiveMaxLines()
	if effective <= 0 {
		return nil, ErrInvalidConfiguration
	}

	var chunks []document.Chunk
	for start := 0; start < len(dataLines); start += effective {
		end := start + effective
		if end > len(dataLines) {
			end = len(dataLines)
		}
		group := dataLines[start:end]
		var content strings.Builder
		if options.IncludeHeader {
			content.WriteString(header)
			content.WriteByte('\n')
		}
		content.WriteString(strings.Join(group, "\n"))
		// Data lines are physical lines 2..N of the input.
		chunks = append(chunks, document.NewChunk(len(chunks), content.String(), len(group), chunkMeta(start+2, end+1)))
	}

	return &document.SplitResult{
		Chunks:            chunks,
		TotalChunks:       len(chunks),
		OriginalLineCount: len(lines),
	}, nil
}

func chunkMeta(startLine, endLine int) map[string]string {
	return map[string]string{
		"start_line": strconv.Itoa(startLine),
		"end_line":   strconv.Itoa(endLine),
		"line_range": fmt.Sprintf("%d-%d", startLine, endLine),
	}
}
