package document

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strings"
)

// Chunk represents one output partition of a split dataset. Content holds
// the chunk text exactly as it should be written out: the header line
// followed by its data lines when headers are included, the data lines
// alone otherwise.
type Chunk struct {
	Index     int               `json:"index"`
	Content   string            `json:"content"`
	DataLines int               `json:"dataLines"`
	Checksum  int               `json:"checksum"`
	Meta      map[string]string `json:"meta,omitempty"`
}

// NewChunk builds a chunk and stamps it with a content checksum.
func NewChunk(index int, content string, dataLines int, meta map[string]string) Chunk {
	return Chunk{
		Index:     index,
		Content:   content,
		DataLines: dataLines,
		Checksum:  Checksum([]byte(content)),
		Meta:      meta,
	}
}

// Checksum derives an int checksum from the first 4 bytes of the content's
// sha256 digest.
func Checksum(data []byte) int {
	sum := sha256.Sum256(data)
	return int(binary.BigEndian.Uint32(sum[:4]))
}

// SplitResult is the outcome of a single split call.
type SplitResult struct {
	Chunks            []Chunk `json:"chunks"`
	TotalChunks       int     `json:"totalChunks"`
	OriginalLineCount int     `json:"originalLineCount"`
}

// DataLineCount returns the number of data lines across all chunks.
func (r *SplitResult) DataLineCount() int {
	total := 0
	for _, chunk := range r.Chunks {
		total += chunk.DataLines
	}
	return total
}

// ValidationResult reports structural consistency of raw tabular text.
// Issues is non-empty whenever normalization changed the input or structural
// problems were found; IsValid is false only on structural problems.
type ValidationResult struct {
	IsValid           bool     `json:"isValid"`
	NormalizedContent string   `json:"normalizedContent"`
	Issues            []string `json:"issues,omitempty"`
}

// ChunkFileName suggests a name for the chunk with the given 1-based index
// out of total. The ".csv" suffix is appended only when base does not
// already carry it; an empty base defaults to "split".
func ChunkFileName(base string, index, total int) string {
	base = strings.TrimSpace(base)
	if base == "" {
		base = "split"
	}
	base = strings.TrimSuffix(base, ".csv")
	return fmt.Sprintf("%s-%d-of-%d.csv", base, index, total)
}
