// Package input turns supported source file formats into the raw CSV text
// the splitter consumes.
package input

import "strings"

// Reader converts source bytes into raw CSV text.
type Reader interface {
	Read(data []byte) (string, error)
}

type textReader struct{}

// NewTextReader returns a passthrough Reader for sources that already are
// delimited text.
func NewTextReader() Reader {
	return textReader{}
}

func (textReader) Read(data []byte) (string, error) {
	return string(data), nil
}

// renderRow renders cells as one comma-delimited CSV line with standard
// quoting.
func renderRow(cells []string) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(quoteCell(cell))
	}
	return b.String()
}

func quoteCell(cell string) string {
	if !strings.ContainsAny(cell, ",\"\n\r") {
		return cell
	}
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}

// padRow extends row with empty cells up to width; wider rows are kept
// as-is so genuine raggedness still surfaces during validation.
func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
