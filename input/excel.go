package input

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// excelReader renders the first sheet of an XLSX workbook as CSV text.
type excelReader struct{}

// NewExcelReader returns a Reader for XLSX workbooks.
func NewExcelReader() Reader {
	return &excelReader{}
}

func (r *excelReader) Read(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("workbook is empty")
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return "", fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return renderSheet(rows), nil
}

// renderSheet renders spreadsheet rows as newline-terminated CSV text,
// padding short rows to the header's width.
func renderSheet(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	width := len(rows[0])
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(renderRow(padRow(row, width)))
		b.WriteByte('\n')
	}
	return b.String()
}
