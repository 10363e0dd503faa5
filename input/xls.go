package input

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/shakinm/xlsReader/xls"
	"github.com/shakinm/xlsReader/xls/structure"
)

// xlsFileReader renders the first sheet of a legacy XLS workbook as CSV
// text.
type xlsFileReader struct{}

// NewXLSReader returns a Reader for legacy XLS workbooks.
func NewXLSReader() Reader {
	return &xlsFileReader{}
}

func (r *xlsFileReader) Read(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("workbook is empty")
	}
	wb, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("open workbook: %w", err)
	}
	if wb.GetNumberSheets() == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}
	sheet, err := wb.GetSheet(0)
	if err != nil {
		return "", fmt.Errorf("read sheet: %w", err)
	}
	var rows [][]string
	for _, row := range sheet.GetRows() {
		rows = append(rows, xlsRowValues(row.GetCols()))
	}
	return renderSheet(rows), nil
}

func xlsRowValues(cols []structure.CellData) []string {
	out := make([]string, 0, len(cols))
	for _, col := range cols {
		val := col.GetString()
		if val == "" {
			if num := col.GetFloat64(); num != 0 {
				val = strconv.FormatFloat(num, 'f', -1, 64)
			} else if in := col.GetInt64(); in != 0 {
				val = strconv.FormatInt(in, 10)
			}
		}
		out = append(out, val)
	}
	return out
}
