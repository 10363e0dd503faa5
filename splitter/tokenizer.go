package splitter

import (
	"strings"
)

// Row is one parsed CSV record along with the 1-based physical line it
// starts on.
type Row struct {
	Fields []string
	Line   int
}

const (
	stateUnquoted = iota
	stateQuoted
	stateQuotedQuote // quote seen inside a quoted field: escape or closing
)

// parseRows tokenizes text using standard CSV quoting rules: fields may be
// wrapped in double quotes, embedded commas and newlines inside quoted
// fields do not separate, and doubled double-quotes inside a quoted field
// are a literal quote. A quote appearing mid-field is kept as content.
// CRLF terminators are treated as a single row terminator; a lone CR is
// field content.
func parseRows(text string) []Row {
	var rows []Row
	var fields []string
	var field strings.Builder

	state := stateUnquoted
	fieldStart := true
	line := 1
	rowLine := 1

	endField := func() {
		fields = append(fields, field.String())
		field.Reset()
		fieldStart = true
	}
	endRow := func() {
		endField()
		rows = append(rows, Row{Fields: fields, Line: rowLine})
		fields = nil
		line++
		rowLine = line
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch state {
		case stateQuoted:
			switch c {
			case '"':
				state = stateQuotedQuote
			case '\n':
				field.WriteByte(c)
				line++
			default:
				field.WriteByte(c)
			}
		case stateQuotedQuote:
			switch c {
			case '"':
				field.WriteByte('"')
				state = stateQuoted
			case ',':
				endField()
				state = stateUnquoted
			case '\n':
				endRow()
				state = stateUnquoted
			case '\r':
				if i+1 < len(text) && text[i+1] == '\n' {
					state = stateUnquoted
					break
				}
				field.WriteByte(c)
				state = stateUnquoted
			default:
				// Stray content after a closing quote is kept as-is.
				field.WriteByte(c)
				state = stateUnquoted
			}
		default:
			switch c {
			case '"':
				if fieldStart {
					state = stateQuoted
					fieldStart = false
					break
				}
				field.WriteByte(c)
			case ',':
				endField()
			case '\n':
				endRow()
			case '\r':
				if i+1 < len(text) && text[i+1] == '\n' {
					break
				}
				field.WriteByte(c)
				fieldStart = false
			default:
				field.WriteByte(c)
				fieldStart = false
			}
		}
	}
	if field.Len() > 0 || len(fields) > 0 || state != stateUnquoted || !fieldStart {
		endRow()
	}
	return rows
}
