package splitter

import (
	"reflect"
	"testing"
)

func TestParseRowsQuoting(t *testing.T) {
	text := "name,comment\n\"Smith, John\",\"said \"\"hi\"\"\"\n"
	rows := parseRows(text)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	want := []string{"Smith, John", `said "hi"`}
	if !reflect.DeepEqual(rows[1].Fields, want) {
		t.Fatalf("fields = %v, want %v", rows[1].Fields, want)
	}
}

func TestParseRowsEmbeddedNewline(t *testing.T) {
	text := "a,b\n\"first\nsecond\",x\nlast,y\n"
	rows := parseRows(text)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[1].Fields[0] != "first\nsecond" {
		t.Errorf("quoted newline not preserved: %q", rows[1].Fields[0])
	}
	if rows[1].Line != 2 {
		t.Errorf("row 2 line = %d, want 2", rows[1].Line)
	}
	// The quoted field spans lines 2-3, so the next row starts on line 4.
	if rows[2].Line != 4 {
		t.Errorf("row 3 line = %d, want 4", rows[2].Line)
	}
}

func TestParseRowsCRLF(t *testing.T) {
	rows := parseRows("a,b\r\n1,2\r\n")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	want := []string{"1", "2"}
	if !reflect.DeepEqual(rows[1].Fields, want) {
		t.Fatalf("fields = %v, want %v", rows[1].Fields, want)
	}
}

func TestParseRowsBareQuoteInsideField(t *testing.T) {
	rows := parseRows("a,b\nit\"s,2\n")
	if got := rows[1].Fields[0]; got != `it"s` {
		t.Fatalf("field = %q, want %q", got, `it"s`)
	}
}

func TestParseRowsMissingTerminator(t *testing.T) {
	rows := parseRows("a,b\n1,2")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
}

func TestParseRowsUnterminatedQuote(t *testing.T) {
	rows := parseRows("a\n\"open")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1].Fields[0] != "open" {
		t.Fatalf("field = %q, want %q", rows[1].Fields[0], "open")
	}
}

func TestParseRowsTrailingDelimiter(t *testing.T) {
	rows := parseRows("a,\n")
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	want := []string{"a", ""}
	if !reflect.DeepEqual(rows[0].Fields, want) {
		t.Fatalf("fields = %v, want %v", rows[0].Fields, want)
	}
}

func TestParseRowsEmpty(t *testing.T) {
	if rows := parseRows(""); len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}
