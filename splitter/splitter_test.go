package splitter

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// sampleCSV has a header and 8 data rows.
func sampleCSV() string {
	var b strings.Builder
	b.WriteString("id,name,city\n")
	for i := 1; i <= 8; i++ {
		fmt.Fprintf(&b, "%d,user%d,city%d\n", i, i, i)
	}
	return b.String()
}

func TestSplitRepeatsHeaderPerChunk(t *testing.T) {
	result, err := Split(sampleCSV(), Options{MaxLinesPerFile: 3, IncludeHeader: true})
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if result.TotalChunks != 4 {
		t.Fatalf("totalChunks = %d, want 4", result.TotalChunks)
	}
	if result.OriginalLineCount != 9 {
		t.Errorf("originalLineCount = %d, want 9", result.OriginalLineCount)
	}
	if len(result.Chunks) != result.TotalChunks {
		t.Errorf("chunks length %d != totalChunks %d", len(result.Chunks), result.TotalChunks)
	}
	for i, chunk := range result.Chunks {
		lines := strings.Split(chunk.Content, "\n")
		if lines[0] != "id,name,city" {
			t.Errorf("chunk %d does not begin with header: %q", i, lines[0])
		}
		if chunk.DataLines != 2 {
			t.Errorf("chunk %d dataLines = %d, want 2", i, chunk.DataLines)
		}
		if len(lines) != 3 {
			t.Errorf("chunk %d has %d lines, want 3", i, len(lines))
		}
	}
}

func TestSplitUnevenFinalChunk(t *testing.T) {
	result, err := Split(sampleCSV(), Options{MaxLinesPerFile: 4, IncludeHeader: true})
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if result.TotalChunks != 3 {
		t.Fatalf("totalChunks = %d, want 3", result.TotalChunks)
	}
	sizes := []int{3, 3, 2}
	for i, chunk := range result.Chunks {
		if chunk.DataLines != sizes[i] {
			t.Errorf("chunk %d dataLines = %d, want %d", i, chunk.DataLines, sizes[i])
		}
	}
}

func TestSplitWithoutHeader(t *testing.T) {
	result, err := Split(sampleCSV(), Options{MaxLinesPerFile: 4})
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if result.TotalChunks != 2 {
		t.Fatalf("totalChunks = %d, want 2", result.TotalChunks)
	}
	if strings.HasPrefix(result.Chunks[0].Content, "id,name,city") {
		t.Errorf("chunk 0 should not contain the header: %q", result.Chunks[0].Content)
	}
	if result.Chunks[0].DataLines != 4 || result.Chunks[1].DataLines != 4 {
		t.Errorf("unexpected chunk sizes: %d, %d", result.Chunks[0].DataLines, result.Chunks[1].DataLines)
	}
}

func TestSplitHeaderOnly(t *testing.T) {
	result, err := Split("a,b,c", Options{MaxLinesPerFile: 5, IncludeHeader: true})
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if result.TotalChunks != 1 || result.OriginalLineCount != 1 {
		t.Fatalf("totalChunks = %d originalLineCount = %d", result.TotalChunks, result.OriginalLineCount)
	}
	if result.Chunks[0].Content != "a,b,c" {
		t.Errorf("chunk content = %q, want %q", result.Chunks[0].Content, "a,b,c")
	}

	result, err = Split("a,b,c\n", Options{MaxLinesPerFile: 5})
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if result.TotalChunks != 1 || result.Chunks[0].Content != "" {
		t.Errorf("headerless header-only chunk = %q, totalChunks = %d", result.Chunks[0].Content, result.TotalChunks)
	}
}

func TestSplitRoundTrip(t *testing.T) {
	text := sampleCSV()
	original := strings.Split(strings.TrimSpace(text), "\n")[1:]
	for _, includeHeader := range []bool{true, false} {
		for maxLines := 2; maxLines <= 10; maxLines++ {
			result, err := Split(text, Options{MaxLinesPerFile: maxLines, IncludeHeader: includeHeader})
			if err != nil {
				t.Fatalf("split(max=%d header=%t): %v", maxLines, includeHeader, err)
			}
			var recovered []string
			for _, chunk := range result.Chunks {
				lines := strings.Split(chunk.Content, "\n")
				if includeHeader {
					lines = lines[1:]
				}
				recovered = append(recovered, lines...)
			}
			if strings.Join(recovered, "\n") != strings.Join(original, "\n") {
				t.Fatalf("round trip mismatch for max=%d header=%t", maxLines, includeHeader)
			}
		}
	}
}

func TestSplitDivisibleBoundary(t *testing.T) {
	var b strings.Builder
	b.WriteString("h1,h2\n")
	for i := 0; i < 6; i++ {
		fmt.Fprintf(&b, "%d,%d\n", i, i)
	}
	result, err := Split(b.String(), Options{MaxLinesPerFile: 4, IncludeHeader: true})
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if result.TotalChunks != 2 {
		t.Fatalf("totalChunks = %d, want 2", result.TotalChunks)
	}
	if result.Chunks[0].DataLines != result.Chunks[1].DataLines {
		t.Errorf("divisible input should produce equal chunks: %d vs %d",
			result.Chunks[0].DataLines, result.Chunks[1].DataLines)
	}
}

func TestSplitErrors(t *testing.T) {
	if _, err := Split("", Options{MaxLinesPerFile: 5, IncludeHeader: true}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("empty input: err = %v, want ErrEmptyInput", err)
	}
	if _, err := Split("   \n \t", Options{MaxLinesPerFile: 5}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("whitespace input: err = %v, want ErrEmptyInput", err)
	}
	if _, err := Split("a\nb", Options{MaxLinesPerFile: 0, IncludeHeader: true}); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("zero max: err = %v, want ErrInvalidConfiguration", err)
	}
	// Degenerate configuration: header included but no capacity left for data.
	if _, err := Split("a\nb", Options{MaxLinesPerFile: 1, IncludeHeader: true}); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("degenerate config: err = %v, want ErrInvalidConfiguration", err)
	}
	// Header-only input consumes no capacity and is still served.
	if _, err := Split("a,b", Options{MaxLinesPerFile: 1, IncludeHeader: true}); err != nil {
		t.Errorf("header-only with max=1: unexpected err %v", err)
	}
}

func TestSplitPreservesCarriageReturns(t *testing.T) {
	result, err := Split("h1,h2\r\na,b\r\nc,d\r\n", Options{MaxLinesPerFile: 2, IncludeHeader: true})
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if result.TotalChunks != 2 {
		t.Fatalf("totalChunks = %d, want 2", result.TotalChunks)
	}
	if result.Chunks[0].Content != "h1,h2\r\na,b\r" {
		t.Errorf("chunk 0 = %q", result.Chunks[0].Content)
	}
}

func TestSplitDeterministic(t *testing.T) {
	first, err := Split(sampleCSV(), Options{MaxLinesPerFile: 3, IncludeHeader: true})
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	second, err := Split(sampleCSV(), Options{MaxLinesPerFile: 3, IncludeHeader: true})
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	for i := range first.Chunks {
		if first.Chunks[i].Content != second.Chunks[i].Content || first.Chunks[i].Checksum != second.Chunks[i].Checksum {
			t.Fatalf("chunk %d differs between identical calls", i)
		}
	}
}

func TestEstimateMatchesSplit(t *testing.T) {
	inputs := []string{sampleCSV(), "a,b\n1,2\n", "h\n1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n"}
	for _, text := range inputs {
		for _, includeHeader := range []bool{true, false} {
			for maxLines := 2; maxLines <= 12; maxLines++ {
				opts := Options{MaxLinesPerFile: maxLines, IncludeHeader: includeHeader}
				want, err := Split(text, opts)
				if err != nil {
					t.Fatalf("split(max=%d header=%t): %v", maxLines, includeHeader, err)
				}
				got, err := EstimateChunkCount(text, opts)
				if err != nil {
					t.Fatalf("estimate(max=%d header=%t): %v", maxLines, includeHeader, err)
				}
				if got != want.TotalChunks {
					t.Fatalf("estimate = %d, split = %d (max=%d header=%t)", got, want.TotalChunks, maxLines, includeHeader)
				}
			}
		}
	}
}

func TestEstimateHeaderOnly(t *testing.T) {
	got, err := EstimateChunkCount("a,b,c", Options{MaxLinesPerFile: 3, IncludeHeader: true})
	if err != nil {
		t.Fatalf("estimate failed: %v", err)
	}
	if got != 1 {
		t.Fatalf("estimate = %d, want 1", got)
	}
}

func TestEstimateErrors(t *testing.T) {
	if _, err := EstimateChunkCount("", Options{MaxLinesPerFile: 3}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("empty input: err = %v, want ErrEmptyInput", err)
	}
	if _, err := EstimateChunkCount("a\nb", Options{MaxLinesPerFile: 1, IncludeHeader: true}); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("degenerate config: err = %v, want ErrInvalidConfiguration", err)
	}
}
