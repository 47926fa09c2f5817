package sheet

import (
	"fmt"
	"strings"
	"testing"
)

func TestSplitLine_QuotedCommas(t *testing.T) {
	line := `2024-06-01,"Team Sync, Weekly",Studio A`

	fields := SplitLine(line)

	if len(fields) != 3 {
		t.Fatalf("Expected 3 fields, got %d: %v", len(fields), fields)
	}
	if fields[1] != "Team Sync, Weekly" {
		t.Errorf("Expected quoted comma preserved, got %q", fields[1])
	}
}

func TestSplitLine_EscapedQuotes(t *testing.T) {
	cases := map[string]string{
		`"He said \"hi\""`: `He said "hi"`,
		`"He said ""hi"""`: `He said "hi"`,
	}
	for line, want := range cases {
		fields := SplitLine(line)
		if len(fields) != 1 || fields[0] != want {
			t.Errorf("SplitLine(%q) = %v, want [%q]", line, fields, want)
		}
	}
}

func TestSplitLine_TrimsWhitespace(t *testing.T) {
	fields := SplitLine(`  a  , " b " ,c `)

	want := []string{"a", "b", "c"}
	for i, w := range want {
		if fields[i] != w {
			t.Errorf("field %d: got %q, want %q", i, fields[i], w)
		}
	}
}

func TestParseRecords_RoundTrip(t *testing.T) {
	// Generate a CSV with embedded commas in quoted cells and check every
	// record carries every header key with the unquoted source value.
	headers := []string{"Date", "Event Name", "Space Name"}
	var sb strings.Builder
	sb.WriteString(strings.Join(headers, ",") + "\n")
	for i := 0; i < 4; i++ {
		sb.WriteString(fmt.Sprintf("2024-06-0%d,\"Event %d, part two\",Space %d\n", i+1, i, i))
	}

	records := ParseRecords(Lines(sb.String()))

	if len(records) != 4 {
		t.Fatalf("Expected 4 records, got %d", len(records))
	}
	for i, rec := range records {
		if len(rec) != len(headers) {
			t.Errorf("record %d: expected %d keys, got %d", i, len(headers), len(rec))
		}
		wantEvent := fmt.Sprintf("Event %d, part two", i)
		if rec["Event Name"] != wantEvent {
			t.Errorf("record %d: got event %q, want %q", i, rec["Event Name"], wantEvent)
		}
	}
}

func TestParseRecords_MissingTrailingCells(t *testing.T) {
	records := ParseRecords([]string{"a,b,c", "1,2"})

	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0]["c"] != "" {
		t.Errorf("Expected missing cell to default to empty string, got %q", records[0]["c"])
	}
}

func TestLines_SkipsBlankLines(t *testing.T) {
	lines := Lines("a,b\r\n\r\n   \n1,2\n\n")

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %v", len(lines), lines)
	}
}
