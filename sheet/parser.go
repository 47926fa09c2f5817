package sheet

import (
	"strings"
)

// SplitLine splits one raw CSV line into trimmed fields. Commas inside
// double-quoted spans do not split; surrounding quotes are stripped and
// escaped quotes (`\"` or doubled `""`) are unescaped. This splitter never
// fails: malformed lines yield best-effort fields.
//
// encoding/csv is deliberately not used here. The sheet export requires
// per-field whitespace trimming, backslash-escaped quotes and never-fail
// rows, none of which RFC 4180 readers provide.
func SplitLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '\\' && i+1 < len(line) && line[i+1] == '"':
			cur.WriteByte('"')
			i++
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				// doubled quote inside a quoted span
				cur.WriteByte('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(cur.String()))
	return fields
}

// Lines splits raw CSV text into its non-blank lines, trimming nothing
// inside them. Blank (whitespace-only) lines are dropped entirely.
func Lines(csv string) []string {
	var out []string
	for _, l := range strings.Split(strings.ReplaceAll(csv, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}

// ParseRecords maps every data line of the CSV positionally against the
// header line, producing one record per row. Record keys are the header
// names (duplicates overwrite); missing trailing cells become "".
func ParseRecords(lines []string) []map[string]string {
	if len(lines) == 0 {
		return nil
	}
	headers := SplitLine(lines[0])

	records := make([]map[string]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		cells := SplitLine(line)
		rec := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(cells) {
				rec[h] = cells[i]
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}
