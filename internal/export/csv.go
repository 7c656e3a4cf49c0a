// Package export renders flat match rows into downloadable artifacts: CSV,
// XLSX workbooks and pretty-printed JSON.
package export

import "strings"

// CSV renders rows into delimited text: a header line of columns, then one
// line per row. A cell is quoted only when it contains a comma, quote or line
// break, with internal quotes doubled. Fields absent in a row render empty.
// Lines are joined with "\n" and there is no trailing newline, matching the
// artifacts the dashboard has always produced.
func CSV(rows []map[string]string, columns []string) string {
	var b strings.Builder
	for i, col := range columns {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeCell(col))
	}
	for _, row := range rows {
		b.WriteByte('\n')
		for i, col := range columns {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escapeCell(row[col]))
		}
	}
	return b.String()
}

func escapeCell(s string) string {
	if strings.ContainsAny(s, "\",\n\r") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
