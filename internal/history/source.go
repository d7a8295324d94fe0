package history

import "strings"

// SourceTable is the content of the blamed file addressed by 1-based line number.
type SourceTable struct {
	lines []string
}

// NewSourceTable splits content into lines. A trailing newline does not start a
// new line and "\r\n" endings are accepted.
func NewSourceTable(content string) *SourceTable {
	if content == "" {
		return &SourceTable{}
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return &SourceTable{lines: lines}
}

// Len returns the number of lines in the table.
func (t *SourceTable) Len() int {
	return len(t.lines)
}

// Line returns line n. Lines outside [1, Len()] carry MissingLineText.
func (t *SourceTable) Line(n int) SourceLine {
	if n < 1 || n > len(t.lines) {
		return SourceLine{LineNo: n, Text: MissingLineText}
	}
	return SourceLine{LineNo: n, Text: t.lines[n-1]}
}
