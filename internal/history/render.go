package history

import (
	"fmt"
	"strings"
)

// FormatHistory renders the log as plain text:
//
//	HISTORY
//	01/01/2020 - a@x.com (abc123): init
//	    1: first line
//	    2: second line
func (l *Log) FormatHistory() string {
	var b strings.Builder
	b.WriteString("HISTORY\n")
	for _, e := range l.Entries() {
		fmt.Fprintf(&b, "%s - %s (%s): %s\n",
			e.Commit.Date.Format(DateLayout),
			e.Commit.AuthorEmail,
			e.Commit.ID,
			e.Commit.Summary,
		)
		for _, line := range e.Lines {
			fmt.Fprintf(&b, "    %d: %s\n", line.LineNo, line.Text)
		}
	}
	return b.String()
}

const promptTemplate = `Write a changelog for a single source file using the git history below.
Each history block starts with the commit date, the author email, the commit id and the
commit summary, followed by the file lines that commit is still responsible for.

%s
Format the changelog as a timeline ordered by date. For every change give the date,
the author, the kind of change (feature, fix, refactor, docs, test or other) and a short
description of what changed and why. Be concise but do not leave out significant
modifications.`

// Prompt wraps FormatHistory in instructions for a text-generation model.
func (l *Log) Prompt() string {
	return fmt.Sprintf(promptTemplate, l.FormatHistory())
}
