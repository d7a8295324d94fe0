package history

import (
	"time"

	"github.com/masmgr/historian/internal/git"
)

var (
	jan1 = time.Date(2020, 1, 1, 9, 30, 0, 0, time.UTC)
	jan2 = time.Date(2020, 1, 2, 14, 0, 0, 0, time.UTC)
)

// scenarioProvider serves a 3-line file where lines 1-2 belong to abc123 and
// line 3 to def456.
func scenarioProvider() *git.MockProvider {
	return git.NewMockProvider("main", "def456", "a.txt", "first\nsecond\nthird\n",
		[]git.BlameHunk{
			{CommitID: "abc123", StartLine: 1, LineCount: 2},
			{CommitID: "def456", StartLine: 3, LineCount: 1},
		},
		&git.CommitMeta{ID: "abc123", AuthorEmail: "a@x.com", When: jan1, Message: "init"},
		&git.CommitMeta{ID: "def456", AuthorEmail: "b@x.com", When: jan2, Message: "add line\n\ndetails"},
	)
}

func lines(start int, texts ...string) []SourceLine {
	out := make([]SourceLine, len(texts))
	for i, t := range texts {
		out[i] = SourceLine{LineNo: start + i, Text: t}
	}
	return out
}

func entry(id, email string, date time.Time, summary string, ls []SourceLine) Entry {
	return Entry{
		Commit: CommitInfo{ID: id, AuthorEmail: email, Date: date, Summary: summary},
		Lines:  ls,
	}
}
