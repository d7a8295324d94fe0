// Package history turns blame hunks into a per-commit history of a single file.
//
// The pipeline is: blame hunks -> Normalizer -> Entry values -> Log (grouped under a
// GroupingPolicy) -> FormatHistory / Prompt.
package history

import "time"

// Fallback values for metadata missing from a commit or the file snapshot.
const (
	DefaultUnknownEmail = "<UNKNOWN EMAIL>"
	DefaultNoSummary    = "<NO COMMIT MESSAGE>"
	MissingLineText     = "<error>"
)

// DateLayout is the MM/DD/YYYY layout used for rendering and day grouping.
const DateLayout = "01/02/2006"

// SourceLine is one line of the blamed file. LineNo is 1-based.
type SourceLine struct {
	LineNo int
	Text   string
}

// CommitInfo is the normalized commit metadata attached to an entry.
type CommitInfo struct {
	ID          string
	AuthorEmail string
	Date        time.Time // UTC, whole seconds
	Summary     string
}

// Entry records that a commit is responsible for a set of lines of the file.
// Lines are unique and ascending by LineNo.
type Entry struct {
	Commit CommitInfo
	Lines  []SourceLine
}

// Key identifies a group of entries in a Log.
type Key string

// Sentinels holds the fallback strings used when metadata is absent.
type Sentinels struct {
	UnknownEmail string
	NoSummary    string
}

// DefaultSentinels returns the standard fallback strings.
func DefaultSentinels() Sentinels {
	return Sentinels{
		UnknownEmail: DefaultUnknownEmail,
		NoSummary:    DefaultNoSummary,
	}
}

func (s Sentinels) withDefaults() Sentinels {
	if s.UnknownEmail == "" {
		s.UnknownEmail = DefaultUnknownEmail
	}
	if s.NoSummary == "" {
		s.NoSummary = DefaultNoSummary
	}
	return s
}

func (e Entry) clone() Entry {
	lines := make([]SourceLine, len(e.Lines))
	copy(lines, e.Lines)
	return Entry{Commit: e.Commit, Lines: lines}
}
