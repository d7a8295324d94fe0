package git

import (
	"strings"
	"time"
)

// BlameHunk is a contiguous range of lines in the blamed file attributed to one commit.
type BlameHunk struct {
	CommitID  string
	StartLine int // 1-based line number in the final file
	LineCount int
}

// EndLine returns the last line number covered by the hunk (inclusive).
func (h BlameHunk) EndLine() int {
	return h.StartLine + h.LineCount - 1
}

// CommitMeta represents the raw metadata of a commit as stored by the VCS.
// Missing fields are left empty; callers decide on fallbacks.
type CommitMeta struct {
	ID          string
	AuthorName  string
	AuthorEmail string
	When        time.Time
	Message     string
}

// Summary returns the first line of the commit message.
func (c CommitMeta) Summary() string {
	message := strings.TrimLeft(c.Message, "\r\n")
	if idx := strings.IndexByte(message, '\n'); idx != -1 {
		message = message[:idx]
	}
	return strings.TrimSpace(message)
}

// Backend selects the blame provider implementation.
type Backend string

const (
	BackendGoGit Backend = "gogit"
	BackendCLI   Backend = "git"
)

// SourceOrigin selects where the blamed file's text is read from.
type SourceOrigin string

const (
	SourceWorktree SourceOrigin = "worktree"
	SourceRevision SourceOrigin = "revision"
)

// BlameOptions configures a blame provider.
type BlameOptions struct {
	RepoPath string
	Backend  Backend
}
