package history

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/masmgr/historian/internal/git"
)

// CommitResolver loads commit metadata. git.BlameProvider satisfies it.
type CommitResolver interface {
	LookupCommit(ctx context.Context, commitID string) (*git.CommitMeta, error)
}

// Normalizer converts blame hunks into entries.
// A commit that backs several hunks is resolved once per Normalizer.
type Normalizer struct {
	resolver  CommitResolver
	source    *SourceTable
	sentinels Sentinels
	seen      map[string]CommitInfo
}

// NewNormalizer creates a Normalizer reading line text from source.
func NewNormalizer(resolver CommitResolver, source *SourceTable, sentinels Sentinels) *Normalizer {
	return &Normalizer{
		resolver:  resolver,
		source:    source,
		sentinels: sentinels.withDefaults(),
		seen:      make(map[string]CommitInfo),
	}
}

// Normalize resolves the hunk's commit and attaches the lines it covers.
// A commit that cannot be resolved yields a *git.CommitResolutionError.
func (n *Normalizer) Normalize(ctx context.Context, hunk git.BlameHunk) (Entry, error) {
	commit, err := n.commit(ctx, hunk.CommitID)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Commit: commit, Lines: n.lines(hunk)}, nil
}

func (n *Normalizer) commit(ctx context.Context, id string) (CommitInfo, error) {
	if info, ok := n.seen[id]; ok {
		return info, nil
	}

	meta, err := n.resolver.LookupCommit(ctx, id)
	if err != nil {
		var cre *git.CommitResolutionError
		if errors.As(err, &cre) {
			return CommitInfo{}, err
		}
		return CommitInfo{}, &git.CommitResolutionError{CommitID: id, Err: err}
	}

	info := n.commitInfo(id, meta)
	n.seen[id] = info
	return info, nil
}

func (n *Normalizer) commitInfo(id string, meta *git.CommitMeta) CommitInfo {
	email := strings.TrimSpace(meta.AuthorEmail)
	if email == "" {
		email = n.sentinels.UnknownEmail
	}
	summary := meta.Summary()
	if summary == "" {
		summary = n.sentinels.NoSummary
	}
	return CommitInfo{
		ID:          id,
		AuthorEmail: email,
		Date:        normalizeDate(meta.When),
		Summary:     summary,
	}
}

// lines returns the inclusive 1-based range [StartLine, StartLine+LineCount-1].
func (n *Normalizer) lines(hunk git.BlameHunk) []SourceLine {
	start := hunk.StartLine
	if start < 1 {
		start = 1
	}
	end := hunk.EndLine()
	if end < start {
		return []SourceLine{}
	}

	lines := make([]SourceLine, 0, end-start+1)
	for i := start; i <= end; i++ {
		lines = append(lines, n.source.Line(i))
	}
	return lines
}

// normalizeDate converts to UTC whole seconds. A missing timestamp maps to the Unix epoch.
func normalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		return time.Unix(0, 0).UTC()
	}
	return t.UTC().Truncate(time.Second)
}
