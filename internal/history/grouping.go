package history

import (
	"fmt"
	"sort"
	"strings"
)

// MergeOutcome classifies what happened to an entry added to a Log.
type MergeOutcome int

const (
	// Inserted means the entry's key was absent and the entry was stored as is.
	Inserted MergeOutcome = iota
	// Extended means the key was present and the entry added lines or a new member.
	Extended
	// Discarded means the key was present and the entry added nothing.
	Discarded
)

// String returns a string representation of the outcome.
func (o MergeOutcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case Extended:
		return "extended"
	case Discarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// GroupingPolicy decides the key an entry is stored under and how an entry
// merges into the entries already stored for that key.
type GroupingPolicy interface {
	Name() string
	Key(e Entry) Key
	// Merge folds incoming into a non-empty group and returns the new group.
	Merge(group []Entry, incoming Entry) ([]Entry, MergeOutcome)
}

// Policy names accepted by ParsePolicy.
const (
	PolicyCommit    = "commit"
	PolicyAuthorDay = "author-day"
)

// ParsePolicy returns the grouping policy with the given name.
func ParsePolicy(name string) (GroupingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyCommit, "sha", "id":
		return CommitPolicy{}, nil
	case PolicyAuthorDay, "day-author", "author-date", "date-author":
		return AuthorDayPolicy{}, nil
	default:
		return nil, fmt.Errorf("invalid grouping policy %q (expected %s or %s)", name, PolicyCommit, PolicyAuthorDay)
	}
}

// CommitPolicy keys entries by commit id. All hunks of a commit collapse into one
// entry whose lines are the union of the hunks' lines.
type CommitPolicy struct{}

func (CommitPolicy) Name() string { return PolicyCommit }

func (CommitPolicy) Key(e Entry) Key { return Key(e.Commit.ID) }

func (CommitPolicy) Merge(group []Entry, incoming Entry) ([]Entry, MergeOutcome) {
	merged, changed := mergeLines(group[0].Lines, incoming.Lines)
	if !changed {
		return group, Discarded
	}
	group[0].Lines = merged
	return group, Extended
}

// AuthorDayPolicy keys entries by commit day and author email. Distinct commits
// that share a key stay separate members of the group; hunks of the same commit
// merge into that commit's member.
type AuthorDayPolicy struct{}

func (AuthorDayPolicy) Name() string { return PolicyAuthorDay }

func (AuthorDayPolicy) Key(e Entry) Key {
	return Key(e.Commit.Date.Format(DateLayout) + " " + e.Commit.AuthorEmail)
}

func (AuthorDayPolicy) Merge(group []Entry, incoming Entry) ([]Entry, MergeOutcome) {
	for i := range group {
		if group[i].Commit.ID != incoming.Commit.ID {
			continue
		}
		merged, changed := mergeLines(group[i].Lines, incoming.Lines)
		if !changed {
			return group, Discarded
		}
		group[i].Lines = merged
		return group, Extended
	}
	return append(group, incoming.clone()), Extended
}

// mergeLines returns the union of existing and incoming ordered by line number.
// changed is false when incoming contributes no new line number.
func mergeLines(existing, incoming []SourceLine) (merged []SourceLine, changed bool) {
	present := make(map[int]struct{}, len(existing))
	for _, l := range existing {
		present[l.LineNo] = struct{}{}
	}

	merged = existing
	for _, l := range incoming {
		if _, ok := present[l.LineNo]; ok {
			continue
		}
		present[l.LineNo] = struct{}{}
		if !changed {
			merged = make([]SourceLine, len(existing), len(existing)+len(incoming))
			copy(merged, existing)
			changed = true
		}
		merged = append(merged, l)
	}

	if changed {
		sort.SliceStable(merged, func(i, j int) bool {
			return merged[i].LineNo < merged[j].LineNo
		})
	}
	return merged, changed
}
