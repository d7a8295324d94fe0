package history

import "sort"

// Log is the aggregated history of one file.
// It is built by Add during a single pass and read by the renderers afterwards.
type Log struct {
	policy GroupingPolicy
	keys   []Key
	groups map[Key][]Entry
}

// NewLog creates an empty log grouping entries with policy.
// A nil policy groups by commit id.
func NewLog(policy GroupingPolicy) *Log {
	if policy == nil {
		policy = CommitPolicy{}
	}
	return &Log{
		policy: policy,
		groups: make(map[Key][]Entry),
	}
}

// Policy returns the grouping policy of the log.
func (l *Log) Policy() GroupingPolicy {
	return l.policy
}

// Add folds one hunk-derived entry into the log.
func (l *Log) Add(e Entry) MergeOutcome {
	key := l.policy.Key(e)

	group, ok := l.groups[key]
	if !ok {
		l.keys = append(l.keys, key)
		l.groups[key] = []Entry{e.clone()}
		return Inserted
	}

	group, outcome := l.policy.Merge(group, e)
	l.groups[key] = group
	return outcome
}

// Len returns the number of entries in the log.
func (l *Log) Len() int {
	n := 0
	for _, g := range l.groups {
		n += len(g)
	}
	return n
}

// Keys returns the group keys in first-insertion order.
func (l *Log) Keys() []Key {
	keys := make([]Key, len(l.keys))
	copy(keys, l.keys)
	return keys
}

// Group returns a copy of the entries stored under key.
func (l *Log) Group(key Key) []Entry {
	group := l.groups[key]
	out := make([]Entry, len(group))
	for i, e := range group {
		out[i] = e.clone()
	}
	return out
}

// Entries returns every entry ordered by ascending commit date.
// Entries with equal dates keep first-insertion order.
func (l *Log) Entries() []Entry {
	entries := make([]Entry, 0, l.Len())
	for _, k := range l.keys {
		for _, e := range l.groups[k] {
			entries = append(entries, e.clone())
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Commit.Date.Before(entries[j].Commit.Date)
	})
	return entries
}
