package history

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"pgregory.net/rapid"
)

// --- Generators ---

func genEntry() *rapid.Generator[Entry] {
	return rapid.Custom(func(t *rapid.T) Entry {
		id := rapid.IntRange(0, 5).Draw(t, "commit")
		start := rapid.IntRange(1, 50).Draw(t, "start")
		count := rapid.IntRange(0, 10).Draw(t, "count")

		ls := make([]SourceLine, count)
		for i := range ls {
			ls[i] = SourceLine{LineNo: start + i, Text: fmt.Sprintf("line %d", start+i)}
		}
		return Entry{
			Commit: CommitInfo{
				ID:          fmt.Sprintf("c%d", id),
				AuthorEmail: fmt.Sprintf("dev%d@x.com", id%2),
				Date:        time.Date(2020, 1, 1+id%3, 0, 0, 0, 0, time.UTC),
				Summary:     fmt.Sprintf("change %d", id),
			},
			Lines: ls,
		}
	})
}

func genPolicy() *rapid.Generator[GroupingPolicy] {
	return rapid.SampledFrom([]GroupingPolicy{CommitPolicy{}, AuthorDayPolicy{}})
}

// --- Property Tests ---

func TestRapidLog_ReplayIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		policy := genPolicy().Draw(t, "policy")
		entries := rapid.SliceOfN(genEntry(), 0, 20).Draw(t, "entries")

		once := NewLog(policy)
		for _, e := range entries {
			once.Add(e)
		}

		twice := NewLog(policy)
		for _, e := range entries {
			twice.Add(e)
		}
		for _, e := range entries {
			if got := twice.Add(e); got != Discarded {
				t.Fatalf("replayed Add = %v, want %v", got, Discarded)
			}
		}

		if !reflect.DeepEqual(once.Entries(), twice.Entries()) {
			t.Fatalf("replaying entries changed the log")
		}
	})
}

func TestRapidLog_LinesUniqueAndAscending(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		policy := genPolicy().Draw(t, "policy")
		entries := rapid.SliceOfN(genEntry(), 0, 30).Draw(t, "entries")

		log := NewLog(policy)
		for _, e := range entries {
			log.Add(e)
		}

		for _, e := range log.Entries() {
			for i := 1; i < len(e.Lines); i++ {
				if e.Lines[i-1].LineNo >= e.Lines[i].LineNo {
					t.Fatalf("commit %s lines not strictly ascending: %+v", e.Commit.ID, e.Lines)
				}
			}
		}
	})
}

func TestRapidLog_NoLineLost(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		policy := genPolicy().Draw(t, "policy")
		entries := rapid.SliceOfN(genEntry(), 0, 30).Draw(t, "entries")

		log := NewLog(policy)
		want := make(map[string]map[int]bool)
		for _, e := range entries {
			log.Add(e)
			if want[e.Commit.ID] == nil {
				want[e.Commit.ID] = make(map[int]bool)
			}
			for _, l := range e.Lines {
				want[e.Commit.ID][l.LineNo] = true
			}
		}

		got := make(map[string]map[int]bool)
		for _, e := range log.Entries() {
			if got[e.Commit.ID] != nil {
				t.Fatalf("commit %s stored in more than one entry", e.Commit.ID)
			}
			got[e.Commit.ID] = make(map[int]bool)
			for _, l := range e.Lines {
				got[e.Commit.ID][l.LineNo] = true
			}
		}

		if !reflect.DeepEqual(got, want) {
			t.Fatalf("stored lines %v, want %v", got, want)
		}
	})
}

func TestRapidLog_EntriesSortedByDate(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		entries := rapid.SliceOfN(genEntry(), 0, 30).Draw(t, "entries")

		log := NewLog(genPolicy().Draw(t, "policy"))
		for _, e := range entries {
			log.Add(e)
		}

		sorted := log.Entries()
		for i := 1; i < len(sorted); i++ {
			if sorted[i].Commit.Date.Before(sorted[i-1].Commit.Date) {
				t.Fatalf("entries out of date order at %d", i)
			}
		}
	})
}
