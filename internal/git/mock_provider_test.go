package git

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMockProvider(t *testing.T) {
	ctx := context.Background()
	commit := &CommitMeta{ID: "abc123", AuthorEmail: "a@x.com", When: time.Now(), Message: "init"}
	m := NewMockProvider("main", "abc123", "a.txt", "one\ntwo\n",
		[]BlameHunk{{CommitID: "abc123", StartLine: 1, LineCount: 2}}, commit)

	t.Run("resolves branch", func(t *testing.T) {
		id, err := m.ResolveBranch(ctx, "main")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "abc123" {
			t.Errorf("ResolveBranch() = %q, expected %q", id, "abc123")
		}
	})

	t.Run("unknown branch is a repository error", func(t *testing.T) {
		_, err := m.ResolveBranch(ctx, "nope")
		var re *RepositoryError
		if !errors.As(err, &re) {
			t.Fatalf("expected RepositoryError, got %v", err)
		}
	})

	t.Run("counts lookups", func(t *testing.T) {
		if _, err := m.LookupCommit(ctx, "abc123"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Lookups["abc123"] != 1 {
			t.Errorf("Lookups = %d, expected 1", m.Lookups["abc123"])
		}
	})

	t.Run("missing commit is a resolution error", func(t *testing.T) {
		_, err := m.LookupCommit(ctx, "zzz")
		var cre *CommitResolutionError
		if !errors.As(err, &cre) {
			t.Fatalf("expected CommitResolutionError, got %v", err)
		}
	})

	t.Run("missing file is a read error", func(t *testing.T) {
		_, err := m.ReadFile(ctx, "abc123", "b.txt")
		var fre *FileReadError
		if !errors.As(err, &fre) {
			t.Fatalf("expected FileReadError, got %v", err)
		}
	})
}
