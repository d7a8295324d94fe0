package git

import (
	"context"
	"os/exec"
	"reflect"
	"testing"
	"time"
)

const (
	shaA = "1111111111111111111111111111111111111111"
	shaB = "2222222222222222222222222222222222222222"
)

func TestParsePorcelainHunks(t *testing.T) {
	out := []byte(shaA + " 1 1 2\n" +
		"author A\n" +
		"author-mail <a@x.com>\n" +
		"summary init the thing now\n" +
		"filename notes.txt\n" +
		"\tone\n" +
		shaA + " 2 2\n" +
		"\ttwo\n" +
		shaB + " 3 3 1\n" +
		"author B\n" +
		"previous " + shaA + " notes old.txt\n" +
		"filename notes.txt\n" +
		"\tthree\n" +
		shaA + " 3 4 1\n" +
		"\t" + shaB + " 9 9 9\n")

	hunks, err := parsePorcelainHunks(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []BlameHunk{
		{CommitID: shaA, StartLine: 1, LineCount: 2},
		{CommitID: shaB, StartLine: 3, LineCount: 1},
		{CommitID: shaA, StartLine: 4, LineCount: 1},
	}
	if !reflect.DeepEqual(hunks, expected) {
		t.Errorf("parsePorcelainHunks() = %+v, expected %+v", hunks, expected)
	}
}

func TestParsePorcelainHunks_Empty(t *testing.T) {
	hunks, err := parsePorcelainHunks(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hunks) != 0 {
		t.Errorf("expected 0 hunks, got %d", len(hunks))
	}
}

func TestParseCommitMeta(t *testing.T) {
	out := []byte(shaA + "\x00Alice\x00a@x.com\x001577836800\x00init\n\nbody\n")

	meta, err := parseCommitMeta(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.ID != shaA {
		t.Errorf("ID = %q", meta.ID)
	}
	if meta.AuthorEmail != "a@x.com" {
		t.Errorf("AuthorEmail = %q", meta.AuthorEmail)
	}
	if !meta.When.Equal(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("When = %v", meta.When)
	}
	if meta.Summary() != "init" {
		t.Errorf("Summary() = %q", meta.Summary())
	}

	if _, err := parseCommitMeta([]byte("garbage")); err == nil {
		t.Error("expected error for malformed output")
	}
}

func TestIsHexID(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: shaA, want: true},
		{input: "abc123", want: false},
		{input: "author-mail", want: false},
		{input: "G111111111111111111111111111111111111111", want: false},
	}
	for _, tt := range tests {
		if got := isHexID(tt.input); got != tt.want {
			t.Errorf("isHexID(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCLIProvider_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	r, first, second := twoCommitRepo(t)
	ctx := context.Background()

	p, err := NewCLIProvider(BlameOptions{RepoPath: r.dir, Backend: BackendCLI})
	if err != nil {
		t.Fatalf("NewCLIProvider: %v", err)
	}

	tip, err := p.ResolveBranch(ctx, r.branch(t))
	if err != nil {
		t.Fatalf("ResolveBranch: %v", err)
	}
	if tip != second {
		t.Errorf("ResolveBranch() = %s, want %s", tip, second)
	}

	hunks, err := p.Blame(ctx, tip, "notes.txt")
	if err != nil {
		t.Fatalf("Blame: %v", err)
	}
	expected := []BlameHunk{
		{CommitID: first, StartLine: 1, LineCount: 2},
		{CommitID: second, StartLine: 3, LineCount: 1},
	}
	if !reflect.DeepEqual(hunks, expected) {
		t.Errorf("Blame() = %+v, expected %+v", hunks, expected)
	}

	meta, err := p.LookupCommit(ctx, first)
	if err != nil {
		t.Fatalf("LookupCommit: %v", err)
	}
	if meta.AuthorEmail != "a@x.com" || meta.Summary() != "init" {
		t.Errorf("LookupCommit() = %+v", meta)
	}

	content, err := p.ReadFile(ctx, tip, "notes.txt")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if content != "one\ntwo\nthree\n" {
		t.Errorf("ReadFile() = %q", content)
	}

	files, err := p.ListFiles(ctx, tip)
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if !reflect.DeepEqual(files, []string{"notes.txt"}) {
		t.Errorf("ListFiles() = %v", files)
	}

	if _, err := p.ResolveBranch(ctx, "does-not-exist"); err == nil {
		t.Error("expected error for unknown branch")
	}
}
