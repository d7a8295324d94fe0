package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// createTestRepo creates a temporary git repository whose notes.txt has lines 1-2
// from a "init" commit and line 3 from a "fix typo" commit. It returns the
// repository path and its branch name.
func createTestRepo(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("Failed to initialize git repo: %v", err)
	}

	addCommit(t, repo, "notes.txt", "one\ntwo\n", "init", "a@x.com", time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC))
	addCommit(t, repo, "notes.txt", "one\ntwo\nthree\n", "fix typo", "b@x.com", time.Date(2020, 1, 2, 10, 0, 0, 0, time.UTC))

	head, err := repo.Head()
	if err != nil {
		t.Fatalf("Failed to read HEAD: %v", err)
	}
	return dir, head.Name().Short()
}

// addCommit writes content to rel and commits it with a fixed signature.
func addCommit(t *testing.T, repo *git.Repository, rel, content, message, email string, when time.Time) {
	t.Helper()

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}

	full := filepath.Join(w.Filesystem.Root(), rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err := w.Add(rel); err != nil {
		t.Fatalf("Failed to add file: %v", err)
	}

	sig := &object.Signature{Name: "Test Author", Email: email, When: when}
	if _, err := w.Commit(message, &git.CommitOptions{Author: sig, Committer: sig}); err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}
}

// runApp runs the CLI with args and captures stdout and stderr.
// The config flag points at a missing default so a developer's own config never leaks in.
func runApp(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	app := App()
	app.Writer = &out
	app.ErrWriter = &errOut

	cfgPath := filepath.Join(t.TempDir(), "historian.json")
	full := append([]string{"historian", "--config", cfgPath}, args...)
	err = app.Run(full)
	return out.String(), errOut.String(), err
}
