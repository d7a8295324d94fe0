package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

type testRepo struct {
	dir  string
	repo *gogit.Repository
	wt   *gogit.Worktree
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}
	return &testRepo{dir: dir, repo: repo, wt: wt}
}

func (r *testRepo) write(t *testing.T, rel, content string) {
	t.Helper()
	full := filepath.Join(r.dir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := r.wt.Add(rel); err != nil {
		t.Fatalf("Add: %v", err)
	}
}

func (r *testRepo) commit(t *testing.T, msg, email string, when time.Time) string {
	t.Helper()
	sig := &object.Signature{Name: "Test", Email: email, When: when}
	hash, err := r.wt.Commit(msg, &gogit.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	return hash.String()
}

func (r *testRepo) branch(t *testing.T) string {
	t.Helper()
	head, err := r.repo.Head()
	if err != nil {
		t.Fatalf("Head: %v", err)
	}
	return head.Name().Short()
}

func (r *testRepo) checkoutNew(t *testing.T, name string) {
	t.Helper()
	if err := r.wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
		Create: true,
	}); err != nil {
		t.Fatalf("Checkout(%s): %v", name, err)
	}
}

// twoCommitRepo builds the file notes.txt where lines 1-2 come from "init" and
// line 3 from "add line".
func twoCommitRepo(t *testing.T) (r *testRepo, first, second string) {
	t.Helper()
	r = newTestRepo(t)
	r.write(t, "notes.txt", "one\ntwo\n")
	first = r.commit(t, "init", "a@x.com", time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC))
	r.write(t, "notes.txt", "one\ntwo\nthree\n")
	second = r.commit(t, "add line\n\nmore detail", "b@x.com", time.Date(2020, 1, 2, 10, 0, 0, 0, time.UTC))
	return r, first, second
}
