package git

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GoGitProvider computes blame with go-git against an opened repository.
// The repository handle is opened once and shared by all lookups of a run.
type GoGitProvider struct {
	repo *git.Repository
	opts BlameOptions
}

// NewGoGitProvider opens the repository at opts.RepoPath.
func NewGoGitProvider(opts BlameOptions) (*GoGitProvider, error) {
	repo, err := git.PlainOpen(opts.RepoPath)
	if err != nil {
		return nil, &RepositoryError{Op: "open " + opts.RepoPath, Err: err}
	}
	return &GoGitProvider{repo: repo, opts: opts}, nil
}

// ResolveBranch resolves refs/heads/<name> first, then falls back to any revision
// go-git understands (tags, hashes, HEAD).
func (p *GoGitProvider) ResolveBranch(_ context.Context, name string) (string, error) {
	if ref, err := p.repo.Reference(plumbing.NewBranchReferenceName(name), true); err == nil {
		return ref.Hash().String(), nil
	}

	hash, err := p.repo.ResolveRevision(plumbing.Revision(name))
	if err != nil {
		return "", &RepositoryError{Op: "resolve branch " + name, Err: err}
	}
	return hash.String(), nil
}

// Blame returns the blame hunks of path at commitID.
// go-git reports blame per line; consecutive lines from the same commit form one hunk.
func (p *GoGitProvider) Blame(_ context.Context, commitID, path string) ([]BlameHunk, error) {
	commit, err := p.commit(commitID)
	if err != nil {
		return nil, &RepositoryError{Op: "blame " + path, Err: err}
	}

	result, err := git.Blame(commit, path)
	if err != nil {
		return nil, &RepositoryError{Op: "blame " + path, Err: err}
	}

	hashes := make([]string, len(result.Lines))
	for i, line := range result.Lines {
		hashes[i] = line.Hash.String()
	}
	return hunksFromLineHashes(hashes), nil
}

// LookupCommit loads commit metadata.
func (p *GoGitProvider) LookupCommit(_ context.Context, commitID string) (*CommitMeta, error) {
	c, err := p.commit(commitID)
	if err != nil {
		return nil, &CommitResolutionError{CommitID: commitID, Err: err}
	}

	return &CommitMeta{
		ID:          c.Hash.String(),
		AuthorName:  c.Author.Name,
		AuthorEmail: c.Author.Email,
		When:        c.Committer.When,
		Message:     c.Message,
	}, nil
}

// ReadFile returns the content of path in the tree of commitID.
func (p *GoGitProvider) ReadFile(_ context.Context, commitID, path string) (string, error) {
	c, err := p.commit(commitID)
	if err != nil {
		return "", &FileReadError{Path: path, Err: err}
	}
	f, err := c.File(path)
	if err != nil {
		return "", &FileReadError{Path: path, Err: err}
	}
	content, err := f.Contents()
	if err != nil {
		return "", &FileReadError{Path: path, Err: err}
	}
	return content, nil
}

// ListFiles returns every file path in the tree of commitID.
func (p *GoGitProvider) ListFiles(_ context.Context, commitID string) ([]string, error) {
	c, err := p.commit(commitID)
	if err != nil {
		return nil, &RepositoryError{Op: "list files", Err: err}
	}
	tree, err := c.Tree()
	if err != nil {
		return nil, &RepositoryError{Op: "list files", Err: err}
	}

	var files []string
	err = tree.Files().ForEach(func(f *object.File) error {
		files = append(files, f.Name)
		return nil
	})
	if err != nil {
		return nil, &RepositoryError{Op: "list files", Err: err}
	}
	return files, nil
}

func (p *GoGitProvider) commit(commitID string) (*object.Commit, error) {
	if !plumbing.IsHash(commitID) {
		return nil, fmt.Errorf("invalid commit id %q", commitID)
	}
	c, err := p.repo.CommitObject(plumbing.NewHash(commitID))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// hunksFromLineHashes groups per-line commit ids into hunks of consecutive lines.
func hunksFromLineHashes(hashes []string) []BlameHunk {
	var hunks []BlameHunk
	for i, h := range hashes {
		lineNo := i + 1
		if n := len(hunks); n > 0 && hunks[n-1].CommitID == h {
			hunks[n-1].LineCount++
			continue
		}
		hunks = append(hunks, BlameHunk{CommitID: h, StartLine: lineNo, LineCount: 1})
	}
	return hunks
}

func errUnknownBackend(b Backend) error {
	return errors.New("unknown blame backend " + string(b) + " (expected gogit or git)")
}
