package history

import (
	"context"
	"os"
	"path/filepath"

	"github.com/masmgr/historian/internal/git"
)

// BuildOptions configures Build.
type BuildOptions struct {
	RepoPath  string
	FilePath  string // relative to the repository root; may be a glob
	Branch    string
	Policy    GroupingPolicy
	Source    git.SourceOrigin
	Sentinels Sentinels

	// OnHunk, when set, is called with the outcome of every processed hunk.
	OnHunk func(hunk git.BlameHunk, outcome MergeOutcome)
}

// Result is the output of Build.
type Result struct {
	Log      *Log
	CommitID string // resolved branch tip
	FilePath string // resolved file path
	Lines    int    // lines in the source table
	Hunks    int
}

// Build runs blame for one file at the tip of a branch and aggregates the result.
// Errors come from the provider boundary and are returned unchanged.
func Build(ctx context.Context, provider git.BlameProvider, opts BuildOptions) (*Result, error) {
	tip, err := provider.ResolveBranch(ctx, opts.Branch)
	if err != nil {
		return nil, err
	}

	path, err := git.ResolvePath(ctx, provider, tip, opts.FilePath)
	if err != nil {
		return nil, err
	}

	content, err := readSource(ctx, provider, opts, tip, path)
	if err != nil {
		return nil, err
	}
	source := NewSourceTable(content)

	hunks, err := provider.Blame(ctx, tip, path)
	if err != nil {
		return nil, err
	}

	normalizer := NewNormalizer(provider, source, opts.Sentinels)
	log := NewLog(opts.Policy)
	for _, hunk := range hunks {
		entry, err := normalizer.Normalize(ctx, hunk)
		if err != nil {
			return nil, err
		}
		outcome := log.Add(entry)
		if opts.OnHunk != nil {
			opts.OnHunk(hunk, outcome)
		}
	}

	return &Result{
		Log:      log,
		CommitID: tip,
		FilePath: path,
		Lines:    source.Len(),
		Hunks:    len(hunks),
	}, nil
}

func readSource(ctx context.Context, provider git.BlameProvider, opts BuildOptions, commitID, path string) (string, error) {
	if opts.Source == git.SourceRevision {
		return provider.ReadFile(ctx, commitID, path)
	}

	data, err := os.ReadFile(filepath.Join(opts.RepoPath, filepath.FromSlash(path)))
	if err != nil {
		return "", &git.FileReadError{Path: path, Err: err}
	}
	return string(data), nil
}
