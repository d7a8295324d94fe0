package git

import "context"

// BlameProvider is the version-control boundary used to build a file history.
// All errors it returns are fatal for the run.
type BlameProvider interface {
	// ResolveBranch resolves a branch name (or any revision) to a commit id.
	ResolveBranch(ctx context.Context, name string) (string, error)
	// Blame computes the blame hunks of path as of commitID, in file order.
	Blame(ctx context.Context, commitID, path string) ([]BlameHunk, error)
	// LookupCommit loads the metadata of a commit.
	LookupCommit(ctx context.Context, commitID string) (*CommitMeta, error)
	// ReadFile returns the content of path as of commitID.
	ReadFile(ctx context.Context, commitID, path string) (string, error)
	// ListFiles returns every file path in the tree of commitID.
	ListFiles(ctx context.Context, commitID string) ([]string, error)
}

// Compile-time interface conformance checks.
var (
	_ BlameProvider = (*GoGitProvider)(nil)
	_ BlameProvider = (*CLIProvider)(nil)
	_ BlameProvider = (*MockProvider)(nil)
)

// NewBlameProvider opens the repository with the configured backend.
func NewBlameProvider(opts BlameOptions) (BlameProvider, error) {
	switch opts.Backend {
	case BackendCLI:
		return NewCLIProvider(opts)
	case BackendGoGit, "":
		return NewGoGitProvider(opts)
	default:
		return nil, &RepositoryError{Op: "open", Err: errUnknownBackend(opts.Backend)}
	}
}
