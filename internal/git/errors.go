package git

import "fmt"

// RepositoryError reports a failure opening the repository, resolving the branch,
// or computing blame.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository: %s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error { return e.Err }

// FileReadError reports that the blamed file could not be read.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("file read: %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// CommitResolutionError reports that a commit referenced by blame could not be loaded.
type CommitResolutionError struct {
	CommitID string
	Err      error
}

func (e *CommitResolutionError) Error() string {
	return fmt.Sprintf("commit resolution: %s: %v", e.CommitID, e.Err)
}

func (e *CommitResolutionError) Unwrap() error { return e.Err }
