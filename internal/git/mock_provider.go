package git

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// MockProvider is a test double for BlameProvider.
// It serves predefined blame data without needing a real Git repository.
type MockProvider struct {
	Branches map[string]string
	Hunks    []BlameHunk
	Commits  map[string]*CommitMeta
	Files    map[string]string
	Error    error

	// Lookups counts LookupCommit calls per commit id.
	Lookups map[string]int
}

// NewMockProvider creates a MockProvider serving a single branch, file and hunk list.
func NewMockProvider(branch, commitID, path, content string, hunks []BlameHunk, commits ...*CommitMeta) *MockProvider {
	m := &MockProvider{
		Branches: map[string]string{branch: commitID},
		Hunks:    hunks,
		Commits:  make(map[string]*CommitMeta, len(commits)),
		Files:    map[string]string{path: content},
		Lookups:  make(map[string]int),
	}
	for _, c := range commits {
		m.Commits[c.ID] = c
	}
	return m
}

func (m *MockProvider) ResolveBranch(_ context.Context, name string) (string, error) {
	if m.Error != nil {
		return "", &RepositoryError{Op: "resolve branch " + name, Err: m.Error}
	}
	id, ok := m.Branches[name]
	if !ok {
		return "", &RepositoryError{Op: "resolve branch " + name, Err: errors.New("reference not found")}
	}
	return id, nil
}

func (m *MockProvider) Blame(_ context.Context, _ string, path string) ([]BlameHunk, error) {
	if _, ok := m.Files[path]; !ok {
		return nil, &RepositoryError{Op: "blame " + path, Err: errors.New("file not found")}
	}
	return m.Hunks, nil
}

func (m *MockProvider) LookupCommit(_ context.Context, commitID string) (*CommitMeta, error) {
	if m.Lookups == nil {
		m.Lookups = make(map[string]int)
	}
	m.Lookups[commitID]++
	c, ok := m.Commits[commitID]
	if !ok {
		return nil, &CommitResolutionError{CommitID: commitID, Err: fmt.Errorf("object not found")}
	}
	return c, nil
}

func (m *MockProvider) ReadFile(_ context.Context, _ string, path string) (string, error) {
	content, ok := m.Files[path]
	if !ok {
		return "", &FileReadError{Path: path, Err: errors.New("file not found")}
	}
	return content, nil
}

func (m *MockProvider) ListFiles(_ context.Context, _ string) ([]string, error) {
	files := make([]string, 0, len(m.Files))
	for p := range m.Files {
		files = append(files, p)
	}
	sort.Strings(files)
	return files, nil
}
