package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// CLIProvider computes blame by running the git binary.
type CLIProvider struct {
	opts BlameOptions
}

// NewCLIProvider checks that opts.RepoPath is a git work tree.
func NewCLIProvider(opts BlameOptions) (*CLIProvider, error) {
	p := &CLIProvider{opts: opts}
	if _, err := p.run(context.Background(), "rev-parse", "--git-dir"); err != nil {
		return nil, &RepositoryError{Op: "open " + opts.RepoPath, Err: err}
	}
	return p, nil
}

func (p *CLIProvider) ResolveBranch(ctx context.Context, name string) (string, error) {
	for _, rev := range []string{"refs/heads/" + name, name} {
		out, err := p.run(ctx, "rev-parse", "--verify", "--quiet", rev+"^{commit}")
		if err == nil {
			return strings.TrimSpace(string(out)), nil
		}
	}
	return "", &RepositoryError{Op: "resolve branch " + name, Err: fmt.Errorf("unknown revision %q", name)}
}

func (p *CLIProvider) Blame(ctx context.Context, commitID, path string) ([]BlameHunk, error) {
	out, err := p.run(ctx, "blame", "--porcelain", commitID, "--", path)
	if err != nil {
		return nil, &RepositoryError{Op: "blame " + path, Err: err}
	}
	hunks, err := parsePorcelainHunks(out)
	if err != nil {
		return nil, &RepositoryError{Op: "blame " + path, Err: err}
	}
	return hunks, nil
}

func (p *CLIProvider) LookupCommit(ctx context.Context, commitID string) (*CommitMeta, error) {
	// NUL-separated fields; the raw body comes last so it may contain anything but NUL.
	const format = "%H%x00%an%x00%ae%x00%ct%x00%B"

	out, err := p.run(ctx, "show", "-s", "--no-color", "--format="+format, commitID)
	if err != nil {
		return nil, &CommitResolutionError{CommitID: commitID, Err: err}
	}
	meta, err := parseCommitMeta(out)
	if err != nil {
		return nil, &CommitResolutionError{CommitID: commitID, Err: err}
	}
	return meta, nil
}

func (p *CLIProvider) ReadFile(ctx context.Context, commitID, path string) (string, error) {
	out, err := p.run(ctx, "show", commitID+":"+path)
	if err != nil {
		return "", &FileReadError{Path: path, Err: err}
	}
	return string(out), nil
}

func (p *CLIProvider) ListFiles(ctx context.Context, commitID string) ([]string, error) {
	out, err := p.run(ctx, "ls-tree", "-r", "-z", "--name-only", commitID)
	if err != nil {
		return nil, &RepositoryError{Op: "list files", Err: err}
	}
	var files []string
	for _, name := range bytes.Split(out, []byte{0x00}) {
		if len(name) > 0 {
			files = append(files, string(name))
		}
	}
	return files, nil
}

func (p *CLIProvider) run(ctx context.Context, args ...string) ([]byte, error) {
	args = append([]string{"-C", p.opts.RepoPath}, args...)
	cmd := exec.CommandContext(ctx, "git", args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git %s failed: %w: %s", args[2], err, strings.TrimSpace(stderr.String()))
	}
	return out, nil
}

// parsePorcelainHunks extracts hunks from `git blame --porcelain` output.
//
// Each group of lines from one commit starts with a header line:
//
//	<sha> <orig-line> <final-line> <num-lines>
//
// followed by optional commit headers and tab-prefixed content lines. Later lines
// of the same group repeat the header without <num-lines>.
func parsePorcelainHunks(out []byte) ([]BlameHunk, error) {
	var hunks []BlameHunk
	for _, line := range strings.Split(string(out), "\n") {
		if line == "" || line[0] == '\t' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 || !isHexID(fields[0]) {
			continue
		}

		start, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("parse final line %q: %w", fields[2], err)
		}
		count, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, fmt.Errorf("parse line count %q: %w", fields[3], err)
		}

		hunks = append(hunks, BlameHunk{CommitID: fields[0], StartLine: start, LineCount: count})
	}
	return hunks, nil
}

func parseCommitMeta(out []byte) (*CommitMeta, error) {
	fields := bytes.SplitN(out, []byte{0x00}, 5)
	if len(fields) < 5 {
		return nil, fmt.Errorf("unexpected git show format")
	}

	seconds, err := strconv.ParseInt(strings.TrimSpace(string(fields[3])), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse committer date: %w", err)
	}

	return &CommitMeta{
		ID:          strings.TrimSpace(string(fields[0])),
		AuthorName:  string(fields[1]),
		AuthorEmail: string(fields[2]),
		When:        time.Unix(seconds, 0).UTC(),
		Message:     strings.TrimRight(string(fields[4]), "\n"),
	}, nil
}

// isHexID reports whether s looks like a full SHA-1 or SHA-256 object id.
func isHexID(s string) bool {
	if len(s) != 40 && len(s) != 64 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
