package git

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ResolvePath resolves a file argument against the tree of commitID.
// Plain paths are returned normalized; glob patterns must match exactly one file.
func ResolvePath(ctx context.Context, provider BlameProvider, commitID, pattern string) (string, error) {
	// Normalize path separators
	pattern = strings.TrimPrefix(strings.ReplaceAll(pattern, "\\", "/"), "./")

	if !isGlob(pattern) {
		return pattern, nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return "", &FileReadError{Path: pattern, Err: fmt.Errorf("invalid glob pattern")}
	}

	files, err := provider.ListFiles(ctx, commitID)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, f := range files {
		matched, _ := doublestar.Match(pattern, f)
		if matched {
			matches = append(matches, f)
		}
	}
	sort.Strings(matches)

	switch len(matches) {
	case 0:
		return "", &FileReadError{Path: pattern, Err: fmt.Errorf("no file matches pattern")}
	case 1:
		return matches[0], nil
	default:
		return "", &FileReadError{Path: pattern, Err: fmt.Errorf("pattern matches %d files: %s", len(matches), strings.Join(matches, ", "))}
	}
}

func isGlob(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}
