package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/masmgr/historian/internal/changekind"
	"github.com/masmgr/historian/internal/history"
)

var (
	day1 = time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC)
	day2 = time.Date(2020, 1, 2, 10, 0, 0, 0, time.UTC)
)

const (
	idInit = "1111111111111111111111111111111111111111"
	idFix  = "2222222222222222222222222222222222222222"
)

func testReport() *HistoryReport {
	log := history.NewLog(nil)
	// Inserted out of date order so writers must rely on Entries() ordering.
	log.Add(history.Entry{
		Commit: history.CommitInfo{ID: idFix, AuthorEmail: "b@x.com", Date: day2, Summary: "fix | overflow"},
		Lines:  []history.SourceLine{{LineNo: 3, Text: "third"}},
	})
	log.Add(history.Entry{
		Commit: history.CommitInfo{ID: idInit, AuthorEmail: "a@x.com", Date: day1, Summary: "initial import"},
		Lines:  []history.SourceLine{{LineNo: 1, Text: "first"}, {LineNo: 2, Text: "second"}},
	})

	return &HistoryReport{
		RepoPath:    "/test/repo",
		FilePath:    "a.txt",
		Branch:      "main",
		CommitID:    idFix,
		Policy:      history.PolicyCommit,
		GeneratedAt: time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC),
		Log:         log,
		Kinds: map[string]changekind.Kind{
			idInit: changekind.KindFeature,
			idFix:  changekind.KindFix,
		},
	}
}

// writeToTemp runs w against report with output directed to a temp file and returns its content.
func writeToTemp(t *testing.T, w ReportWriter, report *HistoryReport) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out")
	if err := w.Write(report, OutputOptions{OutputPath: path}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	return string(data)
}
