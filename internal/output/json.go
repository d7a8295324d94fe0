package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/masmgr/historian/internal/history"
)

// JSONWriter writes history reports as JSON.
type JSONWriter struct{}

// JSONHistoryReport is the JSON output structure for a history report.
type JSONHistoryReport struct {
	RepoPath    string       `json:"repo"`
	FilePath    string       `json:"file"`
	Branch      string       `json:"branch"`
	CommitID    string       `json:"commit"`
	Policy      string       `json:"policy"`
	GeneratedAt string       `json:"generatedAt"`
	Stats       HistoryStats `json:"stats"`
	Entries     []JSONEntry  `json:"entries"`
}

// JSONEntry is one history entry in JSON format.
type JSONEntry struct {
	Date     string     `json:"date"`
	Author   string     `json:"author"`
	CommitID string     `json:"commit"`
	Summary  string     `json:"summary"`
	Kind     string     `json:"kind"`
	Lines    []JSONLine `json:"lines"`
}

// JSONLine is one attributed source line.
type JSONLine struct {
	LineNo int    `json:"line"`
	Text   string `json:"text"`
}

// Write outputs the history report as indented JSON.
func (w *JSONWriter) Write(report *HistoryReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	return writeJSON(out, buildJSONReport(report))
}

func buildJSONReport(report *HistoryReport) JSONHistoryReport {
	entries := report.Log.Entries()
	result := JSONHistoryReport{
		RepoPath:    report.RepoPath,
		FilePath:    report.FilePath,
		Branch:      report.Branch,
		CommitID:    report.CommitID,
		Policy:      report.Policy,
		GeneratedAt: report.GeneratedAt.UTC().Format(time.RFC3339),
		Stats:       report.Stats(),
		Entries:     make([]JSONEntry, 0, len(entries)),
	}
	for _, e := range entries {
		result.Entries = append(result.Entries, buildJSONEntry(report, e))
	}
	return result
}

func buildJSONEntry(report *HistoryReport, e history.Entry) JSONEntry {
	lines := make([]JSONLine, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JSONLine{LineNo: l.LineNo, Text: l.Text}
	}
	return JSONEntry{
		Date:     e.Commit.Date.Format(time.RFC3339),
		Author:   e.Commit.AuthorEmail,
		CommitID: e.Commit.ID,
		Summary:  e.Commit.Summary,
		Kind:     string(report.Kind(e.Commit.ID)),
		Lines:    lines,
	}
}

func writeJSON(out io.Writer, data interface{}) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
