package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// CIWriter writes history reports as NDJSON (one JSON object per line) for CI pipelines.
type CIWriter struct{}

// CISummary is the first line of CI output, containing aggregate statistics.
type CISummary struct {
	Type       string         `json:"type"`
	File       string         `json:"file"`
	Commit     string         `json:"commit"`
	KindCounts map[string]int `json:"kinds"`
	Latest     string         `json:"latest,omitempty"`
	HistoryStats
}

// CIEntry represents a single history entry in CI output.
type CIEntry struct {
	Type    string `json:"type"`
	Date    string `json:"date"`
	Author  string `json:"author"`
	Commit  string `json:"commit"`
	Kind    string `json:"kind"`
	Summary string `json:"summary"`
	Lines   int    `json:"lines"`
}

// Write outputs the history report as NDJSON.
func (w *CIWriter) Write(report *HistoryReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	entries := report.Log.Entries()

	summary := CISummary{
		Type:         "summary",
		File:         report.FilePath,
		Commit:       report.CommitID,
		KindCounts:   make(map[string]int),
		HistoryStats: report.Stats(),
	}
	for _, e := range entries {
		summary.KindCounts[string(report.Kind(e.Commit.ID))]++
	}
	if n := len(entries); n > 0 {
		summary.Latest = entries[n-1].Commit.Date.Format(time.RFC3339)
	}
	if err := writeNDJSONLine(out, summary); err != nil {
		return err
	}

	for _, e := range entries {
		entry := CIEntry{
			Type:    "entry",
			Date:    e.Commit.Date.Format(time.RFC3339),
			Author:  e.Commit.AuthorEmail,
			Commit:  e.Commit.ID,
			Kind:    string(report.Kind(e.Commit.ID)),
			Summary: e.Commit.Summary,
			Lines:   len(e.Lines),
		}
		if err := writeNDJSONLine(out, entry); err != nil {
			return err
		}
	}

	return nil
}

func writeNDJSONLine(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal NDJSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
