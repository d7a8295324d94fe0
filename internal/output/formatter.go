package output

import (
	"fmt"
	"time"

	"github.com/masmgr/historian/internal/changekind"
	"github.com/masmgr/historian/internal/history"
)

// Compile-time interface conformance checks.
var (
	_ ReportWriter = (*TextWriter)(nil)
	_ ReportWriter = (*PromptWriter)(nil)
	_ ReportWriter = (*ConsoleWriter)(nil)
	_ ReportWriter = (*JSONWriter)(nil)
	_ ReportWriter = (*CSVWriter)(nil)
	_ ReportWriter = (*MarkdownWriter)(nil)
	_ ReportWriter = (*CIWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatText     OutputFormat = "text"
	FormatPrompt   OutputFormat = "prompt"
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
	FormatCI       OutputFormat = "ci"
)

// Formats lists every supported format, in the order shown in help text.
var Formats = []OutputFormat{
	FormatText, FormatPrompt, FormatConsole, FormatJSON, FormatCSV, FormatMarkdown, FormatCI,
}

// ParseFormat validates a format name. The empty string selects text.
func ParseFormat(name string) (OutputFormat, error) {
	if name == "" {
		return FormatText, nil
	}
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q", name)
}

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string
}

// HistoryReport is a built history log plus the context it was built in.
type HistoryReport struct {
	RepoPath    string
	FilePath    string
	Branch      string
	CommitID    string
	Policy      string
	GeneratedAt time.Time
	Log         *history.Log
	// Kinds maps commit id to its classified change kind. May be nil.
	Kinds map[string]changekind.Kind
	// BurstWindowDays sizes the window of the burst statistic. Zero selects the default.
	BurstWindowDays int
}

// Kind returns the change kind recorded for commitID.
func (r *HistoryReport) Kind(commitID string) changekind.Kind {
	if k, ok := r.Kinds[commitID]; ok {
		return k
	}
	return changekind.KindOther
}

// Stats computes the summary statistics of the report's log.
func (r *HistoryReport) Stats() HistoryStats {
	return ComputeStats(r.Log, r.BurstWindowDays)
}

// ReportWriter writes history reports.
type ReportWriter interface {
	Write(report *HistoryReport, options OutputOptions) error
}

// NewReportWriter creates a report writer for the specified format.
func NewReportWriter(format OutputFormat) ReportWriter {
	switch format {
	case FormatPrompt:
		return &PromptWriter{}
	case FormatConsole:
		return &ConsoleWriter{}
	case FormatJSON:
		return &JSONWriter{}
	case FormatCSV:
		return &CSVWriter{}
	case FormatMarkdown:
		return &MarkdownWriter{}
	case FormatCI:
		return &CIWriter{}
	default:
		return &TextWriter{}
	}
}
