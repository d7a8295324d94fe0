package output

import (
	"fmt"

	"github.com/masmgr/historian/internal/history"
)

// MarkdownWriter writes history reports as Markdown.
type MarkdownWriter struct{}

// Write outputs the history report as Markdown.
func (w *MarkdownWriter) Write(report *HistoryReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	entries := report.Log.Entries()

	// Header
	fmt.Fprintf(out, "# History of `%s`\n\n", report.FilePath)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	fmt.Fprintf(out, "**Branch:** %s (`%s`)\n\n", report.Branch, shortID(report.CommitID))
	fmt.Fprintf(out, "**Generated:** %s\n\n", report.GeneratedAt.Format(reportDateLayout))

	if len(entries) == 0 {
		fmt.Fprintln(out, "No history entries.")
		return nil
	}

	// Summary table
	fmt.Fprintln(out, "| Date | Commit | Kind | Author | Summary | Lines |")
	fmt.Fprintln(out, "|------|--------|------|--------|---------|-------|")
	for _, e := range entries {
		fmt.Fprintf(out, "| %s | `%s` | %s | %s | %s | %d |\n",
			e.Commit.Date.Format(history.DateLayout),
			shortID(e.Commit.ID),
			report.Kind(e.Commit.ID),
			escapeMarkdown(e.Commit.AuthorEmail),
			escapeMarkdown(truncateMessage(e.Commit.Summary, 60)),
			len(e.Lines),
		)
	}

	// Per-entry line listings
	for _, e := range entries {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "## %s %s\n\n", e.Commit.Date.Format(history.DateLayout), escapeMarkdown(e.Commit.Summary))
		fmt.Fprintf(out, "%s, `%s`\n\n", escapeMarkdown(e.Commit.AuthorEmail), e.Commit.ID)
		fmt.Fprintln(out, "```")
		for _, line := range e.Lines {
			fmt.Fprintf(out, "%d: %s\n", line.LineNo, line.Text)
		}
		fmt.Fprintln(out, "```")
	}

	return nil
}
