package output

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/masmgr/historian/internal/changekind"
	"github.com/masmgr/historian/internal/history"
)

// ConsoleWriter writes a colored, human-oriented history listing.
type ConsoleWriter struct {
	// Now is the reference time for relative ages. Zero means time.Now().
	Now time.Time
}

// Write outputs the history report to the console.
func (w *ConsoleWriter) Write(report *HistoryReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	now := w.Now
	if now.IsZero() {
		now = time.Now()
	}

	entries := report.Log.Entries()
	stats := report.Stats()

	color.New(color.FgGreen).Fprintln(out, "File History")
	fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	fmt.Fprintf(out, "File: %s\n", report.FilePath)
	fmt.Fprintf(out, "Branch: %s (%s)\n", report.Branch, shortID(report.CommitID))
	fmt.Fprintf(out, "Grouping: %s, %d entries\n", report.Policy, len(entries))
	if stats.Lines > 0 {
		fmt.Fprintf(out, "Owners: %d authors, top %s (%.0f%%), entropy %.2f, %d-day burst %.2f\n",
			stats.Authors, stats.TopAuthor, stats.TopAuthorShare*100, stats.OwnershipEntropy,
			stats.BurstWindowDays, stats.BurstScore)
	}
	fmt.Fprintln(out)

	idColor := color.New(color.FgYellow)
	lineNoColor := color.New(color.Faint)
	for _, e := range entries {
		kind := report.Kind(e.Commit.ID)
		fmt.Fprintf(out, "%s  %s  %s  %s\n",
			e.Commit.Date.Format(history.DateLayout),
			idColor.Sprint(shortID(e.Commit.ID)),
			kindColor(kind)("%-8s", kind),
			e.Commit.AuthorEmail,
		)
		fmt.Fprintf(out, "    %s (%s, %s)\n",
			truncateMessage(e.Commit.Summary, 72),
			humanize.RelTime(e.Commit.Date, now, "ago", "from now"),
			pluralLines(len(e.Lines)),
		)
		for _, line := range e.Lines {
			fmt.Fprintf(out, "    %s %s\n", lineNoColor.Sprintf("%5d", line.LineNo), line.Text)
		}
		fmt.Fprintln(out)
	}

	return nil
}

func kindColor(kind changekind.Kind) func(string, ...interface{}) string {
	switch kind {
	case changekind.KindFix:
		return color.RedString
	case changekind.KindFeature:
		return color.GreenString
	case changekind.KindRefactor:
		return color.CyanString
	case changekind.KindDocs, changekind.KindTest:
		return color.BlueString
	default:
		return fmt.Sprintf
	}
}

func pluralLines(n int) string {
	if n == 1 {
		return "1 line"
	}
	return humanize.Comma(int64(n)) + " lines"
}
