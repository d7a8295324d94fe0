package output

import (
	"encoding/csv"
	"strconv"
	"time"
)

// CSVWriter writes one row per attributed source line.
type CSVWriter struct{}

// Write outputs the history report as CSV.
func (w *CSVWriter) Write(report *HistoryReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	writer := csv.NewWriter(out)
	if err := writer.Write([]string{"Date", "Author", "Commit", "Kind", "Summary", "Line", "Text"}); err != nil {
		return err
	}

	for _, e := range report.Log.Entries() {
		kind := string(report.Kind(e.Commit.ID))
		date := e.Commit.Date.Format(time.RFC3339)
		for _, line := range e.Lines {
			row := []string{
				date,
				e.Commit.AuthorEmail,
				e.Commit.ID,
				kind,
				e.Commit.Summary,
				strconv.Itoa(line.LineNo),
				line.Text,
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
