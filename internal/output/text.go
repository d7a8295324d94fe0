package output

import (
	"io"
)

// TextWriter writes the plain history listing.
type TextWriter struct{}

// Write outputs report.Log.FormatHistory() unchanged.
func (w *TextWriter) Write(report *HistoryReport, options OutputOptions) error {
	return writeString(report.Log.FormatHistory(), options.OutputPath)
}

// PromptWriter writes the changelog instruction prompt.
type PromptWriter struct{}

// Write outputs report.Log.Prompt() unchanged.
func (w *PromptWriter) Write(report *HistoryReport, options OutputOptions) error {
	return writeString(report.Log.Prompt(), options.OutputPath)
}

func writeString(s, outputPath string) error {
	out, file, err := openOutputWriter(outputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	_, err = io.WriteString(out, s)
	return err
}
