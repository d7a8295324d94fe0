package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/masmgr/historian/internal/output"
)

func writeReport(c *cli.Context, report *output.HistoryReport, format output.OutputFormat) error {
	opts := output.OutputOptions{
		Format:     format,
		OutputPath: c.String("output"),
	}
	writer := output.NewReportWriter(opts.Format)
	return writer.Write(report, opts)
}
