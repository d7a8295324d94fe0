package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/masmgr/historian/internal/output"
)

// HistoryCmd creates the history command.
func HistoryCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"F"},
			Usage:   "Output format (text, prompt, console, json, csv, markdown, ci)",
			Value:   string(output.FormatText),
		},
		outputFlag(),
	)

	return &cli.Command{
		Name:   "history",
		Usage:  "Print the blame-derived history of a file",
		Flags:  flags,
		Action: historyAction,
	}
}

func historyAction(c *cli.Context) error {
	format, err := getOutputFormat(c.String("format"))
	if err != nil {
		return err
	}

	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}
	if !ctx.HasEntries() {
		ctx.warnf("No blamed lines in %s.", ctx.Result.FilePath)
	}

	return writeReport(c, ctx.Report(), format)
}
