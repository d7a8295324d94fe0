package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/masmgr/historian/internal/output"
)

// PromptCmd creates the prompt command, which prints the changelog prompt without calling a model.
func PromptCmd() *cli.Command {
	return &cli.Command{
		Name:   "prompt",
		Usage:  "Print the changelog prompt for a file's history",
		Flags:  append(commonFlags(), outputFlag()),
		Action: promptAction,
	}
}

func promptAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}
	return writeReport(c, ctx.Report(), output.FormatPrompt)
}
