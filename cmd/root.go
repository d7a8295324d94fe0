package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/historian/config"
	"github.com/masmgr/historian/internal/git"
	"github.com/masmgr/historian/internal/output"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:           "historian",
		Usage:          "Turn the blame of a single file into a dated change history",
		Version:        "1.0.0",
		DefaultCommand: "history",
		Commands: []*cli.Command{
			HistoryCmd(),
			PromptCmd(),
			SummarizeCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		},
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "repo",
			Aliases:  []string{"r"},
			Usage:    "Path to Git repository",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "file",
			Aliases:  []string{"f"},
			Usage:    "File to trace, relative to the repository root (doublestar globs allowed)",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "branch",
			Aliases:  []string{"b"},
			Usage:    "Branch whose tip is blamed",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "group",
			Usage: "Grouping policy (commit, author-day)",
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "Blame backend (gogit, git)",
		},
		&cli.StringFlag{
			Name:  "source",
			Usage: "Where line text is read from (worktree, revision)",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Print progress to stderr",
		},
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) (output.OutputFormat, error) {
	switch strings.ToLower(s) {
	case "md":
		return output.FormatMarkdown, nil
	case "ndjson":
		return output.FormatCI, nil
	case "txt", "plain":
		return output.FormatText, nil
	default:
		return output.ParseFormat(strings.ToLower(s))
	}
}

// parseBackendFlag parses the blame backend flag.
func parseBackendFlag(s string) (git.Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "gogit", "go-git":
		return git.BackendGoGit, nil
	case "git", "cli":
		return git.BackendCLI, nil
	default:
		return "", fmt.Errorf("invalid backend %q (expected gogit or git)", s)
	}
}

// parseSourceFlag parses the line source flag.
func parseSourceFlag(s string) (git.SourceOrigin, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "worktree", "disk":
		return git.SourceWorktree, nil
	case "revision", "commit", "blob":
		return git.SourceRevision, nil
	default:
		return "", fmt.Errorf("invalid source %q (expected worktree or revision)", s)
	}
}

// loadConfig loads configuration from file or defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply history overrides from CLI
	if c.IsSet("group") {
		cfg.History.Grouping = c.String("group")
	}
	if c.IsSet("backend") {
		cfg.History.Backend = c.String("backend")
	}
	if c.IsSet("source") {
		cfg.History.Source = c.String("source")
	}

	return cfg, nil
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
