package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/historian/config"
	"github.com/masmgr/historian/internal/changekind"
	"github.com/masmgr/historian/internal/git"
	"github.com/masmgr/historian/internal/history"
	"github.com/masmgr/historian/internal/output"
)

// CommandContext holds common state for command execution.
// It encapsulates the shared setup logic across all history commands.
type CommandContext struct {
	Config   *config.Config
	RepoPath string
	Branch   string
	Policy   history.GroupingPolicy
	Result   *history.Result
	Kinds    map[string]changekind.Kind
	Verbose  bool

	stderr io.Writer
}

// NewCommandContext creates a context from CLI flags.
// It loads configuration, opens the repository and builds the file history.
// Errors from the git stage are returned unwrapped so their stage prefix leads the message.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	policy, err := history.ParsePolicy(cfg.History.Grouping)
	if err != nil {
		return nil, err
	}
	backend, err := parseBackendFlag(cfg.History.Backend)
	if err != nil {
		return nil, err
	}
	source, err := parseSourceFlag(cfg.History.Source)
	if err != nil {
		return nil, err
	}
	classifier, err := changekind.NewClassifier(cfg.ChangeKinds)
	if err != nil {
		return nil, fmt.Errorf("invalid change kind rules: %w", err)
	}

	ctx := &CommandContext{
		Config:   cfg,
		RepoPath: c.String("repo"),
		Branch:   c.String("branch"),
		Policy:   policy,
		Verbose:  c.Bool("verbose"),
		stderr:   errWriter(c),
	}

	ctx.logf("Opening %s (%s backend)", ctx.RepoPath, backend)
	provider, err := git.NewBlameProvider(git.BlameOptions{RepoPath: ctx.RepoPath, Backend: backend})
	if err != nil {
		return nil, err
	}

	counts := make(map[history.MergeOutcome]int)
	result, err := history.Build(c.Context, provider, history.BuildOptions{
		RepoPath: ctx.RepoPath,
		FilePath: c.String("file"),
		Branch:   ctx.Branch,
		Policy:   policy,
		Source:   source,
		Sentinels: history.Sentinels{
			UnknownEmail: cfg.Sentinels.UnknownEmail,
			NoSummary:    cfg.Sentinels.NoSummary,
		},
		OnHunk: func(_ git.BlameHunk, outcome history.MergeOutcome) {
			counts[outcome]++
		},
	})
	if err != nil {
		return nil, err
	}
	ctx.Result = result

	ctx.logf("Blamed %s at %s: %d lines, %d hunks (%d inserted, %d extended, %d discarded)",
		result.FilePath, shortCommit(result.CommitID), result.Lines, result.Hunks,
		counts[history.Inserted], counts[history.Extended], counts[history.Discarded])

	summaries := make(map[string]string)
	for _, e := range result.Log.Entries() {
		summaries[e.Commit.ID] = e.Commit.Summary
	}
	ctx.Kinds = classifier.ClassifyAll(summaries)

	return ctx, nil
}

// Report wraps the built history for the output writers.
func (ctx *CommandContext) Report() *output.HistoryReport {
	return &output.HistoryReport{
		RepoPath:    ctx.RepoPath,
		FilePath:    ctx.Result.FilePath,
		Branch:      ctx.Branch,
		CommitID:    ctx.Result.CommitID,
		Policy:      ctx.Policy.Name(),
		GeneratedAt: time.Now(),
		Log:         ctx.Result.Log,
		Kinds:       ctx.Kinds,

		BurstWindowDays: ctx.Config.History.BurstWindowDays,
	}
}

// HasEntries returns true if the blamed file had any attributed lines.
func (ctx *CommandContext) HasEntries() bool {
	return ctx.Result.Log.Len() > 0
}

func (ctx *CommandContext) logf(format string, args ...interface{}) {
	if !ctx.Verbose {
		return
	}
	color.New(color.FgCyan).Fprintf(ctx.stderr, format+"\n", args...)
}

func (ctx *CommandContext) warnf(format string, args ...interface{}) {
	color.New(color.FgYellow).Fprintf(ctx.stderr, format+"\n", args...)
}

func errWriter(c *cli.Context) io.Writer {
	if c.App != nil && c.App.ErrWriter != nil {
		return c.App.ErrWriter
	}
	return os.Stderr
}

func shortCommit(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
