package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/historian/config"
	"github.com/masmgr/historian/internal/llm"
)

// SummarizeCmd creates the summarize command, which streams a model-written changelog.
func SummarizeCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.StringFlag{
			Name:  "llm-provider",
			Usage: "Text generation provider (ollama, openai, gemini)",
		},
		&cli.StringFlag{
			Name:  "host",
			Usage: "Model server host",
		},
		&cli.IntFlag{
			Name:  "port",
			Usage: "Model server port",
		},
		&cli.StringFlag{
			Name:    "model",
			Aliases: []string{"m"},
			Usage:   "Model name",
		},
		outputFlag(),
	)

	return &cli.Command{
		Name:   "summarize",
		Usage:  "Stream a changelog for a file's history from a language model",
		Flags:  flags,
		Action: summarizeAction,
	}
}

func summarizeAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	opts := llmOptions(c, ctx.Config)
	generator, err := llm.NewGenerator(c.Context, opts)
	if err != nil {
		return err
	}

	out, file, err := summaryWriter(c)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	buffered := bufio.NewWriter(out)

	runCtx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	ctx.logf("Streaming from %s (%s)", generator.Name(), opts.Model)
	streamErr := llm.Stream(runCtx, generator, ctx.Result.Log.Prompt(), buffered)

	fmt.Fprintln(buffered)
	if err := buffered.Flush(); err != nil && streamErr == nil {
		streamErr = err
	}
	return streamErr
}

// llmOptions merges the llm flags over the llm config section.
func llmOptions(c *cli.Context, cfg *config.Config) llm.Options {
	opts := llm.Options{
		Provider: cfg.LLM.Provider,
		Host:     cfg.LLM.Host,
		Port:     cfg.LLM.Port,
		Model:    cfg.LLM.Model,
		Timeout:  cfg.LLM.Timeout(),
	}
	if c.IsSet("llm-provider") {
		opts.Provider = c.String("llm-provider")
		// The configured model belongs to the configured provider.
		if !c.IsSet("model") && opts.Provider != cfg.LLM.Provider {
			opts.Model = ""
		}
	}
	if c.IsSet("host") {
		opts.Host = c.String("host")
	}
	if c.IsSet("port") {
		opts.Port = c.Int("port")
	}
	if c.IsSet("model") {
		opts.Model = c.String("model")
	}
	if cfg.LLM.APIKeyEnv != "" {
		opts.APIKey = os.Getenv(cfg.LLM.APIKeyEnv)
	}
	return opts
}

func summaryWriter(c *cli.Context) (io.Writer, *os.File, error) {
	if path := c.String("output"); path != "" {
		file, err := os.Create(path)
		if err != nil {
			return nil, nil, err
		}
		return file, file, nil
	}
	if c.App != nil && c.App.Writer != nil {
		return c.App.Writer, nil, nil
	}
	return os.Stdout, nil, nil
}
