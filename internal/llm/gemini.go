package llm

import (
	"context"
	"errors"
	"iter"

	"google.golang.org/genai"
)

var errMissingAPIKey = errors.New("gemini requires an API key")

type geminiGenerator struct {
	client *genai.Client
	model  string
}

func newGemini(ctx context.Context, opts Options) (*geminiGenerator, error) {
	if opts.APIKey == "" {
		return nil, errMissingAPIKey
	}
	cfg := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &geminiGenerator{client: client, model: opts.Model}, nil
}

func (g *geminiGenerator) Name() string { return ProviderGemini }

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for resp, err := range g.client.Models.GenerateContentStream(ctx, g.model, genai.Text(prompt), nil) {
			if err != nil {
				yield("", err)
				return
			}
			if text := resp.Text(); text != "" && !yield(text, nil) {
				return
			}
		}
	}
}
