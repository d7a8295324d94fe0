package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
)

// maxLineSize bounds one streamed NDJSON line or SSE event.
const maxLineSize = 1 << 20

type ollamaGenerator struct {
	opts Options
}

func newOllama(opts Options) *ollamaGenerator {
	return &ollamaGenerator{opts: opts}
}

func (g *ollamaGenerator) Name() string { return ProviderOllama }

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaChunk struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error"`
}

// Generate calls /api/generate, which answers with one JSON object per line.
func (g *ollamaGenerator) Generate(ctx context.Context, prompt string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		body, err := json.Marshal(ollamaRequest{Model: g.opts.Model, Prompt: prompt, Stream: true})
		if err != nil {
			yield("", err)
			return
		}

		resp, err := postJSON(ctx, g.opts.HTTPClient, g.opts.baseURL()+"/api/generate", bytes.NewReader(body), nil)
		if err != nil {
			yield("", err)
			return
		}
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}
			var chunk ollamaChunk
			if err := json.Unmarshal(line, &chunk); err != nil {
				yield("", fmt.Errorf("decode chunk: %w", err))
				return
			}
			if chunk.Error != "" {
				yield("", errors.New(chunk.Error))
				return
			}
			if chunk.Response != "" && !yield(chunk.Response, nil) {
				return
			}
			if chunk.Done {
				return
			}
		}
		if err := ctx.Err(); err != nil {
			yield("", err)
			return
		}
		if err := scanner.Err(); err != nil {
			yield("", fmt.Errorf("read stream: %w", err))
		}
	}
}
