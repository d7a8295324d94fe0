package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/http"

	"github.com/r3labs/sse/v2"
)

type openAIGenerator struct {
	opts Options
}

func newOpenAI(opts Options) *openAIGenerator {
	return &openAIGenerator{opts: opts}
}

func (g *openAIGenerator) Name() string { return ProviderOpenAI }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
		FinishReason *string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

var (
	sseData = []byte("data:")
	sseDone = []byte("[DONE]")
)

// Generate calls an OpenAI-compatible /v1/chat/completions endpoint and reads the
// server-sent event stream until the [DONE] marker.
func (g *openAIGenerator) Generate(ctx context.Context, prompt string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		body, err := json.Marshal(chatRequest{
			Model:    g.opts.Model,
			Messages: []chatMessage{{Role: "user", Content: prompt}},
			Stream:   true,
		})
		if err != nil {
			yield("", err)
			return
		}

		header := http.Header{"Accept": []string{"text/event-stream"}}
		if g.opts.APIKey != "" {
			header.Set("Authorization", "Bearer "+g.opts.APIKey)
		}
		resp, err := postJSON(ctx, g.opts.HTTPClient, g.opts.baseURL()+"/v1/chat/completions", bytes.NewReader(body), header)
		if err != nil {
			yield("", err)
			return
		}
		defer resp.Body.Close()

		reader := sse.NewEventStreamReader(resp.Body, maxLineSize)
		for {
			event, err := reader.ReadEvent()
			if err != nil {
				// ReadEvent reports a canceled read as io.EOF.
				if ctxErr := ctx.Err(); ctxErr != nil {
					yield("", ctxErr)
					return
				}
				if !errors.Is(err, io.EOF) {
					yield("", fmt.Errorf("read stream: %w", err))
				}
				return
			}

			data := eventData(event)
			if data == nil {
				continue
			}
			if bytes.Equal(data, sseDone) {
				return
			}

			var chunk chatChunk
			if err := json.Unmarshal(data, &chunk); err != nil {
				yield("", fmt.Errorf("decode chunk: %w", err))
				return
			}
			if chunk.Error != nil {
				yield("", errors.New(chunk.Error.Message))
				return
			}
			for _, choice := range chunk.Choices {
				if choice.Delta.Content != "" && !yield(choice.Delta.Content, nil) {
					return
				}
			}
		}
	}
}

// eventData joins the data: fields of one raw SSE event. Nil means the event has none.
func eventData(event []byte) []byte {
	var data [][]byte
	for _, line := range bytes.Split(event, []byte("\n")) {
		line = bytes.TrimSuffix(line, []byte("\r"))
		if !bytes.HasPrefix(line, sseData) {
			continue
		}
		value := bytes.TrimPrefix(line, sseData)
		data = append(data, bytes.TrimPrefix(value, []byte(" ")))
	}
	if data == nil {
		return nil
	}
	return bytes.Join(data, []byte("\n"))
}
