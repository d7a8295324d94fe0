// Package llm streams text completions from local or hosted language models.
package llm

import (
	"context"
	"fmt"
	"io"
	"iter"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Provider names accepted by NewGenerator.
const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

const (
	DefaultHost  = "localhost"
	DefaultPort  = 11434
	DefaultModel = "llama3"

	// DefaultGeminiModel replaces DefaultModel for the gemini provider.
	DefaultGeminiModel = "gemini-2.5-flash"
)

// Generator produces a completion for a prompt as a sequence of text chunks.
// The sequence is finite and can be consumed once. A non-nil error ends it.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) iter.Seq2[string, error]
}

// Options configures a Generator.
type Options struct {
	Provider string
	Host     string
	Port     int
	// BaseURL overrides Host and Port when set, e.g. "https://api.example.com".
	BaseURL string
	Model   string
	APIKey  string
	// Timeout bounds connecting and waiting for the response headers.
	// Reading the streamed body is not bounded by it.
	Timeout time.Duration
	// HTTPClient is used by the HTTP providers. Nil means newStreamingClient(Timeout).
	HTTPClient *http.Client
}

func (o Options) withDefaults() Options {
	if o.Provider == "" {
		o.Provider = ProviderOllama
	}
	if o.Host == "" {
		o.Host = DefaultHost
	}
	if o.Port == 0 {
		o.Port = DefaultPort
	}
	if o.Model == "" {
		o.Model = DefaultModel
		if strings.EqualFold(o.Provider, ProviderGemini) {
			o.Model = DefaultGeminiModel
		}
	}
	if o.HTTPClient == nil {
		o.HTTPClient = newStreamingClient(o.Timeout)
	}
	return o
}

// newStreamingClient returns a client whose transport applies timeout to dialing and to
// the wait for response headers. http.Client.Timeout is left unset since it would also
// cut off a body that is still streaming.
func newStreamingClient(timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if timeout > 0 {
		transport.DialContext = (&net.Dialer{Timeout: timeout, KeepAlive: 30 * time.Second}).DialContext
		transport.ResponseHeaderTimeout = timeout
	}
	return &http.Client{Transport: transport}
}

func (o Options) baseURL() string {
	if o.BaseURL != "" {
		return strings.TrimRight(o.BaseURL, "/")
	}
	return "http://" + net.JoinHostPort(o.Host, strconv.Itoa(o.Port))
}

// NewGenerator returns the generator for opts.Provider.
func NewGenerator(ctx context.Context, opts Options) (Generator, error) {
	opts = opts.withDefaults()
	switch strings.ToLower(opts.Provider) {
	case ProviderOllama:
		return newOllama(opts), nil
	case ProviderOpenAI:
		return newOpenAI(opts), nil
	case ProviderGemini:
		return newGemini(ctx, opts)
	default:
		return nil, fmt.Errorf("unknown llm provider %q (expected %s, %s or %s)",
			opts.Provider, ProviderOllama, ProviderOpenAI, ProviderGemini)
	}
}

type flusher interface {
	Flush() error
}

// Stream writes every chunk g generates for prompt to w in arrival order.
// Buffered writers are flushed after each chunk so output appears as it is produced.
// Chunks written before an error remain written.
func Stream(ctx context.Context, g Generator, prompt string, w io.Writer) error {
	f, canFlush := w.(flusher)
	for chunk, err := range g.Generate(ctx, prompt) {
		if err != nil {
			return fmt.Errorf("%s: %w", g.Name(), err)
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
		if canFlush {
			if err := f.Flush(); err != nil {
				return fmt.Errorf("flush response: %w", err)
			}
		}
	}
	return nil
}

// postJSON sends body to url and returns the response when the status is 2xx.
func postJSON(ctx context.Context, client *http.Client, url string, body io.Reader, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%s returned %s: %s", url, resp.Status, strings.TrimSpace(string(msg)))
	}
	return resp, nil
}
