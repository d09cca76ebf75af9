package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	ollama "github.com/ollama/ollama/api"
)

// OllamaBackend implements Backend against a local or remote Ollama server.
type OllamaBackend struct {
	client *ollama.Client
}

// NewOllamaBackend connects to serverURL, or to the environment-configured
// server when serverURL is empty.
func NewOllamaBackend(serverURL string) (*OllamaBackend, error) {
	if serverURL == "" {
		client, err := ollama.ClientFromEnvironment()
		if err != nil {
			return nil, fmt.Errorf("could not create ollama client: %w", err)
		}
		return &OllamaBackend{client: client}, nil
	}
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama server url %s: %w", serverURL, err)
	}
	return &OllamaBackend{client: ollama.NewClient(u, http.DefaultClient)}, nil
}

// IsOllamaModel checks if the given model name addresses an Ollama model.
func IsOllamaModel(modelName string) bool {
	return strings.HasPrefix(strings.ToLower(modelName), "ollama:")
}

func (o *OllamaBackend) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	model := strings.TrimPrefix(opts.Model, "ollama:")

	stream := false
	options := map[string]interface{}{}
	if opts.Temperature > 0 {
		options["temperature"] = opts.Temperature
	}
	if opts.MaxTokens > 0 {
		options["num_predict"] = opts.MaxTokens
	}

	req := &ollama.ChatRequest{
		Model: model,
		Messages: []ollama.Message{
			{Role: "user", Content: prompt},
		},
		Stream:  &stream,
		Options: options,
	}

	var sb strings.Builder
	err := o.client.Chat(ctx, req, func(resp ollama.ChatResponse) error {
		sb.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama chat request failed: %w", err)
	}
	return sb.String(), nil
}
