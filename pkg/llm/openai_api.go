package llm

import (
	"context"
	"errors"
	"os"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIBackend implements Backend using the official openai-go SDK (chat
// completions). It also covers OpenAI-compatible providers via a custom
// base URL.
type OpenAIBackend struct {
	opts []option.RequestOption
}

// NewOpenAIBackend builds a backend from an API key and optional base URL.
// An empty apiKey falls back to the OPENAI_API_KEY environment variable.
func NewOpenAIBackend(apiKey, baseURL string) (*OpenAIBackend, error) {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, errors.New("openai api key missing; set OPENAI_API_KEY or configure api_key")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIBackend{opts: opts}, nil
}

func (o *OpenAIBackend) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	client := openai.NewClient(o.opts...)

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(opts.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}
	if opts.Temperature > 0 {
		params.Temperature = openai.Float(opts.Temperature)
	}
	if opts.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(opts.MaxTokens))
	}

	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
