package translate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAI translates through an OpenAI-compatible chat completion API.
type OpenAI struct {
	client   openai.Client
	model    string
	provider Provider
}

// NewOpenAI creates a translator for an OpenAI-compatible provider. An empty
// baseURL selects the provider's registered endpoint.
func NewOpenAI(provider Provider, apiKey, model, baseURL string) (*OpenAI, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%s: api key is required", provider)
	}
	if model == "" {
		return nil, fmt.Errorf("%s: model is required", provider)
	}
	if baseURL == "" {
		var ok bool
		baseURL, ok = ProviderEndpoint[provider]
		if !ok {
			return nil, fmt.Errorf("unsupported OpenAI-compatible provider: %s", provider)
		}
	}

	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	)
	return &OpenAI{client: client, model: model, provider: provider}, nil
}

// Provider returns the configured provider.
func (o *OpenAI) Provider() Provider {
	return o.provider
}

// Close is a no-op; the client holds no resources.
func (o *OpenAI) Close() error {
	return nil
}

// Translate asks the model for a translation of text.
func (o *OpenAI) Translate(ctx context.Context, text, target string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: o.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(TranslationPrompt(text, target)),
		},
		Temperature: openai.Float(0.2),
		MaxTokens:   openai.Int(int64(maxOutputTokens(text))),
	}

	start := time.Now()
	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		status := 0
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			status = apiErr.StatusCode
		}
		slog.WarnContext(ctx, "translation API call failed",
			"provider", o.provider,
			"model", o.model,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err)
		return "", wrapError(fmt.Errorf("chat completion failed: %w", err), o.provider, target, status)
	}

	if len(resp.Choices) == 0 {
		return "", wrapError(ErrEmptyTranslation, o.provider, target, 0)
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", wrapError(ErrEmptyTranslation, o.provider, target, 0)
	}
	return out, nil
}

// maxOutputTokens leaves room for scripts that tokenize less densely than
// English.
func maxOutputTokens(text string) int {
	n := len([]rune(text)) * 4
	if n < 256 {
		return 256
	}
	if n > 4096 {
		return 4096
	}
	return n
}
