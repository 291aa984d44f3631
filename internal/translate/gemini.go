package translate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"
)

// Gemini translates with the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini translator.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: api key is required")
	}
	if model == "" {
		return nil, errors.New("gemini: model is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Provider returns ProviderGemini.
func (g *Gemini) Provider() Provider {
	return ProviderGemini
}

// Close is a no-op; the genai client has nothing to release.
func (g *Gemini) Close() error {
	return nil
}

// Translate asks the model for a translation of text.
func (g *Gemini) Translate(ctx context.Context, text, target string) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.2),
		MaxOutputTokens: int32(maxOutputTokens(text)),
	}

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(TranslationPrompt(text, target)), config)
	if err != nil {
		status := 0
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			status = apiErr.Code
		}
		slog.WarnContext(ctx, "translation API call failed",
			"provider", ProviderGemini,
			"model", g.model,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err)
		return "", wrapError(fmt.Errorf("generate content failed: %w", err), ProviderGemini, target, status)
	}

	out := strings.TrimSpace(resp.Text())
	if out == "" {
		return "", wrapError(ErrEmptyTranslation, ProviderGemini, target, 0)
	}
	return out, nil
}
