package translate

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/srmist/campus-chat-go/internal/config"
	"github.com/srmist/campus-chat-go/internal/logger"
	"github.com/srmist/campus-chat-go/internal/metrics"
	"github.com/srmist/campus-chat-go/internal/ratelimit"
)

// Outgoing request budget for the scraped provider.
const (
	googleBurst      = 5
	googleRefillRate = 2 // tokens per second
)

// New builds the reply translator described by cfg: providers in order,
// wrapped in a retrying chain and, when CacheSize > 0, a cache.
// It returns nil without error when translation is disabled.
func New(ctx context.Context, cfg config.TranslateConfig, log *logger.Logger, m *metrics.Metrics) (*ReplyTranslator, error) {
	if !cfg.Enabled {
		return nil, nil //nolint:nilnil // translation disabled
	}

	providers := make([]Translator, 0, len(cfg.Providers))
	for _, name := range cfg.Providers {
		p, err := newProvider(ctx, name, cfg)
		if err != nil {
			for _, built := range providers {
				_ = built.Close()
			}
			return nil, err
		}
		providers = append(providers, p)
	}
	if len(providers) == 0 {
		return nil, errors.New("translate: no providers configured")
	}

	var t Translator = NewChain(providers, DefaultRetryConfig(), log, m)
	if cfg.CacheSize > 0 {
		t = NewCached(t, cfg.CacheSize, cfg.CacheTTL, m)
	}

	return NewReplyTranslator(t, cfg.Target, cfg.Timeout, log), nil
}

func newProvider(ctx context.Context, name string, cfg config.TranslateConfig) (Translator, error) {
	switch name {
	case config.ProviderGoogle:
		return NewGoogleWeb(cfg.GoogleURL,
			WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
			WithLimiter(ratelimit.New(googleBurst, googleRefillRate)),
		), nil
	case config.ProviderGemini:
		return NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	case config.ProviderGroq:
		return NewOpenAI(ProviderGroq, cfg.GroqAPIKey, cfg.GroqModel, "")
	default:
		return nil, fmt.Errorf("translate: unknown provider %q", name)
	}
}
