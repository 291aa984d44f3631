package translate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/corpix/uarand"
	"github.com/klauspost/compress/gzip"

	"github.com/srmist/campus-chat-go/internal/ratelimit"
)

// googleResultSelector locates the translated text on the mobile page.
const googleResultSelector = "div.result-container"

// GoogleWeb translates through the public mobile translate page. It needs
// no credentials and is the default provider.
type GoogleWeb struct {
	baseURL    string
	httpClient *http.Client
	limiter    *ratelimit.Limiter
}

// GoogleOption configures GoogleWeb.
type GoogleOption func(*GoogleWeb)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) GoogleOption {
	return func(g *GoogleWeb) { g.httpClient = c }
}

// WithLimiter throttles outgoing requests.
func WithLimiter(l *ratelimit.Limiter) GoogleOption {
	return func(g *GoogleWeb) { g.limiter = l }
}

// NewGoogleWeb creates a scraper against baseURL, e.g.
// "https://translate.google.com/m".
func NewGoogleWeb(baseURL string, opts ...GoogleOption) *GoogleWeb {
	g := &GoogleWeb{
		baseURL:    strings.TrimRight(baseURL, "?"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Provider returns ProviderGoogle.
func (g *GoogleWeb) Provider() Provider {
	return ProviderGoogle
}

// Close is a no-op.
func (g *GoogleWeb) Close() error {
	return nil
}

// Translate fetches the page for text and extracts the result container.
func (g *GoogleWeb) Translate(ctx context.Context, text, target string) (string, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	q := url.Values{}
	q.Set("sl", "auto")
	q.Set("tl", target)
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", wrapError(fmt.Errorf("failed to create request: %w", err), ProviderGoogle, target, 0)
	}
	req.Header.Set("User-Agent", uarand.GetRandom())
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", wrapError(fmt.Errorf("request failed: %w", err), ProviderGoogle, target, 0)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", wrapError(fmt.Errorf("unexpected status %d", resp.StatusCode), ProviderGoogle, target, resp.StatusCode)
	}

	var body io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		zr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return "", wrapError(fmt.Errorf("failed to decompress gzip: %w", err), ProviderGoogle, target, 0)
		}
		defer func() { _ = zr.Close() }()
		body = zr
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return "", wrapError(fmt.Errorf("failed to parse HTML: %w", err), ProviderGoogle, target, 0)
	}

	sel := doc.Find(googleResultSelector).First()
	if sel.Length() == 0 {
		return "", wrapError(errors.New("result container not found"), ProviderGoogle, target, 0)
	}
	out := strings.TrimSpace(sel.Text())
	if out == "" {
		return "", wrapError(ErrEmptyTranslation, ProviderGoogle, target, 0)
	}
	return out, nil
}
