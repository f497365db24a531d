// Package translate fetches word translations from a MyMemory-compatible
// translation API.
package translate

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"

	"github.com/wordbox/wordbox-backend/internal/domain"
)

const (
	defaultBaseURL  = "https://api.mymemory.translated.net"
	defaultAttempts = 3
)

// Client looks up translations over HTTP with retries on transient failures.
type Client struct {
	httpClient *resty.Client
	sourceLang string
	targetLang string
	log        *slog.Logger
}

// New creates a translation client for the given base URL and target
// language. An empty baseURL falls back to the public MyMemory endpoint.
func New(baseURL, targetLang string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &Client{
		httpClient: httpClient,
		sourceLang: "en",
		targetLang: targetLang,
		log:        logger.With("adapter", "translate"),
	}
}

type apiResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	ResponseStatus int `json:"responseStatus"`
}

// Translate returns the translation of text into the target language. When
// the upstream has no match it returns the "Translation not found" sentinel
// and no error; callers treat that value as still-needing-enrichment.
func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	var result apiResponse

	err := retry.Do(
		func() error {
			resp, err := c.httpClient.R().
				SetContext(ctx).
				SetQueryParam("q", text).
				SetQueryParam("langpair", c.sourceLang+"|"+c.targetLang).
				SetResult(&result).
				Get("/get")
			if err != nil {
				return err
			}
			if resp.StatusCode() >= 500 {
				return fmt.Errorf("translate: upstream status %d", resp.StatusCode())
			}
			if resp.StatusCode() != http.StatusOK {
				return retry.Unrecoverable(fmt.Errorf("translate: unexpected status %d", resp.StatusCode()))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(defaultAttempts),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		c.log.ErrorContext(ctx, "translation request failed",
			slog.String("text", text), slog.String("error", err.Error()))
		return "", fmt.Errorf("translate %q: %w", text, err)
	}

	translated := strings.TrimSpace(result.ResponseData.TranslatedText)
	if result.ResponseStatus != http.StatusOK || translated == "" || strings.EqualFold(translated, text) {
		// Echoing the input back means the upstream found no match.
		c.log.DebugContext(ctx, "no translation found", slog.String("text", text))
		return domain.TranslationNotFound, nil
	}

	c.log.DebugContext(ctx, "translated", slog.String("text", text))
	return translated, nil
}
