// Package gemini generates event descriptions with the Gemini generateContent API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"freelancercheckin/internal/domain"
)

// Defaults for Config fields left empty.
const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.5-flash"
	DefaultTimeout = 15 * time.Second
)

// Config holds the generator settings. An empty APIKey disables network access.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type generator struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
}

// NewGenerator returns a DescriptionGenerator backed by Gemini. A nil client uses http.DefaultClient.
func NewGenerator(cfg Config, client *http.Client, logger *slog.Logger) domain.DescriptionGenerator {
	if client == nil {
		client = http.DefaultClient
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	return &generator{cfg: cfg, client: client, logger: logger}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate makes one attempt and returns domain.FallbackDescription on any failure.
func (g *generator) Generate(ctx context.Context, facts domain.EventFacts) string {
	if g.cfg.APIKey == "" {
		return domain.FallbackDescription
	}
	text, err := g.generate(ctx, facts)
	if err != nil {
		g.logger.WarnContext(ctx, "description generation failed", "event", facts.Title, "err", err)
		return domain.FallbackDescription
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.FallbackDescription
	}
	return text
}

func (g *generator) generate(ctx context.Context, facts domain.EventFacts) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	prompt, err := BuildPrompt(facts)
	if err != nil {
		return "", err
	}
	body, err := json.Marshal(generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.cfg.BaseURL, url.PathEscape(g.cfg.Model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.cfg.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini api returned status: %d", resp.StatusCode)
	}

	var data generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}
	if len(data.Candidates) == 0 {
		return "", nil
	}
	var sb strings.Builder
	for _, p := range data.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
