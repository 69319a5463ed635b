package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gaurav-prasanna/claritycompass/config"
	"github.com/gaurav-prasanna/claritycompass/core"
)

const systemPrompt = `
You are a senior CRO/UX auditor. Evaluate ONLY the provided page text.

Lenses:
1) Value Clarity — what it is, for whom, why now
2) Info Hierarchy & Readability — headings, scannability, language
3) Brand Signals & Trust — consistency, proof, credibility cues
4) Conversion Path & Friction — primary CTA, next steps, objections

Return STRICT JSON only. If a field has no data, use [] or 0. Do not omit any field.
{
  "language": "en|fi|...",
  "summary": "3-4 sentences, specific to the page",
  "overallScore": 0-100,
  "scores": {
    "valueClarity": 0-5,
    "hierarchyReadability": 0-5,
    "brandTrust": 0-5,
    "conversionFriction": 0-5
  },
  "findings": [
    { "lens": "Value Clarity|Info Hierarchy & Readability|Brand Signals & Trust|Conversion Path & Friction",
      "title": "short issue title",
      "severity": "high|medium|low",
      "impact": "high|medium|low",
      "effort": "low|medium|high",
      "evidence": "quote or reference",
      "recommendation": "clear fix in 1-2 sentences" }
  ],
  "prioritizedActions": ["Top 5 actions in priority order"],
  "suggestedCTAs": ["CTA label"],
  "copyImprovements": [
    { "before": "short snippet", "after": "improved rewrite", "reason": "why this is clearer" }
  ]
}
`

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	cfg        config.OpenAIConfig
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Client. The API key must be configured.
func NewClient(cfg config.OpenAIConfig, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required for full reports")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Audit sends the page text to the model and normalizes its answer.
func (c *Client) Audit(ctx context.Context, pageURL, pageText string) (*Result, error) {
	userContent := fmt.Sprintf("URL: %s\n\nEXTRACTED PAGE TEXT (truncated):\n%s", pageURL, pageText)
	if pageText == "" {
		userContent = fmt.Sprintf("URL: %s\n\nWARNING: Could not fetch/parse page text. Provide a cautious audit referencing this limitation.", pageURL)
	}

	raw, err := c.complete(ctx, userContent)
	if err != nil {
		return nil, err
	}

	var parsed FullReport
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		c.logger.Warn("model returned non-JSON audit", "url", pageURL)
		return &Result{OK: true, Mode: "text", Result: raw}, nil
	}

	clampReport(&parsed)
	return &Result{OK: true, Mode: "json", Result: &parsed}, nil
}

func (c *Client) complete(ctx context.Context, userContent string) (string, error) {
	payload := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userContent},
		},
		Temperature: c.cfg.Temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling chat request: %w", err)
	}

	endpoint := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling model: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading model response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decoding model response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "{}", nil
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

// clampReport bounds the list fields the schema caps.
func clampReport(r *FullReport) {
	if len(r.Findings) > 15 {
		r.Findings = r.Findings[:15]
	}
	if len(r.PrioritizedActions) > 10 {
		r.PrioritizedActions = r.PrioritizedActions[:10]
	}
	if len(r.SuggestedCTAs) > 10 {
		r.SuggestedCTAs = r.SuggestedCTAs[:10]
	}
	if len(r.CopyImprovements) > 10 {
		r.CopyImprovements = r.CopyImprovements[:10]
	}
}

// Service runs the full audit end to end: best-effort page fetch, text
// extraction, model call.
type Service struct {
	fetcher core.Fetcher
	client  *Client
	logger  *slog.Logger
}

// NewService creates a Service.
func NewService(fetcher core.Fetcher, client *Client, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{fetcher: fetcher, client: client, logger: logger}
}

// Run audits the page at pageURL. Fetch or extraction failures downgrade
// to an empty-text audit rather than erroring.
func (s *Service) Run(ctx context.Context, pageURL string) (*Result, error) {
	pageText := ""
	if result, err := s.fetcher.Fetch(ctx, pageURL); err != nil {
		s.logger.Warn("full-report fetch failed", "url", pageURL, "error", err)
	} else if text, err := ExtractPageText(result.HTML); err != nil {
		s.logger.Warn("full-report extraction failed", "url", pageURL, "error", err)
	} else {
		pageText = text
	}

	return s.client.Audit(ctx, pageURL, pageText)
}
