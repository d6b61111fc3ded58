package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/finflowhq/finflow/internal/finance/application"
)

const (
	defaultModel    = "gemini-1.5-flash"
	defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	requestTimeout  = 15 * time.Second
	maxRetries      = 3
)

var ErrRateLimited = errors.New("summarizer rate limited")

// GeminiClient asks the Gemini generateContent endpoint for a report
// summary. Rate-limiting responses are retried with capped exponential
// backoff; every other failure is returned once.
type GeminiClient struct {
	apiKey     string
	endpoint   string
	model      string
	httpClient *http.Client
}

func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		apiKey:     apiKey,
		endpoint:   defaultEndpoint,
		model:      defaultModel,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// NewGeminiClientWithEndpoint is used by tests to point the client at a
// stub server.
func NewGeminiClientWithEndpoint(apiKey, endpoint string) *GeminiClient {
	client := NewGeminiClient(apiKey)
	client.endpoint = endpoint
	return client
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiClient) Summarize(ctx context.Context, prompt string) (*application.Summary, error) {
	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return nil, err
	}

	var raw string
	operation := func() error {
		text, err := c.generateContent(ctx, body)
		if err != nil {
			if errors.Is(err, ErrRateLimited) {
				return err
			}
			return backoff.Permanent(err)
		}
		raw = text
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	return parseSummary(raw)
}

func (c *GeminiClient) generateContent(ctx context.Context, body []byte) (string, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.endpoint, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("error querying Gemini API: %s", resp.Status)
	}

	var result generateContentResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&result); err != nil {
		return "", err
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response from Gemini API")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

// parseSummary expects the model to answer with a bare JSON object,
// optionally wrapped in a markdown code fence.
func parseSummary(raw string) (*application.Summary, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, "{") {
		return nil, errors.New("summarizer response is not a JSON object")
	}

	var summary application.Summary
	if err := json.Unmarshal([]byte(text), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
