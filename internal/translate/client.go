package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const apiVersion = "3.0"

// Config holds the configuration for the Azure Translator client
type Config struct {
	Endpoint   string // e.g. https://api.cognitive.microsofttranslator.com
	APIKey     string
	Region     string   // optional resource region header
	SourceLang string   // fixed source language, e.g. "de"
	TargetLang []string // target language codes, e.g. ["en"]
	Timeout    int      // request timeout in seconds, 0 means no timeout
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("translator endpoint is required")
	}
	if _, err := url.Parse(c.Endpoint); err != nil {
		return fmt.Errorf("invalid translator endpoint: %w", err)
	}
	if c.APIKey == "" {
		return fmt.Errorf("translator API key is required")
	}
	if c.SourceLang == "" {
		return fmt.Errorf("source language is required")
	}
	if len(c.TargetLang) == 0 {
		return fmt.Errorf("at least one target language is required")
	}
	return nil
}

// Client talks to the Azure Translator text API. It is stateless from the
// caller's perspective and safe to share across jobs.
type Client struct {
	config     *Config
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new translator client with the given configuration
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Client{
		config:  config,
		baseURL: config.Endpoint,
		httpClient: &http.Client{
			Timeout: time.Duration(config.Timeout) * time.Second,
		},
	}, nil
}

// Translate sends the whole batch as a single request and returns one
// translated string per input, in input order. Any service failure is
// returned as an error; a response whose item count differs from the request
// is also an error, so callers can rely on index alignment.
func (c *Client) Translate(ctx context.Context, texts []string) ([]string, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	body := make([]TranslateRequestItem, len(texts))
	for i, text := range texts {
		body[i] = TranslateRequestItem{Text: text}
	}

	items, err := c.makeRequest(ctx, body)
	if err != nil {
		return nil, err
	}

	if len(items) != len(texts) {
		return nil, fmt.Errorf("translator returned %d items for %d inputs", len(items), len(texts))
	}

	translated := make([]string, len(items))
	for i, item := range items {
		if len(item.Translations) == 0 {
			return nil, fmt.Errorf("translator returned no translation for item %d", i)
		}
		translated[i] = item.Translations[0].Text
	}

	return translated, nil
}

func (c *Client) makeRequest(ctx context.Context, payload []TranslateRequestItem) ([]TranslateResponseItem, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.requestURL(), bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.config.APIKey)
	if c.config.Region != "" {
		req.Header.Set("Ocp-Apim-Subscription-Region", c.config.Region)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("translator request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(respBody, apiErr); err != nil {
			return nil, fmt.Errorf("translator returned HTTP %d: %s", resp.StatusCode, string(respBody))
		}
		return nil, apiErr
	}

	var items []TranslateResponseItem
	if err := json.Unmarshal(respBody, &items); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return items, nil
}

func (c *Client) requestURL() string {
	values := url.Values{}
	values.Set("api-version", apiVersion)
	values.Set("from", c.config.SourceLang)
	for _, to := range c.config.TargetLang {
		values.Add("to", to)
	}
	return c.baseURL + "/translate?" + values.Encode()
}
