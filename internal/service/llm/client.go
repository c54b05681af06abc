// Package llm provides the client for the hosted text-generation endpoint.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lifecoach/backend/internal/config"
)

// Client talks to a HuggingFace-style text-generation inference API. One
// prompt string in, one generated string out; no streaming, no retries.
type Client struct {
	baseURL    string
	model      string
	apiToken   string
	params     Parameters
	httpClient *http.Client
}

// Parameters are the sampling parameters sent with every generation request.
type Parameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	TopP           float64 `json:"top_p"`
	DoSample       bool    `json:"do_sample"`
	ReturnFullText bool    `json:"return_full_text"`
}

type generateRequest struct {
	Inputs     string     `json:"inputs"`
	Parameters Parameters `json:"parameters"`
}

type generateResponse struct {
	GeneratedText string `json:"generated_text"`
	Error         string `json:"error,omitempty"`
}

// NewClient builds a Client from configuration.
func NewClient(cfg config.LLMConfig) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		model:    cfg.Model,
		apiToken: cfg.APIToken,
		params: Parameters{
			MaxNewTokens:   cfg.MaxNewTokens,
			Temperature:    cfg.Temperature,
			TopP:           cfg.TopP,
			DoSample:       true,
			ReturnFullText: false,
		},
		httpClient: &http.Client{
			Timeout: 2 * time.Minute, // hosted inference can queue cold models
		},
	}
}

// Generate submits the prompt and returns the raw generated text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	payload := generateRequest{Inputs: prompt, Parameters: c.params}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/" + c.model
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	// The API returns a one-element array for single-input requests.
	var results []generateResponse
	if err := json.Unmarshal(body, &results); err != nil {
		var single generateResponse
		if err2 := json.Unmarshal(body, &single); err2 != nil {
			return "", fmt.Errorf("decode response: %w", err)
		}
		results = []generateResponse{single}
	}

	if len(results) == 0 {
		return "", fmt.Errorf("empty generation result")
	}
	if results[0].Error != "" {
		return "", fmt.Errorf("generation error: %s", results[0].Error)
	}

	return results[0].GeneratedText, nil
}
