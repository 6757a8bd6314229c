package watsonx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"hospital-assist-service/internal/config"
)

// apiVersion pins the watsonx.ai text-generation API revision.
const apiVersion = "2023-05-29"

// Client calls the watsonx.ai text-generation REST endpoint. It performs a
// single blocking request per call; failures are surfaced to the caller
// unmodified, with no retry.
type Client struct {
	baseURL      *url.URL
	apiKey       string
	modelID      string
	projectID    string
	maxNewTokens int
	httpClient   *http.Client
}

// NewClient constructs a Client from the startup config. An unset endpoint
// URL is tolerated here; the assist flow gates on the config before calling.
func NewClient(cfg config.WatsonxConfig, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid watsonx url: %w", err)
	}
	return &Client{
		baseURL:      u,
		apiKey:       cfg.APIKey,
		modelID:      cfg.ModelID,
		projectID:    cfg.ProjectID,
		maxNewTokens: cfg.MaxNewTokens,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type generationParameters struct {
	DecodingMethod string `json:"decoding_method"`
	MaxNewTokens   int    `json:"max_new_tokens"`
}

type generationRequest struct {
	ModelID    string               `json:"model_id"`
	Input      string               `json:"input"`
	Parameters generationParameters `json:"parameters"`
	ProjectID  string               `json:"project_id"`
}

type generationResponse struct {
	Results []struct {
		GeneratedText string `json:"generated_text"`
	} `json:"results"`
}

// GenerateText submits one prompt with greedy decoding and a capped output
// length and returns the generated text verbatim.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	u := *c.baseURL // copy
	u.Path = path.Join(c.baseURL.Path, "ml", "v1", "text", "generation")
	q := u.Query()
	q.Set("version", apiVersion)
	u.RawQuery = q.Encode()

	payload, err := json.Marshal(generationRequest{
		ModelID: c.modelID,
		Input:   prompt,
		Parameters: generationParameters{
			DecodingMethod: "greedy",
			MaxNewTokens:   c.maxNewTokens,
		},
		ProjectID: c.projectID,
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("watsonx api status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	var gr generationResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(gr.Results) == 0 {
		return "", fmt.Errorf("watsonx api returned no results")
	}

	return gr.Results[0].GeneratedText, nil
}
