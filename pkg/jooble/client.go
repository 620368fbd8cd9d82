// Package jooble wraps the Jooble job-search API.
package jooble

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://jooble.org/api"

// SearchResult is one job posting as Jooble returns it.
type SearchResult struct {
	Title    string `json:"title"`
	Location string `json:"location"`
	Snippet  string `json:"snippet"`
	Salary   string `json:"salary"`
	Source   string `json:"source"`
	Type     string `json:"type"`
	Link     string `json:"link"`
	Company  string `json:"company"`
	Updated  string `json:"updated"`
}

type searchResponse struct {
	TotalCount int            `json:"totalCount"`
	Jobs       []SearchResult `json:"jobs"`
}

// Client calls Jooble's POST search endpoint. The API key is part of the
// request path, not a header.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Search posts {keywords, location} and returns the matching postings.
func (c *Client) Search(ctx context.Context, keywords, location string) ([]SearchResult, error) {
	body, err := json.Marshal(map[string]string{
		"keywords": keywords,
		"location": location,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal jooble request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", c.BaseURL, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build jooble request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call jooble api: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read jooble response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jooble api status %d: %s", resp.StatusCode, raw)
	}

	var parsed searchResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode jooble response: %w", err)
	}
	return parsed.Jobs, nil
}
