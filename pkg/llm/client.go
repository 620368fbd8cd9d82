// Package llm is a thin client for an OpenAI-compatible chat-completions
// endpoint used to draft cover letters.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const requestTimeout = 120 * time.Second

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Temperature float64   `json:"temperature"`
	Messages    []Message `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client calls a chat-completions API with a fixed model and bearer key.
type Client struct {
	APIURL string
	APIKey string
	Model  string
	HTTP   *http.Client
}

func NewClient(apiURL, apiKey, model string) *Client {
	return &Client{
		APIURL: apiURL,
		APIKey: apiKey,
		Model:  model,
		HTTP:   &http.Client{Timeout: requestTimeout},
	}
}

const systemPrompt = "You are an expert career counselor and professional writer. " +
	"You must write a complete, professional cover letter using ONLY the specific information provided. " +
	"You must NEVER invent names, companies, locations, or other details that are not explicitly provided in the user profile and job description."

const userPromptRules = `Write a complete professional cover letter following these STRICT rules:
1. EXACTLY 120-150 words (count carefully)
2. Do NOT start with 'Dear Hiring Manager,' - start directly with the content
3. Use ONLY the specific job title, company name, and location from the job description
4. Use ONLY the specific user information provided (name, location, experience, etc.)
5. If company name is not provided, use 'the company' or 'your organization'
6. If location is not provided, do not mention location
7. If user's name is not provided, do not mention specific names
8. NEVER invent or guess: names, companies, locations, software, previous employers, etc.
9. Keep the content general but professional if specific details are missing
10. End with 'Sincerely,' followed by a new line
11. Focus on transferable skills and enthusiasm for the role
12. Must be complete and ready to send immediately

CRITICAL RULES:
- NO invented details anywhere in the letter
- NO fake company names, locations, or software mentions
- Use only what is explicitly provided in the inputs
- If information is missing, write around it professionally
- Keep it professional but general when specifics aren't available

Write the complete cover letter now:`

// GenerateCoverLetter asks the model for a letter drawn strictly from the
// given profile and job description, with temperature 0.7.
func (c *Client) GenerateCoverLetter(ctx context.Context, jobDescription, userProfile string) (string, error) {
	userPrompt := fmt.Sprintf("User Profile: %s\n\nJob Description: %s\n\n%s", userProfile, jobDescription, userPromptRules)
	return c.Chat(ctx, []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	})
}

// Chat sends the messages and returns choices[0].message.content.
func (c *Client) Chat(ctx context.Context, messages []Message) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.Model,
		Temperature: 0.7,
		Messages:    messages,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.APIURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("call llm api: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read llm response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("llm api status %d: %s", resp.StatusCode, raw)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode llm response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("llm response has no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
