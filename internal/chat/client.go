package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type AskRequest struct {
	Question string `json:"question"`
}

type ContextSnippet struct {
	PageNumber  int    `json:"page_number"`
	PageContent string `json:"page_content"`
}

type AskResponse struct {
	Answer  string           `json:"answer"`
	Context []ContextSnippet `json:"context,omitempty"`
}

// Client talks to the question-answering service. One request per user
// message, no retries.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

func (c *Client) Ask(ctx context.Context, question string) (*AskResponse, error) {
	body, err := json.Marshal(AskRequest{Question: question})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ask", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("qa service returned status %d", resp.StatusCode)
	}

	var out AskResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
