package studio

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrEmptyPrompt is a validation failure detected before any network call.
var ErrEmptyPrompt = errors.New("prompt must not be empty")

// APIError is a non-2xx backend response, carrying the backend's structured
// error message or a generic fallback.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api status %d: %s", e.StatusCode, e.Message)
}

// ProtocolError is a 2xx backend response missing the expected image field.
type ProtocolError struct {
	Message string
}

func (e *ProtocolError) Error() string { return "protocol: " + e.Message }

// Client bridges session actions to the backend endpoints. It performs no
// retries and no caching; a failed call surfaces immediately.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a backend client. httpClient may be nil.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type generateRequest struct {
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspectRatio"`
}

type editRequest struct {
	Prompt          string `json:"prompt"`
	ImageBase64Data string `json:"imageBase64Data"`
	MimeType        string `json:"mimeType"`
	MaskBase64Data  string `json:"maskBase64Data,omitempty"`
}

type imageResponse struct {
	ImageBase64 string `json:"imageBase64"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Generate requests a text-to-image generation and returns the base64 image.
func (c *Client) Generate(ctx context.Context, prompt, aspectRatio string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}
	return c.post(ctx, "/api/generate", generateRequest{Prompt: prompt, AspectRatio: aspectRatio})
}

// Edit requests an image edit. maskBase64 may be empty, in which case the
// backend performs an unconstrained edit.
func (c *Client) Edit(ctx context.Context, prompt, imageBase64, mimeType, maskBase64 string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}
	return c.post(ctx, "/api/edit", editRequest{
		Prompt:          prompt,
		ImageBase64Data: imageBase64,
		MimeType:        mimeType,
		MaskBase64Data:  maskBase64,
	})
}

func (c *Client) post(ctx context.Context, path string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := "request failed"
		var errBody errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Error != "" {
			msg = errBody.Error
		}
		return "", &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	var out imageResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &ProtocolError{Message: "malformed success response"}
	}
	if out.ImageBase64 == "" {
		return "", &ProtocolError{Message: "response missing image data"}
	}
	return out.ImageBase64, nil
}
