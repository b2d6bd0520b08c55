// ABOUTME: OpenAI vision client for melasma image classification
// ABOUTME: Uses gpt-4o-mini vision with retry logic (configurable model)
package classifier

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/omarZACK/Dermazeen/internal/util"
)

// DefaultVisionModel is the default model for image classification
const DefaultVisionModel = "gpt-4o-mini"

const classifierPrompt = `You are a dermatology image screening assistant. Given a facial skin photo, estimate how likely the skin shows melasma (symmetric brown/gray-brown facial patches).

Return ONLY a JSON object with these fields:
- label: "melasma" or "normal"
- confidence: 0.0 to 1.0 confidence in the label
- melasma_probability: 0.0 to 1.0
- normal_probability: 0.0 to 1.0

This is a screening aid, not a diagnosis. No additional text.`

// ClientConfig holds configuration for the vision client
type ClientConfig struct {
	APIKey     string
	Model      string
	MaxRetries int
	RetryDelay time.Duration
	// MaxBackoff caps the per-retry sleep regardless of attempt count.
	MaxBackoff time.Duration
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	model := os.Getenv("DERMAZEEN_OPENAI_MODEL")
	if model == "" {
		model = DefaultVisionModel
	}
	return &ClientConfig{
		APIKey:     apiKey,
		Model:      model,
		MaxRetries: 3,
		RetryDelay: time.Second * 2,
		MaxBackoff: 30 * time.Second,
	}
}

// Client wraps the OpenAI API client with retry logic
type Client struct {
	client     *openai.Client
	model      string
	maxRetries int
	retryDelay time.Duration
	maxBackoff time.Duration
}

// NewClient creates a vision client with default configuration
func NewClient(apiKey string) (*Client, error) {
	return NewClientWithConfig(DefaultConfig(apiKey))
}

// NewClientWithConfig creates a vision client with custom configuration
func NewClientWithConfig(config *ClientConfig) (*Client, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	maxBackoff := config.MaxBackoff
	if maxBackoff <= 0 {
		maxBackoff = 30 * time.Second
	}
	return &Client{
		client:     openai.NewClient(config.APIKey),
		model:      config.Model,
		maxRetries: config.MaxRetries,
		retryDelay: config.RetryDelay,
		maxBackoff: maxBackoff,
	}, nil
}

// ClassifyImage sends the image bytes through the vision model and parses the
// prediction. The returned Prediction never carries Err; hard failures come
// back as an error and the caller decides the fallback.
func (c *Client) ClassifyImage(ctx context.Context, imageData []byte, contentType string) (Prediction, error) {
	if contentType == "" {
		contentType = "image/jpeg"
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s", contentType,
		base64.StdEncoding.EncodeToString(imageData))

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(util.Backoff(c.retryDelay, attempt, c.maxBackoff))
		}

		reqCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		resp, err := c.client.CreateChatCompletion(reqCtx, openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: classifierPrompt,
				},
				{
					Role: openai.ChatMessageRoleUser,
					MultiContent: []openai.ChatMessagePart{
						{
							Type:     openai.ChatMessagePartTypeImageURL,
							ImageURL: &openai.ChatMessageImageURL{URL: dataURL},
						},
					},
				},
			},
			Temperature: 0.1,
		})
		cancel()

		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("attempt %d: no completion choices returned", attempt+1)
			continue
		}

		var p Prediction
		content := strings.TrimSpace(resp.Choices[0].Message.Content)
		content = strings.TrimPrefix(content, "```json")
		content = strings.Trim(content, "`\n ")
		if err := json.Unmarshal([]byte(content), &p); err != nil {
			lastErr = fmt.Errorf("attempt %d: failed to parse JSON: %w", attempt+1, err)
			continue
		}
		return p, nil
	}

	return Prediction{}, fmt.Errorf("failed to classify image after %d attempts: %w", c.maxRetries+1, lastErr)
}
