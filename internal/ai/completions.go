package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/apps/stylist"
)

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type chatContentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *chatImageURL `json:"image_url,omitempty"`
}

type chatImageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content interface{} `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

var errVisionUnsupported = errors.New("provider does not accept images")

// CompletionsClient talks to any OpenAI-compatible chat completions API.
type CompletionsClient struct {
	name   string
	apiURL string
	apiKey string
	model  string
	vision bool
	http   *http.Client
}

func NewCompletionsClient(name, apiURL, apiKey, model string, vision bool, timeout time.Duration) *CompletionsClient {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &CompletionsClient{
		name:   name,
		apiURL: apiURL,
		apiKey: apiKey,
		model:  model,
		vision: vision,
		http:   &http.Client{Timeout: timeout},
	}
}

func (c *CompletionsClient) Name() string { return c.name }

func (c *CompletionsClient) Analyze(ctx context.Context, image []byte, mimeType string) (*stylist.FeatureVector, error) {
	if !c.vision {
		return nil, errVisionUnsupported
	}

	imgURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))
	messages := []chatMessage{
		{Role: "system", Content: analyzeSystemPrompt},
		{Role: "user", Content: []chatContentPart{
			{Type: "text", Text: analyzeUserPrompt},
			{Type: "image_url", ImageURL: &chatImageURL{URL: imgURL, Detail: "auto"}},
		}},
	}

	content, err := c.complete(ctx, messages, 0.2)
	if err != nil {
		return nil, err
	}
	return parseFeatures(content)
}

func (c *CompletionsClient) Respond(ctx context.Context, message string, sc *stylist.StyleContext) (string, error) {
	messages := []chatMessage{
		{Role: "system", Content: stylistSystemPrompt},
		{Role: "user", Content: chatPrompt(message, sc)},
	}
	return c.complete(ctx, messages, 0.7)
}

func (c *CompletionsClient) complete(ctx context.Context, messages []chatMessage, temperature float64) (string, error) {
	payload, err := json.Marshal(chatRequest{Model: c.model, Messages: messages, Temperature: temperature})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%s API error: status %d", c.name, resp.StatusCode)
	}

	var completion chatResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no response from %s", c.name)
	}

	switch v := completion.Choices[0].Message.Content.(type) {
	case string:
		return strings.TrimSpace(v), nil
	case nil:
		return "", nil
	default:
		contentBytes, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to extract content from %s response", c.name)
		}
		return string(contentBytes), nil
	}
}
