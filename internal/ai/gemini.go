package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/apps/stylist"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements both stylist.Analyzer and stylist.ChatResponder.
type GeminiClient struct {
	client      *genai.Client
	visionModel string
	chatModel   string
	timeout     time.Duration
}

func NewGeminiClient(ctx context.Context, apiKey, visionModel, chatModel string, timeout time.Duration) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &GeminiClient{
		client:      client,
		visionModel: visionModel,
		chatModel:   chatModel,
		timeout:     timeout,
	}, nil
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}

var featureSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"skinTone":   {Type: genai.TypeString, Enum: []string{"light", "medium", "tan", "deep"}},
		"undertone":  {Type: genai.TypeString, Enum: []string{"cool", "warm", "neutral"}},
		"faceShape":  {Type: genai.TypeString, Enum: []string{"oval", "round", "square", "heart", "long", "diamond"}},
		"hairColor":  {Type: genai.TypeString},
		"eyeColor":   {Type: genai.TypeString},
		"confidence": {Type: genai.TypeNumber},
	},
	Required: []string{"skinTone", "undertone", "faceShape", "hairColor", "eyeColor", "confidence"},
}

func (g *GeminiClient) Analyze(ctx context.Context, image []byte, mimeType string) (*stylist.FeatureVector, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	model := g.client.GenerativeModel(g.visionModel)
	model.SystemInstruction = genai.NewUserContent(genai.Text(analyzeSystemPrompt))
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = featureSchema

	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: image},
		genai.Text(analyzeUserPrompt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}
	return parseFeatures(text)
}

func (g *GeminiClient) Respond(ctx context.Context, message string, sc *stylist.StyleContext) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	model := g.client.GenerativeModel(g.chatModel)
	cs := model.StartChat()
	cs.History = []*genai.Content{
		{Role: "user", Parts: []genai.Part{genai.Text(stylistSystemPrompt)}},
		{Role: "model", Parts: []genai.Part{genai.Text(stylistAck)}},
	}

	resp, err := cs.SendMessage(ctx, genai.Text(chatPrompt(message, sc)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}
	return text, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("no content generated")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String(), nil
}
