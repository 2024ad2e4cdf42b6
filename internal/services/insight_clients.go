package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

// InsightClientInterface abstracts the generative-text collaborator.
// The API key is per call because every user brings their own.
type InsightClientInterface interface {
	// GenerateJSON forces a JSON-only response matching the place
	// details shape.
	GenerateJSON(ctx context.Context, apiKey, prompt string) (string, error)
	GenerateText(ctx context.Context, apiKey, prompt string) (string, error)
}

// NewInsightClient creates either an OpenAI or Gemini client based on config.
func NewInsightClient(provider, model string) (InsightClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		if model == "" {
			model = openai.GPT4oMini
		}
		return &OpenAIInsightClient{model: model}, nil
	case "gemini", "":
		if model == "" {
			model = "gemini-2.5-flash-preview-09-2025"
		}
		return &GeminiInsightClient{model: model}, nil
	default:
		return nil, fmt.Errorf("unsupported insight provider: %s. Use 'openai' or 'gemini'", provider)
	}
}

type GeminiInsightClient struct {
	model string
}

func (c *GeminiInsightClient) GenerateJSON(ctx context.Context, apiKey, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	defer client.Close()

	m := client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"address":   {Type: genai.TypeString},
			"addressKR": {Type: genai.TypeString},
			"category":  {Type: genai.TypeString},
			"budget":    {Type: genai.TypeString},
		},
		Required: []string{"address", "addressKR", "category", "budget"},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	content, err := firstGeminiText(resp)
	if err != nil {
		return "", err
	}
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("gemini: response is not valid json")
	}
	return content, nil
}

func (c *GeminiInsightClient) GenerateText(ctx context.Context, apiKey, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	defer client.Close()

	m := client.GenerativeModel(c.model)
	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	return firstGeminiText(resp)
}

func firstGeminiText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini: no text parts in response")
	}
	return b.String(), nil
}

type OpenAIInsightClient struct {
	model string
}

func (c *OpenAIInsightClient) GenerateJSON(ctx context.Context, apiKey, prompt string) (string, error) {
	client := openai.NewClient(apiKey)
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no content generated")
	}
	content := resp.Choices[0].Message.Content
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("openai: response is not valid json")
	}
	return content, nil
}

func (c *OpenAIInsightClient) GenerateText(ctx context.Context, apiKey, prompt string) (string, error) {
	client := openai.NewClient(apiKey)
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no content generated")
	}
	return resp.Choices[0].Message.Content, nil
}
