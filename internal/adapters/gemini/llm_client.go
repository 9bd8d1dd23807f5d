// Package gemini implements the completion gateway on Google Gemini.
package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/supportdesk/email-classifier/internal/utils"
)

// GeminiClient is an implementation of the LLMClient interface using Google Gemini
type GeminiClient struct {
	client        *genai.Client
	modelName     string
	maxTokens     int
	temperature   float32
	maxBodySize   int
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(
	apiKey string,
	modelName string,
	maxTokens int,
	temperature float32,
	maxBodySize int,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) (*GeminiClient, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client:        client,
		modelName:     modelName,
		maxTokens:     maxTokens,
		temperature:   temperature,
		maxBodySize:   maxBodySize,
		logger:        logger,
		textProcessor: textProcessor,
	}, nil
}

// Close closes the Gemini client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Complete makes a single generation call and returns the raw response text
func (c *GeminiClient) Complete(ctx context.Context, systemInstruction, originalText, cleanedText string) (string, error) {
	original := c.textProcessor.PrepareEmailText(originalText, c.maxBodySize)

	model := c.client.GenerativeModel(c.modelName)
	model.SetTemperature(c.temperature)
	model.SetMaxOutputTokens(int32(c.maxTokens))
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	userMessage := fmt.Sprintf("Original email:\n%s\n\nCleaned text for analysis:\n%s", original, cleanedText)

	resp, err := model.GenerateContent(ctx, genai.Text(userMessage))
	if err != nil {
		return "", fmt.Errorf("failed to generate content with Gemini: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}

	var responseText string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			responseText += string(text)
		}
	}
	if responseText == "" {
		return "", fmt.Errorf("no text content in Gemini response")
	}

	if resp.UsageMetadata != nil {
		c.logger.Debug("Completion finished",
			zap.String("model", c.modelName),
			zap.Int32("total_tokens", resp.UsageMetadata.TotalTokenCount))
	}

	return responseText, nil
}
