// Package groq implements the completion gateway against Groq's
// OpenAI-compatible chat API.
package groq

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/supportdesk/email-classifier/internal/utils"
)

// GroqClient is an implementation of the LLMClient interface using Groq
type GroqClient struct {
	client        *openai.Client
	modelName     string
	maxTokens     int
	temperature   float32
	maxBodySize   int
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewGroqClient creates a new Groq client
func NewGroqClient(
	client *openai.Client,
	modelName string,
	maxTokens int,
	temperature float32,
	maxBodySize int,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) *GroqClient {
	return &GroqClient{
		client:        client,
		modelName:     modelName,
		maxTokens:     maxTokens,
		temperature:   temperature,
		maxBodySize:   maxBodySize,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// Complete makes a single chat completion call and returns the raw response
// text. The request pins the model, caps output tokens and instructs the
// provider to return a JSON object only. No retries are made here.
func (c *GroqClient) Complete(ctx context.Context, systemInstruction, originalText, cleanedText string) (string, error) {
	original := c.textProcessor.PrepareEmailText(originalText, c.maxBodySize)

	userMessage := fmt.Sprintf("Original email:\n%s\n\nCleaned text for analysis:\n%s", original, cleanedText)

	req := openai.ChatCompletionRequest{
		Model: c.modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemInstruction,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userMessage,
			},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion with Groq: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from Groq")
	}

	c.logger.Debug("Completion finished",
		zap.String("model", c.modelName),
		zap.Int("total_tokens", resp.Usage.TotalTokens))

	return resp.Choices[0].Message.Content, nil
}
