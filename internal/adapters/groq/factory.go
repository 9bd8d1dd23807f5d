package groq

import (
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/supportdesk/email-classifier/internal/config"
	"github.com/supportdesk/email-classifier/internal/core"
	"github.com/supportdesk/email-classifier/internal/utils"
)

// Factory creates new instances of GroqClient
type Factory struct {
	cfg           *config.Config
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewFactory creates a new factory for GroqClient instances
func NewFactory(cfg *config.Config, logger *zap.Logger, textProcessor *utils.TextProcessor) *Factory {
	return &Factory{
		cfg:           cfg,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// CreateClient creates a new GroqClient
func (f *Factory) CreateClient() (core.LLMClient, error) {
	groqCfg := f.cfg.GetGroq()
	llmCfg := f.cfg.GetLLM()

	clientCfg := openai.DefaultConfig(groqCfg.APIKey)
	clientCfg.BaseURL = groqCfg.BaseURL
	client := openai.NewClientWithConfig(clientCfg)

	return NewGroqClient(
		client,
		groqCfg.ModelName,
		groqCfg.MaxTokens,
		groqCfg.Temperature,
		llmCfg.MaxBodySize,
		f.logger,
		f.textProcessor,
	), nil
}
