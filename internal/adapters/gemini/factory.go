package gemini

import (
	"go.uber.org/zap"

	"github.com/supportdesk/email-classifier/internal/config"
	"github.com/supportdesk/email-classifier/internal/core"
	"github.com/supportdesk/email-classifier/internal/utils"
)

// Factory creates new instances of GeminiClient
type Factory struct {
	cfg           *config.Config
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewFactory creates a new factory for GeminiClient instances
func NewFactory(cfg *config.Config, logger *zap.Logger, textProcessor *utils.TextProcessor) *Factory {
	return &Factory{
		cfg:           cfg,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// CreateClient creates a new GeminiClient
func (f *Factory) CreateClient() (core.LLMClient, error) {
	geminiCfg := f.cfg.GetGemini()
	llmCfg := f.cfg.GetLLM()

	return NewGeminiClient(
		geminiCfg.APIKey,
		geminiCfg.ModelName,
		geminiCfg.MaxTokens,
		geminiCfg.Temperature,
		llmCfg.MaxBodySize,
		f.logger,
		f.textProcessor,
	)
}
