package di

import (
	"time"

	"go.uber.org/dig"

	"github.com/supportdesk/email-classifier/internal/config"
	"github.com/supportdesk/email-classifier/internal/core"
	"github.com/supportdesk/email-classifier/internal/factory"
	"github.com/supportdesk/email-classifier/internal/logging"
	"github.com/supportdesk/email-classifier/internal/nlp"
	"github.com/supportdesk/email-classifier/internal/ports"
	"github.com/supportdesk/email-classifier/internal/prompt"
	"github.com/supportdesk/email-classifier/internal/templates"
	"github.com/supportdesk/email-classifier/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewLLMFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewNormalizerFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewIngressFactory); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return nil, err
	}

	// Register NLP model cache and normalizer
	if err := container.Provide(func(f *factory.NormalizerFactory) (*nlp.ModelCache, error) {
		return f.CreateModelCache()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.NormalizerFactory, cache *nlp.ModelCache) core.TextNormalizer {
		return f.CreateNormalizer(cache)
	}); err != nil {
		return nil, err
	}

	// Register template catalog, prompt builder and fallback selector
	if err := container.Provide(templates.NewCatalog); err != nil {
		return nil, err
	}
	if err := container.Provide(func(catalog *templates.Catalog) core.PromptBuilder {
		return prompt.NewBuilder(catalog)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(core.NewFallbackSelector); err != nil {
		return nil, err
	}

	// Register LLM client
	if err := container.Provide(func(f *factory.LLMFactory) (core.LLMClient, error) {
		return f.CreateLLMClient()
	}); err != nil {
		return nil, err
	}

	// Register completion-call timeout
	if err := container.Provide(func(cfg *config.Config) time.Duration {
		return cfg.GetLLM().RequestTimeout
	}); err != nil {
		return nil, err
	}

	// Register classifier service
	if err := container.Provide(core.NewClassifierService); err != nil {
		return nil, err
	}

	// Register email ingress
	if err := container.Provide(func(f *factory.IngressFactory) (ports.EmailIngress, error) {
		return f.CreateEmailIngress()
	}); err != nil {
		return nil, err
	}

	return container, nil
}
