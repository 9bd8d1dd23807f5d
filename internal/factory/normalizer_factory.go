package factory

import (
	"go.uber.org/zap"

	"github.com/supportdesk/email-classifier/internal/config"
	"github.com/supportdesk/email-classifier/internal/nlp"
)

// NormalizerFactory creates the text normalizer and its model cache
type NormalizerFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewNormalizerFactory creates a new normalizer factory
func NewNormalizerFactory(cfg *config.Config, logger *zap.Logger) *NormalizerFactory {
	return &NormalizerFactory{cfg: cfg, logger: logger}
}

// CreateModelCache creates the bounded lemmatization-model cache,
// prewarming it when configured to
func (f *NormalizerFactory) CreateModelCache() (*nlp.ModelCache, error) {
	nlpCfg := f.cfg.GetNLP()

	cache := nlp.NewModelCache(nlpCfg.ModelCacheSize, f.logger)
	if nlpCfg.Prewarm {
		if err := cache.Prewarm(); err != nil {
			return nil, err
		}
	}
	return cache, nil
}

// CreateNormalizer creates a normalizer over the given model cache
func (f *NormalizerFactory) CreateNormalizer(cache *nlp.ModelCache) *nlp.Normalizer {
	return nlp.NewNormalizer(cache, f.logger)
}
