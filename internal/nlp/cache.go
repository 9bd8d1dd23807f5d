package nlp

import (
	"sync"

	"go.uber.org/zap"
)

// ModelCache holds constructed lemmatization models, at most one per
// language. Construction is serialized under the mutex so concurrent
// first-use of the same language builds the model exactly once. When the
// cache is full the least-recently-constructed model is evicted.
type ModelCache struct {
	models   map[string]*Model
	order    []string
	capacity int
	mu       sync.Mutex
	logger   *zap.Logger
}

// NewModelCache creates a model cache with the given capacity. A capacity
// below 1 is raised to 1.
func NewModelCache(capacity int, logger *zap.Logger) *ModelCache {
	if capacity < 1 {
		capacity = 1
	}
	return &ModelCache{
		models:   make(map[string]*Model),
		capacity: capacity,
		logger:   logger,
	}
}

// Get returns the model for a language, constructing and caching it on
// first use. An unsupported language returns (nil, nil); a supported
// language whose model cannot be loaded returns an error.
func (c *ModelCache) Get(language string) (*Model, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if model, ok := c.models[language]; ok {
		return model, nil
	}

	model, err := newModel(language)
	if err != nil {
		return nil, err
	}
	if model == nil {
		return nil, nil
	}

	c.insert(language, model)
	return model, nil
}

// Prewarm constructs every supported model up front, eliminating the
// first-use construction race entirely.
func (c *ModelCache) Prewarm() error {
	for language := range SupportedModels {
		if _, err := c.Get(language); err != nil {
			return err
		}
	}
	c.logger.Info("Prewarmed lemmatization models", zap.Int("count", len(SupportedModels)))
	return nil
}

func (c *ModelCache) insert(language string, model *Model) {
	if len(c.models) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.models, oldest)
		c.logger.Debug("Evicted lemmatization model", zap.String("language", oldest))
	}

	c.models[language] = model
	c.order = append(c.order, language)
	c.logger.Debug("Constructed lemmatization model",
		zap.String("language", language),
		zap.String("model", model.Name()))
}
