package core

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// PromptBuilder builds the system instruction for a detected language
type PromptBuilder interface {
	Build(language string) string
}

// ClassifierService is the core pipeline: normalize, prompt, complete,
// parse, validate, accept or fall back
type ClassifierService struct {
	llmClient      LLMClient
	normalizer     TextNormalizer
	prompts        PromptBuilder
	fallback       *FallbackSelector
	logger         *zap.Logger
	requestTimeout time.Duration
}

// NewClassifierService creates a new classifier service
func NewClassifierService(
	llmClient LLMClient,
	normalizer TextNormalizer,
	prompts PromptBuilder,
	fallback *FallbackSelector,
	logger *zap.Logger,
	requestTimeout time.Duration,
) *ClassifierService {
	return &ClassifierService{
		llmClient:      llmClient,
		normalizer:     normalizer,
		prompts:        prompts,
		fallback:       fallback,
		logger:         logger,
		requestTimeout: requestTimeout,
	}
}

// ClassifyAndRespond runs one email through the full pipeline and returns
// a guaranteed-valid outcome. The only error returns are an
// *NLPProcessingError from normalization or an *LLMServiceError from the
// completion call; every other problem degrades to a catalog template.
func (s *ClassifierService) ClassifyAndRespond(ctx context.Context, email Email) (*Outcome, error) {
	original := fmt.Sprintf("Subject: %s\n\nBody: %s", email.Subject, email.Body)

	cleaned, lang, err := s.normalizer.Normalize(original)
	if err != nil {
		return nil, err
	}

	instruction := s.prompts.Build(lang)

	callCtx := ctx
	if s.requestTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.requestTimeout)
		defer cancel()
	}

	rawText, err := s.llmClient.Complete(callCtx, instruction, original, cleaned)
	if err != nil {
		return nil, NewLLMServiceError("the completion service is currently unavailable", err)
	}

	var parsed ModelResponse
	if err := json.Unmarshal([]byte(rawText), &parsed); err != nil {
		s.logger.Warn("Model output is not a JSON object, using fallback template",
			zap.String("language", lang),
			zap.Error(err))
		return s.fallbackOutcome(email, lang, CategoryTechnicalSupport, "unparseable model output"), nil
	}

	if !ValidateResponse(&parsed) {
		category := s.proposedCategory(&parsed)
		s.logger.Warn("Model output failed validation, using fallback template",
			zap.String("language", lang),
			zap.String("category", string(category)))
		return s.fallbackOutcome(email, lang, category, "validation failed"), nil
	}

	category, _ := ParseCategory(*parsed.Category)
	result := ClassificationResult{
		IsProductive:     *parsed.IsProductive,
		Category:         category,
		SuggestedSubject: *parsed.SuggestedSubject,
		SuggestedBody:    *parsed.SuggestedBody,
		DetectedLanguage: lang,
		OriginalEmail:    email,
	}

	s.logger.Info("Classification complete",
		zap.Bool("is_productive", result.IsProductive),
		zap.String("category", string(result.Category)),
		zap.String("language", lang),
		zap.String("outcome", string(OutcomeAccepted)))

	return &Outcome{Result: result, Status: OutcomeAccepted}, nil
}

// ClassifyBatch processes emails strictly in input order, one at a time.
// A gateway failure aborts the batch: prior results are discarded and
// remaining items are not attempted.
func (s *ClassifierService) ClassifyBatch(ctx context.Context, emails []Email) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(emails))
	for _, email := range emails {
		outcome, err := s.ClassifyAndRespond(ctx, email)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, *outcome)
	}
	return outcomes, nil
}

// proposedCategory picks the fallback category for an invalid response:
// the model's own proposal when it is a known category, otherwise a
// default derived from the claimed productivity. The productivity claim
// is consulted whenever the category is unusable, present-but-unknown
// included, so a response the model itself marked unproductive falls
// back to the greeting template rather than technical_support.
func (s *ClassifierService) proposedCategory(parsed *ModelResponse) Category {
	if parsed.Category != nil {
		if category, ok := ParseCategory(*parsed.Category); ok {
			return category
		}
	}
	if parsed.IsProductive != nil && !*parsed.IsProductive {
		return CategoryGreeting
	}
	return CategoryTechnicalSupport
}

func (s *ClassifierService) fallbackOutcome(email Email, lang string, category Category, reason string) *Outcome {
	result := s.fallback.Select(lang, category)
	result.OriginalEmail = email

	s.logger.Info("Classification complete",
		zap.Bool("is_productive", result.IsProductive),
		zap.String("category", string(result.Category)),
		zap.String("language", lang),
		zap.String("outcome", string(OutcomeFallback)),
		zap.String("reason", reason))

	return &Outcome{Result: result, Status: OutcomeFallback, Reason: reason}
}
