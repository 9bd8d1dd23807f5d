package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/supportdesk/email-classifier/internal/templates"
)

// stubLLMClient returns canned responses or a canned error, counting calls.
type stubLLMClient struct {
	responses []string
	err       error
	calls     int
}

func (s *stubLLMClient) Complete(ctx context.Context, systemInstruction, originalText, cleanedText string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	if len(s.responses) == 0 {
		return "", errors.New("stub exhausted")
	}
	resp := s.responses[0]
	if len(s.responses) > 1 {
		s.responses = s.responses[1:]
	}
	return resp, nil
}

// stubNormalizer returns a fixed language without touching real NLP models.
type stubNormalizer struct {
	language string
	err      error
}

func (s *stubNormalizer) Normalize(raw string) (string, string, error) {
	if s.err != nil {
		return "", "", s.err
	}
	return strings.ToLower(raw), s.language, nil
}

func newTestService(llm LLMClient, normalizer TextNormalizer) *ClassifierService {
	catalog := templates.NewCatalog()
	return NewClassifierService(
		llm,
		normalizer,
		stubPrompts{},
		NewFallbackSelector(catalog),
		zap.NewNop(),
		time.Second,
	)
}

type stubPrompts struct{}

func (stubPrompts) Build(language string) string { return "instruction for " + language }

func greetingJSON() string {
	return fmt.Sprintf(`{"is_productive": false, "category": "greeting", "suggested_subject": "Re: Your Message", "suggested_body": %q}`,
		strings.Repeat("Thanks for the kind words! ", 5))
}

func TestClassifyAndRespondAcceptsValidModelOutput(t *testing.T) {
	llm := &stubLLMClient{responses: []string{greetingJSON()}}
	service := newTestService(llm, &stubNormalizer{language: "en"})

	email := Email{Subject: "Happy Holidays", Body: "Merry Christmas!"}
	outcome, err := service.ClassifyAndRespond(context.Background(), email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if outcome.Status != OutcomeAccepted {
		t.Errorf("status = %q, want %q", outcome.Status, OutcomeAccepted)
	}
	result := outcome.Result
	if result.IsProductive {
		t.Error("greeting must not be productive")
	}
	if result.Category != CategoryGreeting {
		t.Errorf("category = %q, want greeting", result.Category)
	}
	if result.DetectedLanguage != "en" {
		t.Errorf("detected_language = %q, want en", result.DetectedLanguage)
	}
	if result.OriginalEmail != email {
		t.Error("original email must be carried through unchanged")
	}
}

func TestClassifyAndRespondFallsBackOnNonJSONOutput(t *testing.T) {
	llm := &stubLLMClient{responses: []string{"I'm sorry, I cannot answer that."}}
	service := newTestService(llm, &stubNormalizer{language: "en"})

	outcome, err := service.ClassifyAndRespond(context.Background(), Email{Subject: "Broken app", Body: "It crashes."})
	if err != nil {
		t.Fatalf("parse failure must not surface as an error, got %v", err)
	}

	if outcome.Status != OutcomeFallback {
		t.Fatalf("status = %q, want %q", outcome.Status, OutcomeFallback)
	}
	if outcome.Result.Category != CategoryTechnicalSupport {
		t.Errorf("category = %q, want technical_support default", outcome.Result.Category)
	}

	entry, _ := templates.NewCatalog().Get("en", "technical_support")
	if outcome.Result.SuggestedBody != entry.Body {
		t.Error("fallback must serve the catalog template for the detected language")
	}
}

func TestClassifyAndRespondFallsBackOnShortBodyKeepingProposedCategory(t *testing.T) {
	llm := &stubLLMClient{responses: []string{
		`{"is_productive": true, "category": "payment_issue", "suggested_subject": "Re: Payment", "suggested_body": "Too short."}`,
	}}
	service := newTestService(llm, &stubNormalizer{language: "en"})

	outcome, err := service.ClassifyAndRespond(context.Background(), Email{Subject: "Invoice", Body: "I cannot pay."})
	if err != nil {
		t.Fatalf("validation failure must not surface as an error, got %v", err)
	}

	if outcome.Status != OutcomeFallback {
		t.Fatalf("status = %q, want %q", outcome.Status, OutcomeFallback)
	}
	if outcome.Result.Category != CategoryPaymentIssue {
		t.Errorf("category = %q, want the model-proposed payment_issue", outcome.Result.Category)
	}
	if !outcome.Result.IsProductive {
		t.Error("payment_issue fallback must be productive")
	}
}

func TestClassifyAndRespondDefaultsCategoryFromClaimedProductivity(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     Category
	}{
		{
			name:     "unproductive without category defaults to greeting",
			response: `{"is_productive": false, "suggested_subject": "Hi", "suggested_body": "Hi."}`,
			want:     CategoryGreeting,
		},
		{
			name:     "productive without category defaults to technical_support",
			response: `{"is_productive": true, "suggested_subject": "Hi", "suggested_body": "Hi."}`,
			want:     CategoryTechnicalSupport,
		},
		{
			name:     "unknown category defaults by productivity",
			response: `{"is_productive": true, "category": "marketing", "suggested_subject": "Hi", "suggested_body": "Hi."}`,
			want:     CategoryTechnicalSupport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &stubLLMClient{responses: []string{tt.response}}
			service := newTestService(llm, &stubNormalizer{language: "en"})

			outcome, err := service.ClassifyAndRespond(context.Background(), Email{Subject: "Hello", Body: "Hello."})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if outcome.Result.Category != tt.want {
				t.Errorf("category = %q, want %q", outcome.Result.Category, tt.want)
			}
		})
	}
}

func TestClassifyAndRespondSurfacesGatewayFailure(t *testing.T) {
	llm := &stubLLMClient{err: errors.New("connection refused")}
	service := newTestService(llm, &stubNormalizer{language: "en"})

	_, err := service.ClassifyAndRespond(context.Background(), Email{Subject: "Hello", Body: "Hello."})

	var llmErr *LLMServiceError
	if !errors.As(err, &llmErr) {
		t.Fatalf("want *LLMServiceError, got %v", err)
	}
}

func TestClassifyAndRespondSurfacesNormalizationFailure(t *testing.T) {
	llm := &stubLLMClient{responses: []string{greetingJSON()}}
	service := newTestService(llm, &stubNormalizer{err: NewNLPProcessingError("model missing", nil)})

	_, err := service.ClassifyAndRespond(context.Background(), Email{Subject: "Hello", Body: "Hello."})

	var nlpErr *NLPProcessingError
	if !errors.As(err, &nlpErr) {
		t.Fatalf("want *NLPProcessingError, got %v", err)
	}
	if llm.calls != 0 {
		t.Error("gateway must not be called when normalization fails")
	}
}

func TestClassifyBatchPreservesOrder(t *testing.T) {
	llm := &stubLLMClient{responses: []string{
		greetingJSON(),
		`{"is_productive": true, "category": "complaint", "suggested_subject": "Re: Your Feedback", "suggested_body": "` + strings.Repeat("We are sorry. ", 5) + `"}`,
	}}
	service := newTestService(llm, &stubNormalizer{language: "en"})

	outcomes, err := service.ClassifyBatch(context.Background(), []Email{
		{Subject: "Happy Holidays", Body: "Merry Christmas!"},
		{Subject: "Bad service", Body: "I am disappointed."},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("got %d outcomes, want 2", len(outcomes))
	}
	if outcomes[0].Result.Category != CategoryGreeting || outcomes[1].Result.Category != CategoryComplaint {
		t.Errorf("outcomes out of order: %q, %q", outcomes[0].Result.Category, outcomes[1].Result.Category)
	}
}

func TestClassifyBatchAbortsOnGatewayFailure(t *testing.T) {
	llm := &stubLLMClient{err: errors.New("rate limited")}
	service := newTestService(llm, &stubNormalizer{language: "en"})

	outcomes, err := service.ClassifyBatch(context.Background(), []Email{
		{Subject: "a", Body: "a"},
		{Subject: "b", Body: "b"},
		{Subject: "c", Body: "c"},
	})

	var llmErr *LLMServiceError
	if !errors.As(err, &llmErr) {
		t.Fatalf("want *LLMServiceError, got %v", err)
	}
	if outcomes != nil {
		t.Error("aborted batch must not return partial results")
	}
	if llm.calls != 1 {
		t.Errorf("remaining items must not be attempted, gateway called %d times", llm.calls)
	}
}
