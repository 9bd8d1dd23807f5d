package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/supportdesk/email-classifier/internal/config"
	"github.com/supportdesk/email-classifier/internal/core"
)

type stubPipeline struct {
	err error
}

func (s *stubPipeline) ClassifyBatch(ctx context.Context, emails []core.Email) ([]core.Outcome, error) {
	if s.err != nil {
		return nil, s.err
	}
	outcomes := make([]core.Outcome, len(emails))
	for i, email := range emails {
		outcomes[i] = core.Outcome{
			Status: core.OutcomeAccepted,
			Result: core.ClassificationResult{
				IsProductive:     true,
				Category:         core.CategoryTechnicalSupport,
				SuggestedSubject: "Re: " + email.Subject,
				SuggestedBody:    strings.Repeat("We are looking into it. ", 4),
				DetectedLanguage: "en",
				OriginalEmail:    email,
			},
		}
	}
	return outcomes, nil
}

func newTestServer(pipeline Pipeline) *Server {
	return NewServer(pipeline, zap.NewNop(), config.ServerConfig{
		ListenAddress: "127.0.0.1:0",
		Mode:          gin.TestMode,
	})
}

func postProcessEmail(t *testing.T, server *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/process-email", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Engine().ServeHTTP(rec, req)
	return rec
}

func TestProcessEmailReturnsOrderedResults(t *testing.T) {
	server := newTestServer(&stubPipeline{})

	rec := postProcessEmail(t, server, `{"emails": [
		{"subject": "First", "body": "first body"},
		{"subject": "Second", "body": "second body"}
	]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}

	var results []emailResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &results); err != nil {
		t.Fatalf("response is not a JSON list: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].OriginalEmail.Subject != "First" || results[1].OriginalEmail.Subject != "Second" {
		t.Error("results must keep input order")
	}
	if results[0].SuggestedSubject != "Re: First" {
		t.Errorf("suggestedSubject = %q", results[0].SuggestedSubject)
	}
	if results[0].DetectedLanguage != "en" {
		t.Errorf("detectedLanguage = %q", results[0].DetectedLanguage)
	}
}

func TestProcessEmailRejectsBadBatches(t *testing.T) {
	server := newTestServer(&stubPipeline{})

	elevenEmails := make([]string, 11)
	for i := range elevenEmails {
		elevenEmails[i] = fmt.Sprintf(`{"subject": "s%d", "body": "b%d"}`, i, i)
	}

	tests := []struct {
		name string
		body string
	}{
		{"not json", "this is not json"},
		{"missing emails field", `{}`},
		{"empty batch", `{"emails": []}`},
		{"eleven emails", `{"emails": [` + strings.Join(elevenEmails, ",") + `]}`},
		{"item without body", `{"emails": [{"subject": "only subject"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postProcessEmail(t, server, tt.body)
			if rec.Code != http.StatusUnprocessableEntity {
				t.Errorf("status = %d, want 422", rec.Code)
			}

			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("error body is not JSON: %v", err)
			}
			if resp.Code != "ValidationError" {
				t.Errorf("code = %q, want ValidationError", resp.Code)
			}
		})
	}
}

func TestProcessEmailMapsErrorKindsToStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "normalization failure is unprocessable",
			err:        core.NewNLPProcessingError("lemmatization model unavailable", nil),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "NLPProcessingError",
		},
		{
			name:       "gateway failure is bad gateway",
			err:        core.NewLLMServiceError("completion service unavailable", nil),
			wantStatus: http.StatusBadGateway,
			wantCode:   "LLMServiceError",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(&stubPipeline{err: tt.err})

			rec := postProcessEmail(t, server, `{"emails": [{"subject": "s", "body": "b"}]}`)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("error body is not JSON: %v", err)
			}
			if resp.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", resp.Code, tt.wantCode)
			}
			if resp.TraceID == "" {
				t.Error("error responses must carry the trace id")
			}
		})
	}
}

func TestHealthz(t *testing.T) {
	server := newTestServer(&stubPipeline{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	server.Engine().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
