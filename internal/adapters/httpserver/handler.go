package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/supportdesk/email-classifier/internal/core"
)

// Pipeline is the slice of the classifier the transport needs
type Pipeline interface {
	ClassifyBatch(ctx context.Context, emails []core.Email) ([]core.Outcome, error)
}

func (s *Server) handleProcessEmail(c *gin.Context) {
	traceID := c.GetString(traceIDKey)

	var req processEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Warn("Rejected malformed request",
			zap.String("trace_id", traceID),
			zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, errorResponse{
			Error:   "request must carry between 1 and 10 emails, each with subject and body",
			Code:    "ValidationError",
			TraceID: traceID,
		})
		return
	}

	emails := make([]core.Email, len(req.Emails))
	for i, item := range req.Emails {
		emails[i] = core.Email{Subject: item.Subject, Body: item.Body}
	}

	outcomes, err := s.pipeline.ClassifyBatch(c.Request.Context(), emails)
	if err != nil {
		status, code := statusForError(err)
		s.logger.Warn("Pipeline failed",
			zap.String("trace_id", traceID),
			zap.String("code", code),
			zap.Error(err))
		c.JSON(status, errorResponse{Error: err.Error(), Code: code, TraceID: traceID})
		return
	}

	results := make([]emailResponse, len(outcomes))
	for i, outcome := range outcomes {
		results[i] = toEmailResponse(outcome.Result)
	}

	c.JSON(http.StatusOK, results)
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func toEmailResponse(result core.ClassificationResult) emailResponse {
	return emailResponse{
		IsProductive:     result.IsProductive,
		Category:         string(result.Category),
		SuggestedSubject: result.SuggestedSubject,
		SuggestedBody:    result.SuggestedBody,
		DetectedLanguage: result.DetectedLanguage,
		OriginalEmail: emailPayload{
			Subject: result.OriginalEmail.Subject,
			Body:    result.OriginalEmail.Body,
		},
	}
}

func statusForError(err error) (int, string) {
	var nlpErr *core.NLPProcessingError
	if errors.As(err, &nlpErr) {
		return http.StatusUnprocessableEntity, "NLPProcessingError"
	}
	var llmErr *core.LLMServiceError
	if errors.As(err, &llmErr) {
		return http.StatusBadGateway, "LLMServiceError"
	}
	return http.StatusInternalServerError, "InternalError"
}
