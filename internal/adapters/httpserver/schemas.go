package httpserver

// emailItem is one email in an inbound batch
type emailItem struct {
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

// processEmailRequest carries 1 to 10 emails; anything outside that range
// is rejected before the pipeline sees it
type processEmailRequest struct {
	Emails []emailItem `json:"emails" binding:"required,min=1,max=10,dive"`
}

type emailPayload struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// emailResponse is the camelCase wire shape of one classification result
type emailResponse struct {
	IsProductive     bool         `json:"isProductive"`
	Category         string       `json:"category"`
	SuggestedSubject string       `json:"suggestedSubject"`
	SuggestedBody    string       `json:"suggestedBody"`
	DetectedLanguage string       `json:"detectedLanguage"`
	OriginalEmail    emailPayload `json:"originalEmail"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	TraceID string `json:"traceId,omitempty"`
}
