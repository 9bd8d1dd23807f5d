package core

// Email represents one inbound customer-support email
type Email struct {
	Subject string
	Body    string
}

// Category is the closed set of labels an email can be classified into
type Category string

const (
	CategoryPaymentIssue       Category = "payment_issue"
	CategoryTechnicalSupport   Category = "technical_support"
	CategoryInformationRequest Category = "information_request"
	CategoryGreeting           Category = "greeting"
	CategoryComplaint          Category = "complaint"
	CategorySpam               Category = "spam"
)

// Categories lists every valid category in a fixed order
var Categories = []Category{
	CategoryPaymentIssue,
	CategoryTechnicalSupport,
	CategoryInformationRequest,
	CategoryGreeting,
	CategoryComplaint,
	CategorySpam,
}

// ParseCategory validates a raw category string against the closed set.
// Unknown values are rejected here so arbitrary strings never travel
// further into the pipeline.
func ParseCategory(raw string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == raw {
			return c, true
		}
	}
	return "", false
}

// IsProductive reports whether emails of this category require action.
// Only greetings and spam need none.
func (c Category) IsProductive() bool {
	return c != CategoryGreeting && c != CategorySpam
}

// ClassificationResult is the annotated outcome for one email
type ClassificationResult struct {
	IsProductive     bool
	Category         Category
	SuggestedSubject string
	SuggestedBody    string
	DetectedLanguage string
	OriginalEmail    Email
}

// OutcomeStatus says which branch of the pipeline produced a result
type OutcomeStatus string

const (
	// OutcomeAccepted means the model's own output passed validation
	OutcomeAccepted OutcomeStatus = "accepted"
	// OutcomeFallback means a catalog template was substituted
	OutcomeFallback OutcomeStatus = "fallback"
)

// Outcome pairs a guaranteed-valid result with how it was obtained, so
// callers can tell graceful recovery apart from model acceptance without
// inspecting errors
type Outcome struct {
	Result ClassificationResult
	Status OutcomeStatus
	// Reason is set on fallback outcomes only
	Reason string
}
