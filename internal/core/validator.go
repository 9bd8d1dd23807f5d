package core

import "unicode/utf8"

const (
	minSubjectLength = 5
	minBodyLength    = 50
)

// ModelResponse is the JSON object the completion service is instructed to
// return. Pointer fields distinguish absent from zero-valued.
type ModelResponse struct {
	IsProductive     *bool   `json:"is_productive"`
	Category         *string `json:"category"`
	SuggestedSubject *string `json:"suggested_subject"`
	SuggestedBody    *string `json:"suggested_body"`
}

// ValidateResponse checks a parsed model response for completeness and
// minimum quality. A false return is a routing signal towards the fallback
// templates, never an error.
func ValidateResponse(resp *ModelResponse) bool {
	if resp == nil {
		return false
	}
	if resp.IsProductive == nil || resp.Category == nil || resp.SuggestedSubject == nil || resp.SuggestedBody == nil {
		return false
	}
	if utf8.RuneCountInString(*resp.SuggestedBody) < minBodyLength {
		return false
	}
	if utf8.RuneCountInString(*resp.SuggestedSubject) < minSubjectLength {
		return false
	}
	if _, ok := ParseCategory(*resp.Category); !ok {
		return false
	}
	return true
}
