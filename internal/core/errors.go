package core

import "fmt"

// NLPProcessingError reports a failure in text cleaning, language detection
// or lemmatization, including a supported language whose model cannot be
// loaded. Surfaced to the caller as unprocessable input.
type NLPProcessingError struct {
	Message string
	Err     error
}

func (e *NLPProcessingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("nlp processing failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("nlp processing failed: %s", e.Message)
}

func (e *NLPProcessingError) Unwrap() error {
	return e.Err
}

// NewNLPProcessingError wraps err with a human-readable message.
func NewNLPProcessingError(message string, err error) *NLPProcessingError {
	return &NLPProcessingError{Message: message, Err: err}
}

// LLMServiceError reports a failure of the external completion call:
// network, authentication, rate limiting or a non-success response.
// Surfaced to the caller as upstream unavailable.
type LLMServiceError struct {
	Message string
	Err     error
}

func (e *LLMServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llm service failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("llm service failed: %s", e.Message)
}

func (e *LLMServiceError) Unwrap() error {
	return e.Err
}

// NewLLMServiceError wraps err with a human-readable message.
func NewLLMServiceError(message string, err error) *LLMServiceError {
	return &LLMServiceError{Message: message, Err: err}
}
