package core

import (
	"context"
)

// LLMClient defines the interface for the external completion service
type LLMClient interface {
	// Complete makes a single completion attempt and returns the raw
	// response text. No retries; parsing is the caller's responsibility.
	Complete(ctx context.Context, systemInstruction, originalText, cleanedText string) (string, error)
}

// TextNormalizer defines the interface for the NLP preprocessing step
type TextNormalizer interface {
	// Normalize cleans raw email text and returns the cleaned text along
	// with the detected language code.
	Normalize(raw string) (cleaned string, language string, err error)
}
