package utils

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// truncationNotice is appended to an email body that was cut down before
// being handed to a completion provider, so the model knows the text it
// sees is incomplete.
const truncationNotice = "\n[... email truncated before analysis ...]"

// TextProcessor prepares raw email text for a completion provider
type TextProcessor struct {
	logger *zap.Logger
}

// NewTextProcessor creates a new TextProcessor
func NewTextProcessor(logger *zap.Logger) *TextProcessor {
	return &TextProcessor{
		logger: logger,
	}
}

// PrepareEmailText sanitizes the email and truncates it to maxSize bytes.
// Sanitizing happens first so the byte budget is spent on text the
// provider can actually use.
func (tp *TextProcessor) PrepareEmailText(text string, maxSize int) string {
	return tp.TruncateText(tp.SanitizeUTF8(text), maxSize)
}

// TruncateText cuts text down to at most maxSize bytes without splitting
// a UTF-8 sequence. Truncated text carries a trailing notice; maxSize <= 0
// means no limit.
func (tp *TextProcessor) TruncateText(text string, maxSize int) string {
	if maxSize <= 0 || len(text) <= maxSize {
		return text
	}

	truncated := text[:maxSize]
	for !utf8.ValidString(truncated) && len(truncated) > 0 {
		truncated = truncated[:len(truncated)-1]
	}

	tp.logger.Debug("Email text truncated",
		zap.Int("original_size", len(text)),
		zap.Int("truncated_size", len(truncated)),
		zap.Int("max_size", maxSize))

	return truncated + truncationNotice
}

// SanitizeUTF8 drops invalid UTF-8 sequences from the email text
func (tp *TextProcessor) SanitizeUTF8(text string) string {
	if utf8.ValidString(text) {
		return text
	}

	sanitized := strings.ToValidUTF8(text, "")

	tp.logger.Debug("Email text sanitized",
		zap.Int("original_size", len(text)),
		zap.Int("sanitized_size", len(sanitized)))

	return sanitized
}
