package core

import (
	"github.com/supportdesk/email-classifier/internal/templates"
)

// FallbackSelector resolves a canned reply from the template catalog. It is
// total: any (language, category) input maps to some catalog entry.
type FallbackSelector struct {
	catalog *templates.Catalog
}

// NewFallbackSelector creates a new fallback selector
func NewFallbackSelector(catalog *templates.Catalog) *FallbackSelector {
	return &FallbackSelector{catalog: catalog}
}

// Select returns the template result for the given language and category.
// An unsupported language resolves to the catalog default language; a
// missing category resolves to technical_support. The productivity flag is
// derived from the resolved category, never stored.
func (s *FallbackSelector) Select(language string, category Category) ClassificationResult {
	resolvedLang := language
	if !s.catalog.HasLanguage(resolvedLang) {
		resolvedLang = templates.DefaultLanguage
	}

	resolved := category
	if !s.catalog.HasEntry(resolvedLang, string(resolved)) {
		resolved = Category(templates.DefaultCategory)
	}

	entry, _ := s.catalog.Get(resolvedLang, string(resolved))

	return ClassificationResult{
		IsProductive:     resolved.IsProductive(),
		Category:         resolved,
		SuggestedSubject: entry.Subject,
		SuggestedBody:    entry.Body,
		DetectedLanguage: language,
	}
}
