// Package prompt assembles the system instruction sent to the completion
// service. The instruction is a pure function of the detected language and
// the template catalog, so identical inputs always produce an identical
// prompt.
package prompt

import (
	"fmt"
	"strings"

	"github.com/supportdesk/email-classifier/internal/templates"
)

// exampleCategories is the fixed few-shot subset. Three representative
// categories keep the prompt small instead of embedding the full catalog.
var exampleCategories = []string{"payment_issue", "technical_support", "greeting"}

// unproductiveCategories mirrors the productivity rule stated in the
// instruction text.
var unproductiveCategories = map[string]bool{"greeting": true, "spam": true}

// Builder builds system instructions from the template catalog.
type Builder struct {
	catalog *templates.Catalog
}

// NewBuilder creates a new prompt builder.
func NewBuilder(catalog *templates.Catalog) *Builder {
	return &Builder{catalog: catalog}
}

// Build returns the full system instruction for the given language. Few-shot
// examples are drawn only from the catalog entries of that language; a
// language without catalog entries yields an instruction with an empty
// example section.
func (b *Builder) Build(language string) string {
	var sb strings.Builder

	sb.WriteString("You are a Customer Support AI. Analyze emails and draft professional responses.\n\n")

	sb.WriteString("CATEGORIES:\n")
	sb.WriteString("payment_issue | technical_support | information_request | greeting | complaint | spam\n\n")

	sb.WriteString("INSTRUCTIONS:\n")
	sb.WriteString("1. Identify category from list above\n")
	sb.WriteString("2. Use CLEANED text for analysis, ORIGINAL for personalization (names, numbers)\n")
	sb.WriteString("3. Response as appropriate team (Financial/Technical/Customer Service)\n")
	sb.WriteString("4. Tone: Professional and empathetic (adjust by category)\n")
	sb.WriteString("5. Structure: 3 paragraphs, 100-250 words\n")
	sb.WriteString("6. is_productive=true for: payment_issue, technical_support, information_request, complaint\n\n")

	sb.WriteString(b.examples(language))

	sb.WriteString("\nReturn JSON: is_productive (bool), category (string), suggested_subject, suggested_body.")

	return sb.String()
}

func (b *Builder) examples(language string) string {
	var sb strings.Builder
	sb.WriteString("\nEXAMPLES:\n")

	for _, category := range exampleCategories {
		entry, ok := b.catalog.Get(language, category)
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "%s: {\"is_productive\": %t, \"category\": %q, \"suggested_subject\": %q}\n",
			category, !unproductiveCategories[category], category, entry.Subject)
	}

	return sb.String()
}
