package core

import (
	"testing"

	"github.com/supportdesk/email-classifier/internal/templates"
)

func TestFallbackSelectorResolution(t *testing.T) {
	selector := NewFallbackSelector(templates.NewCatalog())

	tests := []struct {
		name             string
		language         string
		category         Category
		wantCategory     Category
		wantProductive   bool
		wantLanguageKept string
	}{
		{
			name:             "known pair is returned as-is",
			language:         "en",
			category:         CategoryPaymentIssue,
			wantCategory:     CategoryPaymentIssue,
			wantProductive:   true,
			wantLanguageKept: "en",
		},
		{
			name:             "unknown language resolves to pt templates",
			language:         "fr",
			category:         CategoryComplaint,
			wantCategory:     CategoryComplaint,
			wantProductive:   true,
			wantLanguageKept: "fr",
		},
		{
			name:             "missing category resolves to technical_support",
			language:         "pt",
			category:         Category("nonsense"),
			wantCategory:     CategoryTechnicalSupport,
			wantProductive:   true,
			wantLanguageKept: "pt",
		},
		{
			name:             "empty category resolves to technical_support",
			language:         "en",
			category:         "",
			wantCategory:     CategoryTechnicalSupport,
			wantProductive:   true,
			wantLanguageKept: "en",
		},
		{
			name:             "greeting derives unproductive",
			language:         "en",
			category:         CategoryGreeting,
			wantCategory:     CategoryGreeting,
			wantProductive:   false,
			wantLanguageKept: "en",
		},
		{
			name:             "spam derives unproductive",
			language:         "pt",
			category:         CategorySpam,
			wantCategory:     CategorySpam,
			wantProductive:   false,
			wantLanguageKept: "pt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := selector.Select(tt.language, tt.category)

			if result.Category != tt.wantCategory {
				t.Errorf("category = %q, want %q", result.Category, tt.wantCategory)
			}
			if result.IsProductive != tt.wantProductive {
				t.Errorf("is_productive = %t, want %t", result.IsProductive, tt.wantProductive)
			}
			if result.DetectedLanguage != tt.wantLanguageKept {
				t.Errorf("detected_language = %q, want %q", result.DetectedLanguage, tt.wantLanguageKept)
			}
			if len(result.SuggestedSubject) < 5 || len(result.SuggestedBody) < 50 {
				t.Errorf("template does not meet minimum lengths: subject %d, body %d",
					len(result.SuggestedSubject), len(result.SuggestedBody))
			}
		})
	}
}

func TestFallbackSelectorIsPure(t *testing.T) {
	selector := NewFallbackSelector(templates.NewCatalog())

	first := selector.Select("en", CategoryGreeting)
	second := selector.Select("en", CategoryGreeting)

	if first != second {
		t.Error("identical inputs must yield identical outputs")
	}
}

func TestFallbackSelectorUnknownLanguageUsesPortugueseTemplate(t *testing.T) {
	catalog := templates.NewCatalog()
	selector := NewFallbackSelector(catalog)

	result := selector.Select("de", CategoryGreeting)
	entry, _ := catalog.Get("pt", "greeting")

	if result.SuggestedSubject != entry.Subject || result.SuggestedBody != entry.Body {
		t.Error("unknown language must be served the pt template")
	}
}
