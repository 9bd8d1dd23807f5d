package prompt

import (
	"strings"
	"testing"

	"github.com/supportdesk/email-classifier/internal/templates"
)

func TestBuildIsDeterministic(t *testing.T) {
	builder := NewBuilder(templates.NewCatalog())

	for _, lang := range []string{"pt", "en", "fr"} {
		first := builder.Build(lang)
		second := builder.Build(lang)
		if first != second {
			t.Errorf("Build(%q) is not deterministic", lang)
		}
	}
}

func TestBuildContainsCategoryListAndRules(t *testing.T) {
	builder := NewBuilder(templates.NewCatalog())
	instruction := builder.Build("en")

	for _, want := range []string{
		"payment_issue | technical_support | information_request | greeting | complaint | spam",
		"INSTRUCTIONS:",
		"is_productive=true for: payment_issue, technical_support, information_request, complaint",
		"Return JSON: is_productive (bool), category (string), suggested_subject, suggested_body.",
	} {
		if !strings.Contains(instruction, want) {
			t.Errorf("instruction missing %q", want)
		}
	}
}

func TestBuildExamplesComeFromDetectedLanguageOnly(t *testing.T) {
	catalog := templates.NewCatalog()
	builder := NewBuilder(catalog)

	instruction := builder.Build("en")

	enEntry, _ := catalog.Get("en", "payment_issue")
	ptEntry, _ := catalog.Get("pt", "payment_issue")

	if !strings.Contains(instruction, enEntry.Subject) {
		t.Error("instruction must embed the English example subject")
	}
	if strings.Contains(instruction, ptEntry.Subject) {
		t.Error("instruction must not embed examples of another language")
	}
}

func TestBuildUsesReducedExampleSubset(t *testing.T) {
	instruction := NewBuilder(templates.NewCatalog()).Build("en")

	for _, want := range []string{"payment_issue: {", "technical_support: {", "greeting: {"} {
		if !strings.Contains(instruction, want) {
			t.Errorf("instruction missing few-shot example %q", want)
		}
	}
	for _, never := range []string{"complaint: {", "spam: {", "information_request: {"} {
		if strings.Contains(instruction, never) {
			t.Errorf("instruction must not embed example %q", never)
		}
	}
}

func TestBuildUnknownLanguageIsWellFormedWithoutExamples(t *testing.T) {
	instruction := NewBuilder(templates.NewCatalog()).Build("fr")

	if !strings.Contains(instruction, "CATEGORIES:") || !strings.Contains(instruction, "Return JSON") {
		t.Error("instruction for an unknown language must still be well-formed")
	}
	if strings.Contains(instruction, "payment_issue: {") {
		t.Error("instruction for an unknown language must carry no examples")
	}
}
