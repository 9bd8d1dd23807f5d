package nlp

import (
	"regexp"
	"strings"

	"github.com/pemistahl/lingua-go"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// defaultLanguage is assumed whenever detection cannot produce an answer.
const defaultLanguage = "pt"

// noisePattern strips HTML-like tags, URL-like tokens and email-address-like
// tokens before any further processing.
var noisePattern = regexp.MustCompile(`<.*?>|http\S+|\S+@\S+`)

// Normalizer cleans raw email text, detects its language and lemmatizes it
// when a model is registered for that language.
type Normalizer struct {
	detector lingua.LanguageDetector
	models   *ModelCache
	logger   *zap.Logger
}

// detectableLanguages is deliberately wider than the set of registered
// lemmatization models. Detection must be able to report a language we
// have no model for, so that text in such a language takes the plain
// lower-casing path and the detected language is reported truthfully.
var detectableLanguages = []lingua.Language{
	lingua.Portuguese,
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
}

// NewNormalizer creates a normalizer backed by the given model cache. The
// language detector works offline and is deterministic: the same input
// yields the same language across runs and processes.
func NewNormalizer(models *ModelCache, logger *zap.Logger) *Normalizer {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(detectableLanguages...).
		Build()

	return &Normalizer{
		detector: detector,
		models:   models,
		logger:   logger,
	}
}

// Normalize strips noise, detects the language and lemmatizes. A language
// without a registered model falls back to a whitespace-normalized,
// lower-cased copy of the stripped text. The only error kind returned is
// *core.NLPProcessingError.
func (n *Normalizer) Normalize(raw string) (string, string, error) {
	stripped := noisePattern.ReplaceAllString(raw, "")

	lang := n.detectLanguage(stripped)

	model, err := n.models.Get(lang)
	if err != nil {
		return "", "", err
	}
	if model != nil {
		return model.Lemmatize(stripped), lang, nil
	}

	lowered := cases.Lower(language.Make(lang)).String(stripped)
	return strings.Join(strings.Fields(lowered), " "), lang, nil
}

func (n *Normalizer) detectLanguage(text string) string {
	detected, ok := n.detector.DetectLanguageOf(text)
	if !ok {
		n.logger.Debug("Language detection failed, assuming default",
			zap.String("language", defaultLanguage))
		return defaultLanguage
	}
	return strings.ToLower(detected.IsoCode639_1().String())
}
