// Package nlp implements the text preprocessing pipeline: noise removal,
// deterministic language detection and per-language lemmatization.
package nlp

import (
	"fmt"
	"strings"

	"github.com/bbalet/stopwords"
	"github.com/blevesearch/snowballstem"
	"github.com/blevesearch/snowballstem/english"
	"github.com/blevesearch/snowballstem/portuguese"

	"github.com/supportdesk/email-classifier/internal/core"
)

type stemFunc func(env *snowballstem.Env) bool

// SupportedModels maps a language code to the named model serving it.
// Languages outside this map are not an error; they take the plain
// whitespace-normalization path instead.
var SupportedModels = map[string]string{
	"pt": "snowball/portuguese",
	"en": "snowball/english",
}

// modelRegistry maps a model name to the stemmer implementing it. A name
// declared in SupportedModels but missing here is a runtime environment
// problem and is reported as such.
var modelRegistry = map[string]stemFunc{
	"snowball/portuguese": portuguese.Stem,
	"snowball/english":    english.Stem,
}

// Model reduces text for one language: stop words and punctuation are
// discarded, the remaining tokens are lower-cased and stemmed. Construction
// is done by the cache; a Model is read-only afterwards and safe for
// concurrent use.
type Model struct {
	language string
	name     string
	stem     stemFunc
}

func newModel(language string) (*Model, error) {
	name, ok := SupportedModels[language]
	if !ok {
		return nil, nil
	}
	stem, ok := modelRegistry[name]
	if !ok {
		return nil, core.NewNLPProcessingError(
			fmt.Sprintf("model %s for language %s is not available in this runtime", name, language), nil)
	}
	return &Model{language: language, name: name, stem: stem}, nil
}

// Name returns the registered model name.
func (m *Model) Name() string {
	return m.name
}

// Lemmatize filters and stems text, joining the surviving lower-cased
// tokens with single spaces.
func (m *Model) Lemmatize(text string) string {
	filtered := stopwords.CleanString(text, m.language, false)

	tokens := strings.Fields(filtered)
	lemmas := make([]string, 0, len(tokens))
	for _, token := range tokens {
		env := snowballstem.NewEnv(token)
		m.stem(env)
		lemmas = append(lemmas, env.Current())
	}

	return strings.Join(lemmas, " ")
}
