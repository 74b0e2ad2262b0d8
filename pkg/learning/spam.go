package learning

import (
	"fmt"
	"regexp"

	"github.com/kljensen/snowball"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var nonWordRun = regexp.MustCompile(`\W+`)

// SpamChecker is a Model over lower-cased words. Its default labels are
// "spam" and "ham".
type SpamChecker struct {
	*Model[string]

	stemLanguage string
}

// Option configures a SpamChecker.
type Option func(*SpamChecker) error

// WithLabels sets the class names.
func WithLabels(labels Labels) Option {
	return func(sc *SpamChecker) error {
		if !labels.valid() {
			return fmt.Errorf("%w: labels must be non-empty", ErrInvalidArgument)
		}
		sc.Model.labels = labels
		return nil
	}
}

// WithStemmer reduces every non-empty token to its snowball stem in the
// given language, e.g. "english".
func WithStemmer(lang string) Option {
	return func(sc *SpamChecker) error {
		if _, err := snowball.Stem("checking", lang, true); err != nil {
			return fmt.Errorf("%w: stemmer: %v", ErrInvalidArgument, err)
		}
		sc.stemLanguage = lang
		return nil
	}
}

// WithModel starts the checker from the counts and totals of src. The
// checker keeps its own labels.
func WithModel(src *Model[string], mode LoadMode) Option {
	return func(sc *SpamChecker) error {
		m, err := NewModelFrom(sc.Model.labels, src, mode)
		if err != nil {
			return err
		}
		sc.Model = m
		return nil
	}
}

// NewSpamChecker creates an empty spam checker.
func NewSpamChecker(opts ...Option) (*SpamChecker, error) {
	sc := &SpamChecker{Model: NewModel[string](SpamLabels())}
	for _, opt := range opts {
		if err := opt(sc); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

// NewInstance returns an empty spam checker with default labels.
func (sc *SpamChecker) NewInstance() Perceptron[string] {
	return &SpamChecker{Model: NewModel[string](SpamLabels())}
}

// Tokenize lower-cases s and splits it on runs of non-word characters.
// Leading or trailing runs yield an empty token, which callers prune:
// "Buy NOW!!" becomes ["buy" "now" ""].
func (sc *SpamChecker) Tokenize(s string) []string {
	words := nonWordRun.Split(cases.Lower(language.Und).String(s), -1)
	if sc.stemLanguage == "" {
		return words
	}

	for i, word := range words {
		if word == "" {
			continue
		}
		if stemmed, err := snowball.Stem(word, sc.stemLanguage, true); err == nil {
			words[i] = stemmed
		}
	}
	return words
}
