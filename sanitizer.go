package hebtok

import "github.com/hebtext/hebtok/translit"

// Sanitizer turns raw text into matchable text by running an ordered chain of
// char filters: diacritic removal, verse mark normalization, then ASCII
// folding of non-Hebrew runs. Sanitizing already sanitized text is a no-op.
type Sanitizer struct {
	charFilters []CharFilter
}

type SanitizerOption func(*sanitizerConfig)

type sanitizerConfig struct {
	leaveDiacritics bool
	bibleMakaf      bool
	translit        translit.Transliterator
}

// WithoutDiacriticRemoval keeps nikud and teamim in place, for ktiv-male use
// cases that want to discard pointed words downstream.
func WithoutDiacriticRemoval() SanitizerOption {
	return func(c *sanitizerConfig) {
		c.leaveDiacritics = true
	}
}

// WithBibleMakaf treats makaf as a taam, replacing it with a space.
func WithBibleMakaf() SanitizerOption {
	return func(c *sanitizerConfig) {
		c.bibleMakaf = true
	}
}

func WithTransliterator(t translit.Transliterator) SanitizerOption {
	return func(c *sanitizerConfig) {
		c.translit = t
	}
}

func NewSanitizer(options ...SanitizerOption) *Sanitizer {
	c := sanitizerConfig{translit: translit.NewUnidecode()}
	for _, option := range options {
		option(&c)
	}
	charFilters := make([]CharFilter, 0, 5)
	if !c.leaveDiacritics {
		charFilters = append(charFilters, NewDiacriticCharFilter())
	}
	if c.bibleMakaf {
		charFilters = append(charFilters, NewMakafCharFilter())
	}
	charFilters = append(charFilters,
		NewPasekCharFilter(),
		NewSofPasukCharFilter(),
		NewTransliterateCharFilter(c.translit),
	)
	return &Sanitizer{charFilters: charFilters}
}

func (s *Sanitizer) Sanitize(text string) string {
	for _, f := range s.charFilters {
		text = f.Filter(text)
	}
	return text
}

var defaultSanitizer = NewSanitizer()

// Sanitize normalizes text with the default pipeline: diacritics stripped,
// pasek and sof-pasuk collapsed, non-Hebrew runs folded to ASCII.
func Sanitize(text string) string {
	return defaultSanitizer.Sanitize(text)
}

// RemoveDiacritics strips nikud and teamim only.
func RemoveDiacritics(text string) string {
	return NewDiacriticCharFilter().Filter(text)
}
