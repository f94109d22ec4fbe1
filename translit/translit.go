// Package translit folds arbitrary Unicode spans to an ASCII-normalized
// equivalent. The tokenizer only ever hands it non-Hebrew runs.
package translit

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
)

type Transliterator interface {
	Transliterate(string) string
}

// Unidecode wraps mozillazg/go-unidecode so the rest of the module does not
// depend on it directly. Characters with no ASCII mapping are preserved
// rather than dropped.
type Unidecode struct{}

func NewUnidecode() *Unidecode {
	return &Unidecode{}
}

func (u *Unidecode) Transliterate(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < 0x80 {
			b.WriteRune(r)
			continue
		}
		if t := unidecode.Unidecode(string(r)); t != "" {
			b.WriteString(t)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
