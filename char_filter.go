package hebtok

import (
	"strings"

	"github.com/hebtext/hebtok/translit"
)

type CharFilter interface {
	Filter(string) string
}

// DiacriticCharFilter removes nikud and teamim.
type DiacriticCharFilter struct{}

func NewDiacriticCharFilter() DiacriticCharFilter {
	return DiacriticCharFilter{}
}

func (f DiacriticCharFilter) Filter(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !isDiacritic(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MakafCharFilter replaces makaf with a plain space. In biblical texts makaf
// is a taam and does not signify hyphenation.
type MakafCharFilter struct{}

func NewMakafCharFilter() MakafCharFilter {
	return MakafCharFilter{}
}

func (f MakafCharFilter) Filter(s string) string {
	return strings.ReplaceAll(s, string(makaf), " ")
}

// markCharFilter collapses a verse mark together with any adjacent horizontal
// whitespace into a fixed replacement.
type markCharFilter struct {
	mark        rune
	replacement string
}

// NewPasekCharFilter collapses pasek to a single space: inside a verse it
// signifies a break between words.
func NewPasekCharFilter() CharFilter {
	return markCharFilter{mark: pasek, replacement: " "}
}

// NewSofPasukCharFilter collapses sof-pasuk to a period and a space: it
// signifies the end of a sentence.
func NewSofPasukCharFilter() CharFilter {
	return markCharFilter{mark: sofPasuk, replacement: ". "}
}

func (f markCharFilter) Filter(s string) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(rs) {
		j := i
		for j < len(rs) && isHorizontalSpace(rs[j]) {
			j++
		}
		if j < len(rs) && rs[j] == f.mark {
			j++
			for j < len(rs) && isHorizontalSpace(rs[j]) {
				j++
			}
			b.WriteString(f.replacement)
			i = j
			continue
		}
		b.WriteRune(rs[i])
		i++
	}
	return b.String()
}

// TransliterateCharFilter folds every maximal run of characters that are
// neither Hebrew letters nor diacritics to an ASCII equivalent. Hebrew
// letters and diacritics are never handed to the transliterator.
type TransliterateCharFilter struct {
	translit translit.Transliterator
}

func NewTransliterateCharFilter(t translit.Transliterator) TransliterateCharFilter {
	return TransliterateCharFilter{translit: t}
}

func (f TransliterateCharFilter) Filter(s string) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(rs) {
		if isHebrewLetter(rs[i]) || isDiacritic(rs[i]) {
			b.WriteRune(rs[i])
			i++
			continue
		}
		j := i
		for j < len(rs) && !isHebrewLetter(rs[j]) && !isDiacritic(rs[j]) {
			j++
		}
		b.WriteString(f.translit.Transliterate(string(rs[i:j])))
		i = j
	}
	return b.String()
}
