package hebtok

import (
	"strings"
	"unicode"
)

// The Hebrew consonantal alphabet spans U+05D0..U+05EA. Five letters (כמנפצ)
// take a distinct final form (ךםןףץ) at the end of a word.
const (
	hebrewLetterMin = 'א'
	hebrewLetterMax = 'ת'

	geresh   = '\''
	makaf    = '־'
	pasek    = '׀'
	sofPasuk = '׃'
)

const (
	finalLetters    = "ךםןףץ"
	nonFinalLetters = "אבגדהוזחטיכלמנסעפצקרשת"

	// Letters that may carry a geresh to represent borrowed sounds.
	gereshEligibleNonFinal = "גזצ"
	gereshEligibleFinal    = "גזץצ"
)

var (
	toFinalTable    = map[rune]rune{'כ': 'ך', 'מ': 'ם', 'נ': 'ן', 'פ': 'ף', 'צ': 'ץ'}
	toNonFinalTable = map[rune]rune{'ך': 'כ', 'ם': 'מ', 'ן': 'נ', 'ף': 'פ', 'ץ': 'צ'}

	nonFinalSet      = runeSet(nonFinalLetters)
	finalEligibleSet = buildFinalEligibleSet()
)

func runeSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[r] = true
	}
	return set
}

// A word may end with a true final form, with any letter that has no
// final/non-final distinction, or with bare פ: common usage writes word-final
// /f/ both as ף and as פ.
func buildFinalEligibleSet() map[rune]bool {
	set := map[rune]bool{'פ': true}
	for _, r := range nonFinalLetters {
		if f, ok := toFinalTable[r]; ok {
			set[f] = true
		} else {
			set[r] = true
		}
	}
	return set
}

func isHebrewLetter(r rune) bool {
	return r >= hebrewLetterMin && r <= hebrewLetterMax
}

func isFinalLetter(r rune) bool {
	return strings.ContainsRune(finalLetters, r)
}

// isDiacritic reports whether r is a nikud or taam mark. Makaf, pasek,
// sof-pasuk and nun-hafukha are excluded, they carry their own meaning.
func isDiacritic(r rune) bool {
	switch {
	case r >= '֑' && r <= 'ֽ':
		return true
	case r == 'ֿ', r == 'ׁ', r == 'ׂ', r == 'ׄ', r == 'ׅ', r == 'ׇ':
		return true
	}
	return false
}

func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isHorizontalSpace reports whether r is whitespace other than tab and
// line/page breaks.
func isHorizontalSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\r', '\f', '\v':
		return false
	}
	return unicode.IsSpace(r)
}

// ToFinal replaces the non-final form of the five ambiguous letters with the
// final form. Every other character passes through unchanged.
func ToFinal(text string) string {
	return strings.Map(func(r rune) rune {
		if f, ok := toFinalTable[r]; ok {
			return f
		}
		return r
	}, text)
}

// ToNonFinal is the exact inverse of ToFinal on the five ambiguous letters.
func ToNonFinal(text string) string {
	return strings.Map(func(r rune) rune {
		if n, ok := toNonFinalTable[r]; ok {
			return n
		}
		return r
	}, text)
}
