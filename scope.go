package hebtok

import (
	"fmt"
	"regexp"
	"strings"
)

// Scope is the strict mode of GetMwe: when set, an MWE only matches if it is
// the sole Hebrew content of its enclosing clause, sentence or line.
type Scope int

const (
	ScopeNone Scope = iota
	ScopeClause
	ScopeSentence
	ScopeLine
)

var (
	clauseSepRegex   = regexp.MustCompile("\t|[.?!:;,)\"]\\s|\\s[(\"]|\\s-\\s")
	sentenceSepRegex = regexp.MustCompile(`[.?!]`)
)

// splitScope puts every scope fragment on its own line, so that strict
// matching reduces to per-line matching.
func splitScope(text string, strict Scope) (string, error) {
	switch strict {
	case ScopeClause:
		return strings.Join(clauseSepRegex.Split(text, -1), "\n"), nil
	case ScopeSentence:
		return strings.Join(sentenceSepRegex.Split(text, -1), "\n"), nil
	case ScopeLine:
		return text, nil
	}
	return "", fmt.Errorf("hebtok: unknown strict scope: %d", strict)
}

// findStrict returns, for every line whose Hebrew content is exactly one MWE,
// that MWE. Leading and trailing non-Hebrew characters are allowed.
func (m *mweMatcher) findStrict(text string) []MWE {
	var mwes []MWE
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		rs := []rune(line)
		found := m.findAll(rs)
		if len(found) == 0 {
			continue
		}
		mwe := found[0]
		if hasHebrewOutside(rs, mwe.Start, mwe.End) {
			continue
		}
		mwes = append(mwes, mwe)
	}
	return mwes
}

func hasHebrewOutside(rs []rune, start, end int) bool {
	for i, r := range rs {
		if i >= start && i < end {
			continue
		}
		if isHebrewLetter(r) {
			return true
		}
	}
	return false
}
