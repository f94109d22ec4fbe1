package hebtok

import "unicode"

// Word is a span of sanitized text accepted as a well-formed Hebrew word.
// Offsets are rune offsets.
type Word struct {
	Term  string
	Start int
	End   int
}

// wordUnit is one letter of a candidate run, with its geresh if it carries
// one. Repetition limits compare whole units.
type wordUnit struct {
	letter rune
	geresh bool
}

// wordMatcher recognizes maximal valid Hebrew word spans with a single
// left-to-right scan. The repetition, diversity and boundary rules need
// backreferences and lookarounds no RE2-style engine can express, so they are
// carried as explicit scanner state instead.
type wordMatcher struct {
	maxRepetition    int // 0 = unlimited
	maxEndRepetition int // 0 = unlimited
	allowTripleMem   bool
	maxOneTwoCharLen int // 0 = no diversity guard
	allowNumberRefs  bool
}

func newWordMatcher(p policy) *wordMatcher {
	return &wordMatcher{
		maxRepetition:    p.maxCharRepetition,
		maxEndRepetition: p.maxEndOfWordCharRepetition,
		allowTripleMem:   p.allowTripleMem,
		maxOneTwoCharLen: p.maxOneTwoCharWordLen,
		allowNumberRefs:  p.allowNumberRefs,
	}
}

// findAll returns all non-overlapping word matches, left to right. A run that
// violates any constraint is skipped whole: stray punctuation inside a longer
// malformed letter-run must not re-anchor a shorter match.
func (m *wordMatcher) findAll(rs []rune) []Word {
	var words []Word
	i := 0
	for i < len(rs) {
		if !isHebrewLetter(rs[i]) {
			i++
			continue
		}
		start := i
		units, end := scanRun(rs, i)
		i = end
		if m.accept(rs, start, end, units) {
			words = append(words, Word{Term: string(rs[start:end]), Start: start, End: end})
		}
	}
	return words
}

// fullMatch reports whether the entire input is exactly one valid word.
func (m *wordMatcher) fullMatch(rs []rune) bool {
	if len(rs) == 0 || !isHebrewLetter(rs[0]) {
		return false
	}
	units, end := scanRun(rs, 0)
	return end == len(rs) && m.accept(rs, 0, end, units)
}

// scanRun consumes a maximal run of Hebrew letters starting at i, attaching a
// geresh to the letters that may carry one.
func scanRun(rs []rune, i int) ([]wordUnit, int) {
	var units []wordUnit
	for i < len(rs) && isHebrewLetter(rs[i]) {
		u := wordUnit{letter: rs[i]}
		i++
		if i < len(rs) && rs[i] == geresh && canCarryGeresh(u.letter) {
			u.geresh = true
			i++
		}
		units = append(units, u)
	}
	return units, i
}

func canCarryGeresh(r rune) bool {
	switch r {
	case 'ג', 'ז', 'צ', 'ץ':
		return true
	}
	return false
}

func (m *wordMatcher) accept(rs []rune, start, end int, units []wordUnit) bool {
	if len(units) < 2 {
		return false
	}
	if !m.validContext(rs, start, end) {
		return false
	}
	for _, u := range units[:len(units)-1] {
		// Final forms are illegal mid-word. A geresh can only have attached to
		// גזצ here, all of which are legal mid-word carriers.
		if !nonFinalSet[u.letter] {
			return false
		}
	}
	last := units[len(units)-1]
	if last.geresh {
		if !canCarryGeresh(last.letter) {
			return false
		}
	} else if !finalEligibleSet[last.letter] {
		return false
	}
	return m.validRepetition(units) && m.validDiversity(units)
}

// validContext applies the boundary guards on the characters surrounding the
// run.
func (m *wordMatcher) validContext(rs []rune, start, end int) bool {
	var prev1, prev2 rune
	if start > 0 {
		prev1 = rs[start-1]
	}
	if start > 1 {
		prev2 = rs[start-2]
	}
	if prev1 != 0 {
		if isWordChar(prev1) {
			return false
		}
		// A stray character gluing the run to a preceding Hebrew letter means
		// this is not a real word start.
		if !unicode.IsSpace(prev1) && prev1 != '-' && isHebrewLetter(prev2) {
			return false
		}
	}

	var next1, next2 rune
	if end < len(rs) {
		next1 = rs[end]
	}
	if end+1 < len(rs) {
		next2 = rs[end+1]
	}
	if next1 == 0 {
		return true
	}
	if next1 == geresh {
		return false
	}
	if isWordChar(next1) && !(m.allowNumberRefs && unicode.IsDigit(next1)) {
		return false
	}
	if next1 == '-' {
		// A trailing hyphen is reserved for joining a following word into an
		// MWE; dangling it off the word is not allowed.
		return isHebrewLetter(next2)
	}
	if !unicode.IsSpace(next1) && isHebrewLetter(next2) {
		return false
	}
	return true
}

func (m *wordMatcher) validRepetition(units []wordUnit) bool {
	i := 0
	for i < len(units) {
		j := i
		for j < len(units) && units[j] == units[i] {
			j++
		}
		runLen := j - i
		if m.maxRepetition > 0 && runLen > m.maxRepetition && !m.allowedTripleMem(units[i], runLen) {
			return false
		}
		if m.maxEndRepetition > 0 && j == len(units) && runLen > m.maxEndRepetition {
			return false
		}
		i = j
	}
	return true
}

// מממ is a legitimate prefix sequence in real words (מממשלת ,מממש ,מממן), so a
// run of exactly three mem is allowed; four or more are not.
func (m *wordMatcher) allowedTripleMem(u wordUnit, runLen int) bool {
	return m.allowTripleMem && m.maxRepetition == 2 && u.letter == 'מ' && !u.geresh && runLen == 3
}

// validDiversity rejects long words cycling only one or two distinct letters
// (חיחיחיחיחי), a common form of slang writing. Short words are exempt.
func (m *wordMatcher) validDiversity(units []wordUnit) bool {
	if m.maxOneTwoCharLen == 0 || len(units) <= m.maxOneTwoCharLen {
		return true
	}
	distinct := make(map[rune]bool, 3)
	for _, u := range units {
		distinct[u.letter] = true
		if len(distinct) >= 3 {
			return true
		}
	}
	return false
}
