package hebtok

import "regexp"

// Separator is the join kind between two consecutive words of an MWE.
type Separator int

const (
	SepSpace Separator = iota
	SepHyphen
)

// MWE is a multi-word expression candidate: a word followed by further words
// joined by single spaces, or by a bounded number of hyphens. Offsets are
// rune offsets into the matched text.
type MWE struct {
	Term  string
	Start int
	End   int
	Words []Word
	Seps  []Separator
}

func (m MWE) Terms() []string {
	terms := make([]string, len(m.Words))
	for i, w := range m.Words {
		terms[i] = w.Term
	}
	return terms
}

func (m MWE) HyphenCount() int {
	n := 0
	for _, sep := range m.Seps {
		if sep == SepHyphen {
			n++
		}
	}
	return n
}

type mweMatcher struct {
	words            *wordMatcher
	maxHyphens       int
	unlimitedHyphens bool
}

func newMweMatcher(p policy, words *wordMatcher) *mweMatcher {
	return &mweMatcher{
		words:            words,
		maxHyphens:       p.maxMweHyphens,
		unlimitedHyphens: p.unlimitedMweHyphens,
	}
}

// findAll assembles the word matches into maximal non-overlapping MWE spans.
// An MWE continues from its first word either as a chain of space-joined
// words or as a chain of 1..maxHyphens hyphen-joined words, and must not
// touch a hyphen on either side.
func (m *mweMatcher) findAll(rs []rune) []MWE {
	words := m.words.findAll(rs)
	var mwes []MWE
	i := 0
	for i < len(words) {
		if words[i].Start > 0 && rs[words[i].Start-1] == '-' {
			i++
			continue
		}

		j := i
		for j+1 < len(words) && joinedBy(rs, words[j], words[j+1], ' ') {
			j++
		}
		if j > i {
			if runeAt(rs, words[j].End) == '-' {
				// Shrink by one word rather than absorb a joining hyphen.
				j--
			}
			if j > i {
				mwes = append(mwes, m.build(rs, words[i:j+1], SepSpace))
				i = j + 1
				continue
			}
			i++
			continue
		}

		k := i
		for k+1 < len(words) && joinedBy(rs, words[k], words[k+1], '-') {
			k++
		}
		if k > i {
			hyphens := k - i
			withinBound := m.unlimitedHyphens || (m.maxHyphens > 0 && hyphens <= m.maxHyphens)
			if withinBound && runeAt(rs, words[k].End) != '-' {
				mwes = append(mwes, m.build(rs, words[i:k+1], SepHyphen))
			}
			// Whether or not the chain was accepted, its inner words are all
			// hyphen-preceded and cannot start an MWE.
			i = k + 1
			continue
		}
		i++
	}
	return mwes
}

// fullMatch reports whether the entire input is exactly one MWE.
func (m *mweMatcher) fullMatch(rs []rune) bool {
	mwes := m.findAll(rs)
	return len(mwes) == 1 && mwes[0].Start == 0 && mwes[0].End == len(rs)
}

func joinedBy(rs []rune, a, b Word, sep rune) bool {
	return b.Start == a.End+1 && rs[a.End] == sep
}

func runeAt(rs []rune, i int) rune {
	if i < 0 || i >= len(rs) {
		return 0
	}
	return rs[i]
}

func (m *mweMatcher) build(rs []rune, words []Word, sep Separator) MWE {
	ws := make([]Word, len(words))
	copy(ws, words)
	seps := make([]Separator, len(ws)-1)
	for i := range seps {
		seps[i] = sep
	}
	start, end := ws[0].Start, ws[len(ws)-1].End
	return MWE{
		Term:  string(rs[start:end]),
		Start: start,
		End:   end,
		Words: ws,
		Seps:  seps,
	}
}

// Line opening hyphens are used for dialogue and enumeration; padding them
// with a space turns them into separators instead of word-joining hyphens.
var lineOpeningHyphenRegex = regexp.MustCompile(`((?:^|[\n\r])\s*-{1,2})([\p{L}\p{N}_])`)

func rewriteLineOpeningHyphens(text string) string {
	return lineOpeningHyphenRegex.ReplaceAllString(text, "$1 $2")
}
