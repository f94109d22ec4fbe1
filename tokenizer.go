package hebtok

import "fmt"

// Defaults for the tokenizer policy, matching field-tested values for dirty
// web text, subtitles, social media and biblical text.
const (
	DefaultMaxCharRepetition          = 2
	DefaultMaxEndOfWordCharRepetition = 2
	DefaultMaxOneTwoCharWordLen       = 7 // based on Hspell, e.g. שישישיי
	DefaultMaxMweHyphens              = 1
)

type policy struct {
	sanitize                   bool
	leaveDiacritics            bool
	maxCharRepetition          int // 0 = unlimited
	maxEndOfWordCharRepetition int // 0 = unlimited
	allowTripleMem             bool
	maxOneTwoCharWordLen       int // 0 = no diversity guard
	maxMweHyphens              int // 0 = hyphen joining disallowed
	unlimitedMweHyphens        bool
	allowLineOpeningHyphens    bool
	allowNumberRefs            bool
}

func defaultPolicy() policy {
	return policy{
		sanitize:                   true,
		maxCharRepetition:          DefaultMaxCharRepetition,
		maxEndOfWordCharRepetition: DefaultMaxEndOfWordCharRepetition,
		allowTripleMem:             true,
		maxOneTwoCharWordLen:       DefaultMaxOneTwoCharWordLen,
		maxMweHyphens:              DefaultMaxMweHyphens,
		allowLineOpeningHyphens:    true,
	}
}

type TokenizerOption func(*policy)

// WithoutSanitize matches raw input as-is; the caller is expected to have
// sanitized it already.
func WithoutSanitize() TokenizerOption {
	return func(p *policy) { p.sanitize = false }
}

// WithLeaveDiacritics keeps nikud and teamim during sanitization, so that
// pointed words fail to match instead of being silently unpointed.
func WithLeaveDiacritics() TokenizerOption {
	return func(p *policy) { p.leaveDiacritics = true }
}

// WithMaxCharRepetition caps runs of the same letter anywhere in a word.
// 0 means unlimited.
func WithMaxCharRepetition(n int) TokenizerOption {
	return func(p *policy) { p.maxCharRepetition = n }
}

// WithMaxEndOfWordCharRepetition caps the repeated run that terminates a
// word. Must not exceed the general cap when both are set. 0 means unlimited.
func WithMaxEndOfWordCharRepetition(n int) TokenizerOption {
	return func(p *policy) { p.maxEndOfWordCharRepetition = n }
}

// WithoutTripleMem drops the מממ carve-out from the repetition cap.
func WithoutTripleMem() TokenizerOption {
	return func(p *policy) { p.allowTripleMem = false }
}

// WithMaxOneTwoCharWordLen sets the length above which a word must use at
// least three distinct letters. 0 disables the guard.
func WithMaxOneTwoCharWordLen(n int) TokenizerOption {
	return func(p *policy) { p.maxOneTwoCharWordLen = n }
}

// WithMaxMweHyphens bounds the hyphen-joined continuations of an MWE.
// 0 disallows hyphen joining entirely, e.g. for biblical texts.
func WithMaxMweHyphens(n int) TokenizerOption {
	return func(p *policy) {
		p.maxMweHyphens = n
		p.unlimitedMweHyphens = false
	}
}

// WithUnlimitedMweHyphens lifts the hyphen bound.
func WithUnlimitedMweHyphens() TokenizerOption {
	return func(p *policy) { p.unlimitedMweHyphens = true }
}

// WithoutLineOpeningHyphens stops treating line opening hyphens as
// dialogue/enumeration marks.
func WithoutLineOpeningHyphens() TokenizerOption {
	return func(p *policy) { p.allowLineOpeningHyphens = false }
}

// WithNumberReferences allows a word to be directly followed by digits, as in
// footnote references.
func WithNumberReferences() TokenizerOption {
	return func(p *policy) { p.allowNumberRefs = true }
}

// Tokenizer recognizes well-formed Hebrew words and multi-word expression
// candidates in noisy text. It is immutable after construction and safe to
// share across goroutines; every call allocates only its own results.
type Tokenizer struct {
	policy    policy
	sanitizer *Sanitizer
	words     *wordMatcher
	mwes      *mweMatcher
}

func NewTokenizer(options ...TokenizerOption) (*Tokenizer, error) {
	p := defaultPolicy()
	for _, option := range options {
		option(&p)
	}
	if p.maxCharRepetition > 0 && p.maxEndOfWordCharRepetition > p.maxCharRepetition {
		return nil, fmt.Errorf("hebtok: maxEndOfWordCharRepetition=%d cannot be greater than maxCharRepetition=%d",
			p.maxEndOfWordCharRepetition, p.maxCharRepetition)
	}
	var sanitizerOptions []SanitizerOption
	if p.leaveDiacritics {
		sanitizerOptions = append(sanitizerOptions, WithoutDiacriticRemoval())
	}
	words := newWordMatcher(p)
	return &Tokenizer{
		policy:    p,
		sanitizer: NewSanitizer(sanitizerOptions...),
		words:     words,
		mwes:      newMweMatcher(p, words),
	}, nil
}

// Sanitize forwards to the tokenizer's sanitizer pipeline.
func (t *Tokenizer) Sanitize(text string) string {
	return t.sanitizer.Sanitize(text)
}

func (t *Tokenizer) prepare(text string) string {
	if t.policy.sanitize {
		return t.sanitizer.Sanitize(text)
	}
	return text
}

// IsWord reports whether the whole input is exactly one valid word.
func (t *Tokenizer) IsWord(text string) bool {
	return t.words.fullMatch([]rune(t.prepare(text)))
}

// GetWords returns all non-overlapping maximal word matches, left to right.
func (t *Tokenizer) GetWords(text string) []Word {
	return t.words.findAll([]rune(t.prepare(text)))
}

// HasWord reports whether the input contains at least one valid word.
func (t *Tokenizer) HasWord(text string) bool {
	return len(t.GetWords(text)) > 0
}

// IsMwe reports whether the whole input is exactly one MWE.
func (t *Tokenizer) IsMwe(text string) bool {
	return t.mwes.fullMatch([]rune(t.prepare(text)))
}

func (t *Tokenizer) IsWordOrMwe(text string) bool {
	rs := []rune(t.prepare(text))
	return t.words.fullMatch(rs) || t.mwes.fullMatch(rs)
}

// GetMwe returns all maximal non-overlapping MWE matches. With a strict
// scope, only MWEs that are the sole Hebrew content of their clause, sentence
// or line are returned, and spans are relative to their scope fragment.
func (t *Tokenizer) GetMwe(text string, strict Scope) ([]MWE, error) {
	text = t.prepare(text)
	if t.policy.allowLineOpeningHyphens {
		text = rewriteLineOpeningHyphens(text)
	}
	if strict == ScopeNone {
		return t.mwes.findAll([]rune(text)), nil
	}
	split, err := splitScope(text, strict)
	if err != nil {
		return nil, err
	}
	return t.mwes.findStrict(split), nil
}

// GetMweWords returns the word sequence of every MWE match.
func (t *Tokenizer) GetMweWords(text string, strict Scope) ([][]string, error) {
	mwes, err := t.GetMwe(text, strict)
	if err != nil {
		return nil, err
	}
	words := make([][]string, len(mwes))
	for i, mwe := range mwes {
		words[i] = mwe.Terms()
	}
	return words, nil
}

// GetMweWordsFlat is GetMweWords flattened into a single word list.
func (t *Tokenizer) GetMweWordsFlat(text string, strict Scope) ([]string, error) {
	wordLists, err := t.GetMweWords(text, strict)
	if err != nil {
		return nil, err
	}
	var flat []string
	for _, words := range wordLists {
		flat = append(flat, words...)
	}
	return flat, nil
}

// GetMweNgrams returns, per MWE with at least n words, all contiguous
// n-word windows.
func (t *Tokenizer) GetMweNgrams(text string, n int, strict Scope) ([][][]string, error) {
	wordLists, err := t.GetMweWords(text, strict)
	if err != nil {
		return nil, err
	}
	var result [][][]string
	for _, words := range wordLists {
		if grams := Ngrams(words, n); grams != nil {
			result = append(result, grams)
		}
	}
	return result, nil
}

// GetMweNgramsFlat flattens GetMweNgrams across MWEs.
func (t *Tokenizer) GetMweNgramsFlat(text string, n int, strict Scope) ([][]string, error) {
	perMwe, err := t.GetMweNgrams(text, n, strict)
	if err != nil {
		return nil, err
	}
	var flat [][]string
	for _, grams := range perMwe {
		flat = append(flat, grams...)
	}
	return flat, nil
}

// GetMweNgramStrings is GetMweNgrams with each window space-joined.
func (t *Tokenizer) GetMweNgramStrings(text string, n int, strict Scope) ([][]string, error) {
	wordLists, err := t.GetMweWords(text, strict)
	if err != nil {
		return nil, err
	}
	var result [][]string
	for _, words := range wordLists {
		if grams := NgramStrings(words, n); grams != nil {
			result = append(result, grams)
		}
	}
	return result, nil
}

// GetMweNgramStringsFlat flattens GetMweNgramStrings across MWEs.
func (t *Tokenizer) GetMweNgramStringsFlat(text string, n int, strict Scope) ([]string, error) {
	perMwe, err := t.GetMweNgramStrings(text, n, strict)
	if err != nil {
		return nil, err
	}
	var flat []string
	for _, grams := range perMwe {
		flat = append(flat, grams...)
	}
	return flat, nil
}

// GetMweBigrams is GetMweNgrams with n fixed to 2.
func (t *Tokenizer) GetMweBigrams(text string, strict Scope) ([][][]string, error) {
	return t.GetMweNgrams(text, 2, strict)
}

// GetMweBigramStrings is GetMweNgramStrings with n fixed to 2.
func (t *Tokenizer) GetMweBigramStrings(text string, strict Scope) ([][]string, error) {
	return t.GetMweNgramStrings(text, 2, strict)
}
