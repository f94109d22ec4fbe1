package hebtok

import "strings"

// Ngrams returns every contiguous window of n words, in order. A sequence
// shorter than n contributes nothing.
func Ngrams(words []string, n int) [][]string {
	if n < 1 || len(words) < n {
		return nil
	}
	grams := make([][]string, 0, len(words)-n+1)
	for i := 0; i+n <= len(words); i++ {
		gram := make([]string, n)
		copy(gram, words[i:i+n])
		grams = append(grams, gram)
	}
	return grams
}

// NgramStrings is Ngrams with each window space-joined into one string.
func NgramStrings(words []string, n int) []string {
	grams := Ngrams(words, n)
	if grams == nil {
		return nil
	}
	strs := make([]string, len(grams))
	for i, gram := range grams {
		strs[i] = strings.Join(gram, " ")
	}
	return strs
}
