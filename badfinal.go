package hebtok

import (
	"regexp"
	"strings"
)

// DefaultBadFinalExceptions are legitimate fused forms seen in the wild,
// deleted before scanning. The word matcher still rejects them as words.
var DefaultBadFinalExceptions = []string{"לםרבה", "אנשיםות", "יוםיום", "סוףסוף"}

// Hashtags are removed without full sanitization, so makaf, geresh and
// gershayim appear explicitly.
var hashtagRegex = regexp.MustCompile(`#[\p{L}\p{N}_'"־׳״-]+`)

// FindBadFinal locates a final-form letter immediately followed by a
// non-final letter, a strong signal of badly fused words or lines. It
// returns the two-letter match and whether one was found.
func FindBadFinal(text string, exceptions []string) (string, bool) {
	matches := findBadFinals(text, exceptions, false)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}

// FindBadFinals returns every bad final match.
func FindBadFinals(text string, exceptions []string) []string {
	return findBadFinals(text, exceptions, true)
}

func findBadFinals(text string, exceptions []string, all bool) []string {
	text = RemoveDiacritics(text)
	text = hashtagRegex.ReplaceAllString(text, "")
	for _, exception := range exceptions {
		text = strings.ReplaceAll(text, exception, "")
	}
	var matches []string
	rs := []rune(text)
	for i := 0; i+1 < len(rs); i++ {
		if isFinalLetter(rs[i]) && nonFinalSet[rs[i+1]] {
			matches = append(matches, string(rs[i:i+2]))
			if !all {
				break
			}
		}
	}
	return matches
}
