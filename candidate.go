package hebtok

type CandidateID uint64

// Candidate is a distinct word or MWE surface form extracted from the
// corpus.
type Candidate struct {
	ID          CandidateID `db:"id"`
	Phrase      string      `db:"phrase"`
	WordCount   int         `db:"word_count"`
	HyphenCount int         `db:"hyphen_count"`
}

type CandidateOption func(*Candidate)

func NewCandidate(phrase string, options ...CandidateOption) Candidate {
	candidate := Candidate{Phrase: phrase, WordCount: 1}
	for _, option := range options {
		option(&candidate)
	}
	return candidate
}

func SetWordCount(n int) CandidateOption {
	return func(c *Candidate) {
		c.WordCount = n
	}
}

func SetHyphenCount(n int) CandidateOption {
	return func(c *Candidate) {
		c.HyphenCount = n
	}
}

// CandidateFrequency pairs a candidate phrase with its corpus occurrence
// count.
type CandidateFrequency struct {
	Phrase    string `db:"phrase"`
	Frequency int    `db:"frequency"`
}
