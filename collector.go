package hebtok

import "fmt"

// Collector runs the tokenizer over corpus documents and accumulates word and
// MWE candidates with their occurrences, merging into storage once the
// in-memory index grows past the flush threshold.
type Collector struct {
	Storage         Storage
	Tokenizer       *Tokenizer
	OccurrenceIndex OccurrenceIndex
	FlushThreshold  int
}

func NewCollector(storage Storage, tokenizer *Tokenizer) *Collector {
	return &Collector{
		Storage:         storage,
		Tokenizer:       tokenizer,
		OccurrenceIndex: make(OccurrenceIndex),
	}
}

// AddDocument stores the document, folds its words and MWE candidates into
// the in-memory occurrence index, and flushes when the index is large enough.
func (c *Collector) AddDocument(doc Document) error {
	words := c.Tokenizer.GetWords(doc.Body)
	doc.WordCount = len(words)

	docID, err := c.Storage.AddDocument(doc)
	if err != nil {
		return err
	}
	doc.ID = docID

	if err := c.updateIndexByDocument(doc, words); err != nil {
		return err
	}

	if len(c.OccurrenceIndex) < c.FlushThreshold {
		return nil
	}
	return c.Flush()
}

// Flush merges the in-memory occurrence index into the stored one and resets
// it.
func (c *Collector) Flush() error {
	stored, err := c.Storage.GetOccurrenceIndexByCandidateIDs(c.OccurrenceIndex.CandidateIDs())
	if err != nil {
		return err
	}

	for id, list := range c.OccurrenceIndex {
		c.OccurrenceIndex[id] = merge(list, stored[id])
	}
	if err := c.Storage.UpsertOccurrenceIndex(c.OccurrenceIndex); err != nil {
		return err
	}

	c.OccurrenceIndex = make(OccurrenceIndex)
	return nil
}

func (c *Collector) updateIndexByDocument(doc Document, words []Word) error {
	for pos, word := range words {
		if err := c.record(doc.ID, NewCandidate(word.Term), uint64(pos)); err != nil {
			return err
		}
	}

	mwes, err := c.Tokenizer.GetMwe(doc.Body, ScopeNone)
	if err != nil {
		return err
	}
	cursor := 0
	for _, mwe := range mwes {
		pos, ok := wordPosition(words, mwe, cursor)
		if !ok {
			return fmt.Errorf("hebtok: mwe %q is not aligned with the word sequence of document %d", mwe.Term, doc.ID)
		}
		cursor = pos + len(mwe.Words)
		candidate := NewCandidate(mwe.Term, SetWordCount(len(mwe.Words)), SetHyphenCount(mwe.HyphenCount()))
		if err := c.record(doc.ID, candidate, uint64(pos)); err != nil {
			return err
		}
	}
	return nil
}

// wordPosition locates the MWE's word sequence inside the document's word
// sequence, searching from the given index. MWE spans are offsets into the
// text after the line opening hyphen rewrite, so they cannot be compared with
// the word offsets directly; the word terms and their order are identical in
// both texts.
func wordPosition(words []Word, mwe MWE, from int) (int, bool) {
	terms := mwe.Terms()
	for i := from; i+len(terms) <= len(words); i++ {
		if matchesTerms(words[i:i+len(terms)], terms) {
			return i, true
		}
	}
	return 0, false
}

func matchesTerms(words []Word, terms []string) bool {
	for i, term := range terms {
		if words[i].Term != term {
			return false
		}
	}
	return true
}

func (c *Collector) record(docID DocumentID, candidate Candidate, pos uint64) error {
	// Storage owns candidate IDs.
	if err := c.Storage.AddCandidate(candidate); err != nil {
		return err
	}
	candidate, err := c.Storage.GetCandidateByPhrase(candidate.Phrase)
	if err != nil {
		return err
	}

	list, ok := c.OccurrenceIndex[candidate.ID]
	if !ok {
		c.OccurrenceIndex[candidate.ID] = OccurrenceList{
			Occurrences: NewOccurrences(docID, []uint64{pos}, nil),
		}
		return nil
	}

	// Look for an existing entry for this document.
	var o *Occurrences = list.Occurrences
	for o != nil && o.DocumentID != docID {
		o = o.Next
	}
	if o != nil {
		o.Positions = append(o.Positions, pos)
		c.OccurrenceIndex[candidate.ID] = list
		return nil
	}

	// Insert keeping document IDs ascending.
	if docID < list.Occurrences.DocumentID {
		list.Occurrences = NewOccurrences(docID, []uint64{pos}, list.Occurrences)
		c.OccurrenceIndex[candidate.ID] = list
		return nil
	}
	var t *Occurrences = list.Occurrences
	for t.Next != nil && t.Next.DocumentID < docID {
		t = t.Next
	}
	t.PushBack(NewOccurrences(docID, []uint64{pos}, nil))
	c.OccurrenceIndex[candidate.ID] = list
	return nil
}
