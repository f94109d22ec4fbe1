package hebtok

// Occurrences is a linked list of the documents a candidate occurs in,
// ordered by document ID, with the word positions inside each document.
type Occurrences struct {
	DocumentID DocumentID
	Positions  []uint64
	Next       *Occurrences
}

func NewOccurrences(docID DocumentID, positions []uint64, next *Occurrences) *Occurrences {
	return &Occurrences{
		DocumentID: docID,
		Positions:  positions,
		Next:       next,
	}
}

// PushBack inserts e right after o.
func (o *Occurrences) PushBack(e *Occurrences) {
	e.Next = o.Next
	o.Next = e
}

type OccurrenceList struct {
	Occurrences *Occurrences
}

func NewOccurrenceList(o *Occurrences) OccurrenceList {
	return OccurrenceList{Occurrences: o}
}

// Frequency is the total number of recorded positions.
func (l OccurrenceList) Frequency() int {
	n := 0
	for o := l.Occurrences; o != nil; o = o.Next {
		n += len(o.Positions)
	}
	return n
}

// OccurrenceIndex maps a candidate to where it occurs.
type OccurrenceIndex map[CandidateID]OccurrenceList

func (idx OccurrenceIndex) CandidateIDs() []CandidateID {
	ids := make([]CandidateID, 0, len(idx))
	for id := range idx {
		ids = append(ids, id)
	}
	return ids
}

// merge combines two document-ordered occurrence lists into one, keeping the
// order and deduplicating documents present in both.
func merge(origin, target OccurrenceList) OccurrenceList {
	if origin.Occurrences == nil {
		return target
	}
	if target.Occurrences == nil {
		return origin
	}

	merged := OccurrenceList{
		Occurrences: nil,
	}
	var smaller, larger *Occurrences
	if origin.Occurrences.DocumentID <= target.Occurrences.DocumentID {
		merged.Occurrences = origin.Occurrences
		smaller, larger = origin.Occurrences, target.Occurrences
	} else {
		merged.Occurrences = target.Occurrences
		smaller, larger = target.Occurrences, origin.Occurrences
	}

	for larger != nil {
		if smaller.Next == nil {
			smaller.Next = larger
			break
		}

		if smaller.Next.DocumentID < larger.DocumentID {
			smaller = smaller.Next
		} else if smaller.Next.DocumentID > larger.DocumentID {
			largerNext, smallerNext := larger.Next, smaller.Next
			smaller.Next, larger.Next = larger, smallerNext
			smaller = larger
			larger = largerNext
		} else {
			smaller, larger = smaller.Next, larger.Next
		}
	}
	return merged
}
