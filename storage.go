package hebtok

type Storage interface {
	GetAllDocuments() ([]Document, error)                               // all stored documents
	GetDocuments([]DocumentID) ([]Document, error)                      // documents by ID
	AddDocument(Document) (DocumentID, error)                           // insert a document, returning its ID
	AddCandidate(Candidate) error                                       // insert a candidate phrase; duplicates are fine
	GetCandidateByPhrase(string) (Candidate, error)                     // candidate lookup by surface form
	GetCandidatesByPhrases([]string) ([]Candidate, error)               // batched lookup, same order as the input
	GetTopCandidates(limit int) ([]CandidateFrequency, error)           // most frequent candidates
	GetOccurrenceIndexByCandidateIDs([]CandidateID) (OccurrenceIndex, error) // persisted occurrence lists
	UpsertOccurrenceIndex(OccurrenceIndex) error                        // write back merged occurrence lists
}
