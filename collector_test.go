package hebtok

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestStorage keeps candidates and occurrence lists in memory. The embedded
// interface panics on anything the collector is not expected to call.
type TestStorage struct {
	Storage
	nextDocID  DocumentID
	nextCandID CandidateID
	candidates map[string]Candidate
	documents  []Document
	stored     OccurrenceIndex
	upserted   []OccurrenceIndex
}

func NewTestStorage() *TestStorage {
	return &TestStorage{
		candidates: map[string]Candidate{},
		stored:     OccurrenceIndex{},
	}
}

func (s *TestStorage) AddDocument(doc Document) (DocumentID, error) {
	s.nextDocID++
	doc.ID = s.nextDocID
	s.documents = append(s.documents, doc)
	return doc.ID, nil
}

func (s *TestStorage) AddCandidate(candidate Candidate) error {
	if _, ok := s.candidates[candidate.Phrase]; ok {
		return nil
	}
	s.nextCandID++
	candidate.ID = s.nextCandID
	s.candidates[candidate.Phrase] = candidate
	return nil
}

func (s *TestStorage) GetCandidateByPhrase(phrase string) (Candidate, error) {
	return s.candidates[phrase], nil
}

func (s *TestStorage) GetOccurrenceIndexByCandidateIDs(ids []CandidateID) (OccurrenceIndex, error) {
	idx := OccurrenceIndex{}
	for _, id := range ids {
		if list, ok := s.stored[id]; ok {
			idx[id] = list
		}
	}
	return idx, nil
}

func (s *TestStorage) UpsertOccurrenceIndex(idx OccurrenceIndex) error {
	s.upserted = append(s.upserted, idx)
	for id, list := range idx {
		s.stored[id] = list
	}
	return nil
}

func (s *TestStorage) candidateID(phrase string) CandidateID {
	return s.candidates[phrase].ID
}

func TestCollector_AddDocument(t *testing.T) {
	tokenizer, err := NewTokenizer()
	if err != nil {
		t.Fatal(err)
	}
	storage := NewTestStorage()
	collector := NewCollector(storage, tokenizer)

	// FlushThreshold zero flushes after every document.
	if err := collector.AddDocument(NewDocument("שלום עולם שלום", 0)); err != nil {
		t.Fatal(err)
	}

	if len(storage.documents) != 1 {
		t.Fatalf("len(documents) = %v, want 1", len(storage.documents))
	}
	if got := storage.documents[0].WordCount; got != 3 {
		t.Errorf("stored WordCount = %v, want 3", got)
	}

	mweCandidate, err := storage.GetCandidateByPhrase("שלום עולם שלום")
	if err != nil {
		t.Fatal(err)
	}
	if mweCandidate.WordCount != 3 || mweCandidate.HyphenCount != 0 {
		t.Errorf("MWE candidate = %+v, want WordCount 3, HyphenCount 0", mweCandidate)
	}

	if len(storage.upserted) != 1 {
		t.Fatalf("len(upserted) = %v, want 1", len(storage.upserted))
	}
	want := OccurrenceIndex{
		storage.candidateID("שלום"):           NewOccurrenceList(NewOccurrences(1, []uint64{0, 2}, nil)),
		storage.candidateID("עולם"):           NewOccurrenceList(NewOccurrences(1, []uint64{1}, nil)),
		storage.candidateID("שלום עולם שלום"): NewOccurrenceList(NewOccurrences(1, []uint64{0}, nil)),
	}
	if diff := cmp.Diff(want, storage.upserted[0]); diff != "" {
		t.Errorf("upserted index mismatch (-want +got):\n%s", diff)
	}

	if len(collector.OccurrenceIndex) != 0 {
		t.Errorf("len(OccurrenceIndex) = %v, want 0 after flush", len(collector.OccurrenceIndex))
	}
}

func TestCollector_MwePositionsAfterLineOpeningHyphen(t *testing.T) {
	tokenizer, err := NewTokenizer()
	if err != nil {
		t.Fatal(err)
	}
	storage := NewTestStorage()
	collector := NewCollector(storage, tokenizer)
	collector.FlushThreshold = 100

	// The line opening hyphen rewrite shifts MWE offsets by one; positions
	// must still index into the document's word sequence.
	if err := collector.AddDocument(NewDocument("שלום וברכה\n-תל אביב", 0)); err != nil {
		t.Fatal(err)
	}

	positions := func(phrase string) []uint64 {
		list, ok := collector.OccurrenceIndex[storage.candidateID(phrase)]
		if !ok || list.Occurrences == nil {
			t.Fatalf("no occurrences recorded for %v", phrase)
		}
		return list.Occurrences.Positions
	}
	if diff := cmp.Diff([]uint64{0}, positions("שלום וברכה")); diff != "" {
		t.Errorf("first MWE positions mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint64{2}, positions("תל אביב")); diff != "" {
		t.Errorf("second MWE positions mismatch (-want +got):\n%s", diff)
	}
}

func TestCollector_FlushMergesStored(t *testing.T) {
	tokenizer, err := NewTokenizer()
	if err != nil {
		t.Fatal(err)
	}
	storage := NewTestStorage()
	collector := NewCollector(storage, tokenizer)

	if err := collector.AddDocument(NewDocument("שלום", 0)); err != nil {
		t.Fatal(err)
	}
	if err := collector.AddDocument(NewDocument("שלום", 0)); err != nil {
		t.Fatal(err)
	}

	id := storage.candidateID("שלום")
	got := documentIDs(storage.stored[id])
	if diff := cmp.Diff([]DocumentID{1, 2}, got); diff != "" {
		t.Errorf("stored occurrence documents mismatch (-want +got):\n%s", diff)
	}
	if freq := storage.stored[id].Frequency(); freq != 2 {
		t.Errorf("Frequency() = %v, want 2", freq)
	}
}

func TestCollector_FlushThreshold(t *testing.T) {
	tokenizer, err := NewTokenizer()
	if err != nil {
		t.Fatal(err)
	}
	storage := NewTestStorage()
	collector := NewCollector(storage, tokenizer)
	collector.FlushThreshold = 100

	if err := collector.AddDocument(NewDocument("שלום עולם", 0)); err != nil {
		t.Fatal(err)
	}
	if len(storage.upserted) != 0 {
		t.Fatalf("len(upserted) = %v, want 0 below the threshold", len(storage.upserted))
	}

	// The in-memory index holds both words and the MWE.
	if got := len(collector.OccurrenceIndex); got != 3 {
		t.Errorf("len(OccurrenceIndex) = %v, want 3", got)
	}

	if err := collector.Flush(); err != nil {
		t.Fatal(err)
	}
	if len(storage.upserted) != 1 {
		t.Errorf("len(upserted) = %v, want 1 after an explicit flush", len(storage.upserted))
	}
}
