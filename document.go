package hebtok

type DocumentID uint64

// Document is one corpus text candidates are collected from.
type Document struct {
	ID        DocumentID `db:"id"`
	Body      string     `db:"body"`
	WordCount int        `db:"word_count"`
}

func NewDocument(body string, wordCount int) Document {
	return Document{
		Body:      body,
		WordCount: wordCount,
	}
}
