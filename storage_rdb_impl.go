package hebtok

import (
	"bytes"
	"database/sql"
	"encoding/gob"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

type DBConfig struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Addr     string `yaml:"addr"`
	Port     string `yaml:"port"`
	DB       string `yaml:"db"`
}

func NewDBConfig(user, password, addr, port, db string) *DBConfig {
	return &DBConfig{
		User:     user,
		Password: password,
		Addr:     addr,
		Port:     port,
		DB:       db,
	}
}

func NewDBClient(dbConfig *DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(
		"mysql",
		fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbConfig.User, dbConfig.Password, dbConfig.Addr, dbConfig.Port, dbConfig.DB),
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}

type StorageRdbImpl struct {
	DB *sqlx.DB
}

func NewStorageRdbImpl(db *sqlx.DB) *StorageRdbImpl {
	return &StorageRdbImpl{
		DB: db,
	}
}

func (s *StorageRdbImpl) CountDocuments() (int, error) {
	var count int
	row := s.DB.QueryRow(`select count(*) from documents`)
	if err := row.Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}

func (s *StorageRdbImpl) GetAllDocuments() ([]Document, error) {
	var docs []Document
	if err := s.DB.Select(&docs, `select * from documents`); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *StorageRdbImpl) GetDocuments(ids []DocumentID) ([]Document, error) {
	if len(ids) == 0 {
		return []Document{}, nil
	}
	intDocIDs := make([]int, len(ids))
	for i, id := range ids {
		intDocIDs[i] = int(id)
	}

	query, params, err := sqlx.In(`select * from documents where id in (?)`, intDocIDs)
	if err != nil {
		return nil, err
	}
	var docs []Document
	if err = s.DB.Select(&docs, query, params...); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *StorageRdbImpl) AddDocument(doc Document) (DocumentID, error) {
	res, err := s.DB.NamedExec(`insert into documents (body, word_count) values (:body, :word_count)`,
		map[string]interface{}{
			"body":       doc.Body,
			"word_count": doc.WordCount,
		})
	if err != nil {
		return 0, err
	}

	insertedID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return DocumentID(insertedID), nil
}

func (s *StorageRdbImpl) AddCandidate(candidate Candidate) error {
	_, err := s.DB.NamedExec(`insert into candidates (phrase, word_count, hyphen_count) values (:phrase, :word_count, :hyphen_count)`,
		map[string]interface{}{
			"phrase":       candidate.Phrase,
			"word_count":   candidate.WordCount,
			"hyphen_count": candidate.HyphenCount,
		},
	)
	if err != nil {
		// Phrases are unique; re-adding one is not an error.
		if mysqlErr, ok := err.(*mysql.MySQLError); ok && mysqlErr.Number == 1062 {
			return nil
		}
		return err
	}
	return nil
}

func (s *StorageRdbImpl) GetCandidateByPhrase(phrase string) (Candidate, error) {
	var candidate Candidate
	if err := s.DB.Get(&candidate, `select * from candidates where phrase = ?`, phrase); err != nil {
		if err != sql.ErrNoRows {
			return Candidate{}, err
		}
		return Candidate{}, nil
	}
	return candidate, nil
}

func (s *StorageRdbImpl) GetCandidatesByPhrases(phrases []string) ([]Candidate, error) {
	if len(phrases) == 0 {
		return []Candidate{}, nil
	}

	query, args, err := sqlx.In(`select * from candidates where phrase in (?) order by field (phrase, ?)`, phrases, phrases)
	if err != nil {
		return nil, err
	}

	var candidates []Candidate
	if err := s.DB.Select(&candidates, query, args...); err != nil {
		return nil, err
	}
	return candidates, nil
}

func (s *StorageRdbImpl) GetTopCandidates(limit int) ([]CandidateFrequency, error) {
	var top []CandidateFrequency
	err := s.DB.Select(&top,
		`select
			candidates.phrase,
			occurrences.frequency
		from
			occurrences
			join candidates on candidates.id = occurrences.candidate_id
		order by
			occurrences.frequency desc
		limit ?`, limit)
	if err != nil {
		return nil, err
	}
	return top, nil
}

func (s *StorageRdbImpl) GetOccurrenceIndexByCandidateIDs(ids []CandidateID) (OccurrenceIndex, error) {
	if len(ids) == 0 {
		return OccurrenceIndex{}, nil
	}
	var encoded []EncodedOccurrenceList

	query, args, err := sqlx.In(
		`select
			candidate_id,
			occurrences
		from
			occurrences
		where
			candidate_id in (?)`, ids)
	if err != nil {
		return nil, err
	}
	if err = s.DB.Select(&encoded, query, args...); err != nil {
		return nil, err
	}
	return decode(encoded)
}

func (s *StorageRdbImpl) UpsertOccurrenceIndex(index OccurrenceIndex) error {
	encoded, err := encode(index)
	if err != nil {
		return err
	}

	for _, v := range encoded {
		_, err := s.DB.NamedExec(
			`insert into occurrences (candidate_id, occurrences, frequency)
			values (:candidate_id, :occurrences, :frequency)
			on duplicate key update occurrences = :occurrences, frequency = :frequency`, v)
		if err != nil {
			return err
		}
	}
	return nil
}

type EncodedOccurrenceList struct {
	CandidateID CandidateID `db:"candidate_id"`
	Occurrences []byte      `db:"occurrences"` // gob of the delta-encoded list
	Frequency   int         `db:"frequency"`
}

func NewEncodedOccurrenceList(id CandidateID, occurrences []byte, frequency int) EncodedOccurrenceList {
	return EncodedOccurrenceList{
		CandidateID: id,
		Occurrences: occurrences,
		Frequency:   frequency,
	}
}

func encode(index OccurrenceIndex) ([]EncodedOccurrenceList, error) {
	encoded := make([]EncodedOccurrenceList, 0, len(index))
	for id, list := range index {
		frequency := list.Frequency()

		// Delta-encode the document IDs so gob serializes small integers.
		var o *Occurrences = list.Occurrences
		var beforeDocumentID DocumentID = 0
		for o != nil {
			o.DocumentID -= beforeDocumentID
			beforeDocumentID = o.DocumentID + beforeDocumentID
			o = o.Next
		}

		buf := bytes.NewBuffer(nil)
		if err := gob.NewEncoder(buf).Encode(list.Occurrences); err != nil {
			return nil, err
		}
		encoded = append(encoded, NewEncodedOccurrenceList(id, buf.Bytes(), frequency))
	}
	return encoded, nil
}

func decode(encoded []EncodedOccurrenceList) (OccurrenceIndex, error) {
	index := make(OccurrenceIndex, len(encoded))
	for _, e := range encoded {
		o := &Occurrences{}
		buf := bytes.NewBuffer(e.Occurrences)
		if err := gob.NewDecoder(buf).Decode(o); err != nil {
			return nil, err
		}
		list := NewOccurrenceList(o)

		// Undo the delta encoding.
		var c *Occurrences = list.Occurrences
		var beforeDocumentID DocumentID = 0
		for c != nil {
			c.DocumentID += beforeDocumentID
			beforeDocumentID = c.DocumentID
			c = c.Next
		}
		index[e.CandidateID] = list
	}
	return index, nil
}
