package hebtok

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewTokenizer(t *testing.T) {
	cases := []struct {
		opts    []TokenizerOption
		wantErr bool
	}{
		{opts: nil, wantErr: false},
		{opts: []TokenizerOption{WithMaxCharRepetition(3)}, wantErr: false},
		// the end-of-word cap cannot be looser than the general cap
		{opts: []TokenizerOption{WithMaxEndOfWordCharRepetition(3)}, wantErr: true},
		{opts: []TokenizerOption{WithMaxCharRepetition(0), WithMaxEndOfWordCharRepetition(3)}, wantErr: false},
	}
	for i, tt := range cases {
		t.Run(fmt.Sprintf("case = %v, wantErr = %v", i, tt.wantErr), func(t *testing.T) {
			_, err := NewTokenizer(tt.opts...)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewTokenizer() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTokenizer_Verse(t *testing.T) {
	tokenizer, err := NewTokenizer()
	if err != nil {
		t.Fatal(err)
	}
	text := "בראשית ברא אלהים את השמים"

	var words []string
	for _, word := range tokenizer.GetWords(text) {
		words = append(words, word.Term)
	}
	wantWords := []string{"בראשית", "ברא", "אלהים", "את", "השמים"}
	if diff := cmp.Diff(wantWords, words); diff != "" {
		t.Errorf("Tokenizer.GetWords() mismatch (-want +got):\n%s", diff)
	}

	mwes, err := tokenizer.GetMwe(text, ScopeNone)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{text}, mweTerms(mwes)); diff != "" {
		t.Errorf("Tokenizer.GetMwe() mismatch (-want +got):\n%s", diff)
	}

	flat, err := tokenizer.GetMweWordsFlat(text, ScopeNone)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(wantWords, flat); diff != "" {
		t.Errorf("Tokenizer.GetMweWordsFlat() mismatch (-want +got):\n%s", diff)
	}

	bigrams, err := tokenizer.GetMweBigramStrings(text, ScopeNone)
	if err != nil {
		t.Fatal(err)
	}
	wantBigrams := [][]string{{
		"בראשית ברא",
		"ברא אלהים",
		"אלהים את",
		"את השמים",
	}}
	if diff := cmp.Diff(wantBigrams, bigrams); diff != "" {
		t.Errorf("Tokenizer.GetMweBigramStrings() mismatch (-want +got):\n%s", diff)
	}

	trigrams, err := tokenizer.GetMweNgramsFlat(text, 3, ScopeNone)
	if err != nil {
		t.Fatal(err)
	}
	wantTrigrams := [][]string{
		{"בראשית", "ברא", "אלהים"},
		{"ברא", "אלהים", "את"},
		{"אלהים", "את", "השמים"},
	}
	if diff := cmp.Diff(wantTrigrams, trigrams); diff != "" {
		t.Errorf("Tokenizer.GetMweNgramsFlat() mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizer_GetMweWords(t *testing.T) {
	tokenizer, err := NewTokenizer()
	if err != nil {
		t.Fatal(err)
	}
	got, err := tokenizer.GetMweWords("תל-אביב היא עיר", ScopeNone)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"תל", "אביב"}, {"היא", "עיר"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenizer.GetMweWords() mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizer_Diacritics(t *testing.T) {
	pointed := "שָׁלוֹם טוֹב"

	tokenizer, err := NewTokenizer()
	if err != nil {
		t.Fatal(err)
	}
	if !tokenizer.IsMwe(pointed) {
		t.Error("Tokenizer.IsMwe() = false on pointed text, want true after diacritic removal")
	}

	leaving, err := NewTokenizer(WithLeaveDiacritics())
	if err != nil {
		t.Fatal(err)
	}
	if leaving.IsMwe(pointed) {
		t.Error("Tokenizer.IsMwe() = true with diacritics left in place, want false")
	}

	raw, err := NewTokenizer(WithoutSanitize())
	if err != nil {
		t.Fatal(err)
	}
	if raw.IsMwe(pointed) {
		t.Error("Tokenizer.IsMwe() = true without sanitization, want false")
	}
	if !raw.IsMwe("שלום טוב") {
		t.Error("Tokenizer.IsMwe() = false on clean text without sanitization, want true")
	}
}
