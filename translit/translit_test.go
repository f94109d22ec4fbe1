package translit

import (
	"fmt"
	"testing"
)

func TestUnidecode_Transliterate(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{text: "plain ascii, 123!", want: "plain ascii, 123!"},
		{text: "café", want: "cafe"},
		{text: "naïve résumé", want: "naive resume"},
		{text: "", want: ""},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("text = %v, want = %v", tt.text, tt.want), func(t *testing.T) {
			u := NewUnidecode()
			if got := u.Transliterate(tt.text); got != tt.want {
				t.Errorf("Unidecode.Transliterate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnidecode_PreservesUnmapped(t *testing.T) {
	u := NewUnidecode()
	// An emoji has no ASCII equivalent and must survive untouched.
	if got, want := u.Transliterate("ok 🙂"), "ok 🙂"; got != want {
		t.Errorf("Unidecode.Transliterate() = %v, want %v", got, want)
	}
}
