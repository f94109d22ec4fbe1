package hebtok

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	raw := `db:
  user: root
  password: secret
  addr: 127.0.0.1
  port: "3306"
  db: hebtok
policy:
  max_char_repetition: 3
  max_mwe_hyphens: 2
  allow_number_references: true
`
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.DB.DB != "hebtok" {
		t.Errorf("DB.DB = %v, want hebtok", config.DB.DB)
	}

	tokenizer, err := NewTokenizer(config.Policy.TokenizerOptions()...)
	if err != nil {
		t.Fatal(err)
	}
	if got := tokenizer.policy.maxCharRepetition; got != 3 {
		t.Errorf("maxCharRepetition = %v, want 3", got)
	}
	if got := tokenizer.policy.maxMweHyphens; got != 2 {
		t.Errorf("maxMweHyphens = %v, want 2", got)
	}
	if !tokenizer.policy.allowNumberRefs {
		t.Error("allowNumberRefs = false, want true")
	}
	// untouched fields keep their defaults
	if got := tokenizer.policy.maxOneTwoCharWordLen; got != DefaultMaxOneTwoCharWordLen {
		t.Errorf("maxOneTwoCharWordLen = %v, want %v", got, DefaultMaxOneTwoCharWordLen)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("LoadConfig() error = nil, want a read error")
	}
}
