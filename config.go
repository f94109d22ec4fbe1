package hebtok

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration used by the collection CLI: database
// connection plus tokenizer policy overrides. Absent policy fields keep
// their defaults.
type Config struct {
	DB     DBConfig     `yaml:"db"`
	Policy PolicyConfig `yaml:"policy"`
}

type PolicyConfig struct {
	MaxCharRepetition          *int  `yaml:"max_char_repetition"`
	MaxEndOfWordCharRepetition *int  `yaml:"max_end_of_word_char_repetition"`
	AllowTripleMem             *bool `yaml:"allow_triple_mem"`
	MaxOneTwoCharWordLen       *int  `yaml:"max_one_two_char_word_len"`
	MaxMweHyphens              *int  `yaml:"max_mwe_hyphens"`
	UnlimitedMweHyphens        bool  `yaml:"unlimited_mwe_hyphens"`
	AllowLineOpeningHyphens    *bool `yaml:"allow_line_opening_hyphens"`
	AllowNumberReferences      bool  `yaml:"allow_number_references"`
	LeaveDiacritics            bool  `yaml:"leave_diacritics"`
}

func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var config Config
	if err := yaml.Unmarshal(raw, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// TokenizerOptions translates the policy overrides into tokenizer options.
func (c PolicyConfig) TokenizerOptions() []TokenizerOption {
	var options []TokenizerOption
	if c.MaxCharRepetition != nil {
		options = append(options, WithMaxCharRepetition(*c.MaxCharRepetition))
	}
	if c.MaxEndOfWordCharRepetition != nil {
		options = append(options, WithMaxEndOfWordCharRepetition(*c.MaxEndOfWordCharRepetition))
	}
	if c.AllowTripleMem != nil && !*c.AllowTripleMem {
		options = append(options, WithoutTripleMem())
	}
	if c.MaxOneTwoCharWordLen != nil {
		options = append(options, WithMaxOneTwoCharWordLen(*c.MaxOneTwoCharWordLen))
	}
	if c.MaxMweHyphens != nil {
		options = append(options, WithMaxMweHyphens(*c.MaxMweHyphens))
	}
	if c.UnlimitedMweHyphens {
		options = append(options, WithUnlimitedMweHyphens())
	}
	if c.AllowLineOpeningHyphens != nil && !*c.AllowLineOpeningHyphens {
		options = append(options, WithoutLineOpeningHyphens())
	}
	if c.AllowNumberReferences {
		options = append(options, WithNumberReferences())
	}
	if c.LeaveDiacritics {
		options = append(options, WithLeaveDiacritics())
	}
	return options
}
