package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/hebtext/hebtok"
)

var (
	configPath string
	strictName string
	ngramSize  int
	asStrings  bool
	flat       bool
	topLimit   int
)

func main() {
	root := &cobra.Command{
		Use:   "hebtok",
		Short: "Hebrew word and MWE candidate extraction for dirty texts",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	wordsCmd := &cobra.Command{
		Use:   "words [text]",
		Short: "Print all valid Hebrew words in the input",
		RunE:  runWords,
	}

	mweCmd := &cobra.Command{
		Use:   "mwe [text]",
		Short: "Print all MWE candidates in the input",
		RunE:  runMwe,
	}
	mweCmd.Flags().StringVar(&strictName, "strict", "", "strict scope: clause, sentence or line")

	ngramsCmd := &cobra.Command{
		Use:   "ngrams [text]",
		Short: "Print contiguous word windows of every MWE candidate",
		RunE:  runNgrams,
	}
	ngramsCmd.Flags().StringVar(&strictName, "strict", "", "strict scope: clause, sentence or line")
	ngramsCmd.Flags().IntVar(&ngramSize, "n", 2, "window size")
	ngramsCmd.Flags().BoolVar(&asStrings, "strings", false, "join each window into one string")
	ngramsCmd.Flags().BoolVar(&flat, "flat", false, "flatten windows across MWEs")

	sanitizeCmd := &cobra.Command{
		Use:   "sanitize [text]",
		Short: "Print the sanitized input",
		RunE:  runSanitize,
	}

	badfinalCmd := &cobra.Command{
		Use:   "badfinal [text]",
		Short: "Print final-form letters followed by non-final letters",
		RunE:  runBadFinal,
	}

	collectCmd := &cobra.Command{
		Use:   "collect file...",
		Short: "Collect word and MWE candidates from corpus files into the database",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCollect,
	}

	topCmd := &cobra.Command{
		Use:   "top",
		Short: "Print the most frequent collected candidates",
		RunE:  runTop,
	}
	topCmd.Flags().IntVar(&topLimit, "limit", 20, "number of candidates to print")

	docsCmd := &cobra.Command{
		Use:   "docs [id...]",
		Short: "Print stored corpus documents, all of them or by ID",
		RunE:  runDocs,
	}

	lookupCmd := &cobra.Command{
		Use:   "lookup phrase...",
		Short: "Print stored candidates by phrase",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runLookup,
	}

	root.AddCommand(wordsCmd, mweCmd, ngramsCmd, sanitizeCmd, badfinalCmd, collectCmd, topCmd, docsCmd, lookupCmd)
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func newTokenizer() (*hebtok.Tokenizer, error) {
	if configPath == "" {
		return hebtok.NewTokenizer()
	}
	config, err := hebtok.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return hebtok.NewTokenizer(config.Policy.TokenizerOptions()...)
}

func parseScope(name string) (hebtok.Scope, error) {
	switch name {
	case "":
		return hebtok.ScopeNone, nil
	case "clause":
		return hebtok.ScopeClause, nil
	case "sentence":
		return hebtok.ScopeSentence, nil
	case "line":
		return hebtok.ScopeLine, nil
	}
	return hebtok.ScopeNone, fmt.Errorf("unknown strict scope: %s", name)
}

func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func runWords(cmd *cobra.Command, args []string) error {
	tokenizer, err := newTokenizer()
	if err != nil {
		return err
	}
	text, err := readInput(args)
	if err != nil {
		return err
	}
	terms := []string{}
	for _, word := range tokenizer.GetWords(text) {
		terms = append(terms, word.Term)
	}
	pp.Println(terms)
	return nil
}

func runMwe(cmd *cobra.Command, args []string) error {
	tokenizer, err := newTokenizer()
	if err != nil {
		return err
	}
	strict, err := parseScope(strictName)
	if err != nil {
		return err
	}
	text, err := readInput(args)
	if err != nil {
		return err
	}
	mwes, err := tokenizer.GetMwe(text, strict)
	if err != nil {
		return err
	}
	terms := []string{}
	for _, mwe := range mwes {
		terms = append(terms, mwe.Term)
	}
	pp.Println(terms)
	return nil
}

func runNgrams(cmd *cobra.Command, args []string) error {
	tokenizer, err := newTokenizer()
	if err != nil {
		return err
	}
	strict, err := parseScope(strictName)
	if err != nil {
		return err
	}
	text, err := readInput(args)
	if err != nil {
		return err
	}
	switch {
	case asStrings && flat:
		grams, err := tokenizer.GetMweNgramStringsFlat(text, ngramSize, strict)
		if err != nil {
			return err
		}
		pp.Println(grams)
	case asStrings:
		grams, err := tokenizer.GetMweNgramStrings(text, ngramSize, strict)
		if err != nil {
			return err
		}
		pp.Println(grams)
	case flat:
		grams, err := tokenizer.GetMweNgramsFlat(text, ngramSize, strict)
		if err != nil {
			return err
		}
		pp.Println(grams)
	default:
		grams, err := tokenizer.GetMweNgrams(text, ngramSize, strict)
		if err != nil {
			return err
		}
		pp.Println(grams)
	}
	return nil
}

func runSanitize(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	fmt.Println(hebtok.Sanitize(text))
	return nil
}

func runBadFinal(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	pp.Println(hebtok.FindBadFinals(text, hebtok.DefaultBadFinalExceptions))
	return nil
}

func runCollect(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		return fmt.Errorf("collect requires --config")
	}
	config, err := hebtok.LoadConfig(configPath)
	if err != nil {
		return err
	}
	tokenizer, err := hebtok.NewTokenizer(config.Policy.TokenizerOptions()...)
	if err != nil {
		return err
	}
	db, err := hebtok.NewDBClient(&config.DB)
	if err != nil {
		return err
	}
	collector := hebtok.NewCollector(hebtok.NewStorageRdbImpl(db), tokenizer)

	for _, path := range args {
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := collector.AddDocument(hebtok.NewDocument(string(raw), 0)); err != nil {
			return err
		}
	}
	return nil
}

func runTop(cmd *cobra.Command, args []string) error {
	storage, err := newStorage()
	if err != nil {
		return err
	}
	top, err := storage.GetTopCandidates(topLimit)
	if err != nil {
		return err
	}
	pp.Println(top)
	return nil
}

func runDocs(cmd *cobra.Command, args []string) error {
	storage, err := newStorage()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		count, err := storage.CountDocuments()
		if err != nil {
			return err
		}
		docs, err := storage.GetAllDocuments()
		if err != nil {
			return err
		}
		fmt.Printf("%d documents\n", count)
		pp.Println(docs)
		return nil
	}

	ids := make([]hebtok.DocumentID, len(args))
	for i, arg := range args {
		id, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid document id %q: %w", arg, err)
		}
		ids[i] = hebtok.DocumentID(id)
	}
	docs, err := storage.GetDocuments(ids)
	if err != nil {
		return err
	}
	pp.Println(docs)
	return nil
}

func runLookup(cmd *cobra.Command, args []string) error {
	storage, err := newStorage()
	if err != nil {
		return err
	}
	candidates, err := storage.GetCandidatesByPhrases(args)
	if err != nil {
		return err
	}
	pp.Println(candidates)
	return nil
}

func newStorage() (*hebtok.StorageRdbImpl, error) {
	if configPath == "" {
		return nil, fmt.Errorf("this command requires --config")
	}
	config, err := hebtok.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	db, err := hebtok.NewDBClient(&config.DB)
	if err != nil {
		return nil, err
	}
	return hebtok.NewStorageRdbImpl(db), nil
}
