package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/corpustools/wikitext"
)

var splitNames = []string{"train", "valid", "test"}

func buildCmd() *cobra.Command {
	var (
		inputDir    string
		outputDir   string
		lang        string
		totalTokens int
		tokenizerId string
		modelPath   string
		encoding    string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build train/valid/test wikitext splits",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			defer log.Sync()

			if stat, err := os.Stat(inputDir); err != nil {
				return fmt.Errorf("input directory `%s`: %w", inputDir, err)
			} else if !stat.IsDir() {
				return fmt.Errorf("input `%s` is not a directory", inputDir)
			}
			outDir := filepath.Join(outputDir, lang)
			if err := os.MkdirAll(outDir, 0755); err != nil {
				return err
			}

			tok, err := wikitext.NewTokenizer(
				tokenizerId, lang, modelPath, encoding)
			if err != nil {
				return err
			}
			log.Infof("Tokenizer: %s", tok.Name())
			log.Infof("Input source: %s", inputDir)
			log.Infof("Output: %s", outDir)

			writer := wikitext.NewCorpusWriter(tok, log)

			total := totalTokens
			if total == wikitext.NoBudget {
				// No explicit budget: pre-pass over the whole corpus,
				// caching tokenization for the write passes.
				writer.Cache = wikitext.NewTokenCache()
				scanCursor, readErr := wikitext.ReadArticles(inputDir, log)
				if readErr != nil {
					return readErr
				}
				log.Infof("No --tokens given, scanning corpus for total")
				if total, err = writer.ScanTotalTokens(scanCursor); err != nil {
					return err
				}
				log.Infof("Corpus total: %s tokens",
					humanize.Comma(int64(total)))
			}

			train, valid, test, err := wikitext.PlanSplits(
				total, wikitext.DefaultSplitFraction)
			if err != nil {
				return err
			}
			log.Infof("Using splits - Train: %d, Valid: %d, Test: %d",
				train, valid, test)

			// One shared cursor across all three writes partitions the
			// stream without overlap or restart.
			cursor, err := wikitext.ReadArticles(inputDir, log)
			if err != nil {
				return err
			}
			budgets := []int{train, valid, test}
			paths := make([]string, len(splitNames))
			for idx, name := range splitNames {
				paths[idx] = filepath.Join(outDir,
					fmt.Sprintf("%s.wiki.%s.tokens", lang, name))
				if _, err = writer.WriteSplit(
					paths[idx], cursor, budgets[idx]); err != nil {
					return err
				}
			}

			for _, path := range paths {
				unique, countErr := wikitext.CountUnique(path)
				if countErr != nil {
					return countErr
				}
				log.Infof("Unique tokens %s - %s", path,
					humanize.Comma(int64(unique)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", "",
		"directory of WikiExtractor output (shard directories AA, AB, ...)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "",
		"output directory for the corpus splits")
	cmd.Flags().StringVarP(&lang, "lang", "l", "",
		"ISO code of the articles' language, e.g. en, fr, de")
	cmd.Flags().IntVarP(&totalTokens, "tokens", "t", wikitext.NoBudget,
		"total token budget across splits; omit to scan the corpus")
	cmd.Flags().StringVar(&tokenizerId, "tokenizer", "word",
		"tokenizer backend [word, sentencepiece, tiktoken, whitespace]")
	cmd.Flags().StringVar(&modelPath, "model", "",
		"sentencepiece model file (sentencepiece backend)")
	cmd.Flags().StringVar(&encoding, "encoding", "",
		"tiktoken encoding name (tiktoken backend)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("lang")

	return cmd
}
