package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/corpustools/wikitext"
)

func exportCSVCmd() *cobra.Command {
	var (
		inputDir    string
		outputFile  string
		totalTokens int
	)

	cmd := &cobra.Command{
		Use:   "export-csv",
		Short: "Export accepted articles to a single-column CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			defer log.Sync()

			if stat, err := os.Stat(inputDir); err != nil {
				return fmt.Errorf("input directory `%s`: %w", inputDir, err)
			} else if !stat.IsDir() {
				return fmt.Errorf("input `%s` is not a directory", inputDir)
			}

			cursor, err := wikitext.ReadArticles(inputDir, log)
			if err != nil {
				return err
			}
			log.Infof("Writing to %s", outputFile)
			result, err := wikitext.WriteCSV(
				outputFile, cursor, totalTokens, log)
			if err != nil {
				return err
			}
			log.Infof("Exported %s documents, %s tokens",
				humanize.Comma(int64(result.Documents)),
				humanize.Comma(int64(result.Tokens)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", "",
		"directory of WikiExtractor output (shard directories AA, AB, ...)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "",
		"output CSV file")
	cmd.Flags().IntVarP(&totalTokens, "tokens", "t", wikitext.NoBudget,
		"token budget for the export; omit for the whole corpus")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func vocabCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vocab <file>...",
		Short: "Count distinct whitespace-delimited tokens per file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				unique, err := wikitext.CountUnique(path)
				if err != nil {
					return err
				}
				fmt.Printf("Unique tokens %s - %s\n", path,
					humanize.Comma(int64(unique)))
			}
			return nil
		},
	}
}
