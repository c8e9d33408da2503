// Package main is the entry point for the create_wikitext CLI, which
// builds token-budgeted WikiText-style corpora from WikiExtractor
// article dumps.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create_wikitext",
		Short: "Build token-budgeted text corpora from article dumps",
		Long: `create_wikitext streams articles out of a WikiExtractor document
tree, tokenizes them, drops articles under 100 tokens, and partitions
the remainder into contiguous train/valid/test splits on a fixed
80/10/10 token budget.`,
	}

	cmd.AddCommand(buildCmd())
	cmd.AddCommand(exportCSVCmd())
	cmd.AddCommand(vocabCmd())

	return cmd
}

func newLogger() *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger.Sugar()
}
