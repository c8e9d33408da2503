package wikitext

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

const CSV_REPORT_EVERY = 100000

// WriteCSV
// Untokenized export: applies the same paragraph accounting and
// acceptance filter as the wikitext writer, but writes each accepted
// article as a single CSV row whose only field is the stripped
// paragraphs rejoined with newlines. No header row; quoting is minimal
// (the embedded newlines force the field to be quoted). Progress is
// reported every 100,000 processed records.
func WriteCSV(outPath string, next ArticlesIterator, budget int,
	log *zap.SugaredLogger) (SplitResult, error) {
	var result SplitResult
	outFile, err := os.OpenFile(outPath,
		os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return result, err
	}
	defer outFile.Close()
	writer := csv.NewWriter(outFile)

	processed := 0
	for {
		article := next()
		if article == nil {
			break
		}
		processed += 1
		if processed%CSV_REPORT_EVERY == 0 {
			log.Infof("Processed %s documents. Total tokens: %s.",
				humanize.Comma(int64(processed)),
				humanize.Comma(int64(result.Tokens)))
		}

		paragraphs := strings.Split(article.Text, "\n")
		stripped := make([]string, 0, len(paragraphs))
		tokenCount := 0
		for _, paragraph := range paragraphs {
			paragraph = strings.TrimSpace(paragraph)
			stripped = append(stripped, paragraph)
			tokenCount += countTokens(paragraph) + 1
		}
		if tokenCount < MinArticleTokens {
			continue
		}
		if writeErr := writer.Write([]string{
			strings.Join(stripped, "\n")}); writeErr != nil {
			return result, writeErr
		}
		result.Documents += 1
		result.Tokens += tokenCount + 1
		if budget != NoBudget && result.Tokens > budget {
			break
		}
	}

	writer.Flush()
	if flushErr := writer.Error(); flushErr != nil {
		return result, flushErr
	}
	log.Infof("%s: %s documents, %s tokens", outPath,
		humanize.Comma(int64(result.Documents)),
		humanize.Comma(int64(result.Tokens)))
	return result, nil
}
