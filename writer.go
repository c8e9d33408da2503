package wikitext

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// MinArticleTokens is the acceptance threshold: articles below it are
// dropped from every output, and never charged to any split's budget.
const MinArticleTokens = 100

// NoBudget removes the token bound from a write, consuming the cursor
// to exhaustion.
const NoBudget = -1

// SplitResult reports what one write pass produced.
type SplitResult struct {
	Documents int
	Tokens    int
}

// tokenizedArticle is the transient per-article form: one tokenized
// line per source paragraph, plus the token accounting derived from
// them.
type tokenizedArticle struct {
	title      string
	paragraphs []string
	tokenCount int
}

// CorpusWriter assembles token-budgeted wikitext splits by consuming a
// shared article cursor. The same tokenizer instance serves every pass;
// Cache, when set, reuses tokenization done by a prior scan pass.
type CorpusWriter struct {
	Tokenizer Tokenizer
	Cache     *TokenCache
	MinTokens int
	Log       *zap.SugaredLogger
}

func NewCorpusWriter(tok Tokenizer, log *zap.SugaredLogger) *CorpusWriter {
	return &CorpusWriter{
		Tokenizer: tok,
		MinTokens: MinArticleTokens,
		Log:       log,
	}
}

// tokenize produces the article's tokenized paragraphs and token
// count. Per paragraph, the count is the number of non-empty
// whitespace-delimited tokens plus one for the newline reintroduced on
// write; the article count is the sum over paragraphs.
func (cw *CorpusWriter) tokenize(article *Article) (*tokenizedArticle, error) {
	if cw.Cache != nil {
		if cached, ok := cw.Cache.get(article.Key); ok {
			return cached, nil
		}
	}
	paragraphs := strings.Split(article.Text, "\n")
	tokenized := &tokenizedArticle{
		title:      article.Title,
		paragraphs: make([]string, 0, len(paragraphs)),
	}
	for _, paragraph := range paragraphs {
		joined, err := cw.Tokenizer.TokenizeJoined(
			strings.TrimSpace(paragraph))
		if err != nil {
			return nil, err
		}
		tokenized.paragraphs = append(tokenized.paragraphs, joined)
		tokenized.tokenCount += countTokens(joined) + 1
	}
	if cw.Cache != nil {
		cw.Cache.add(article.Key, tokenized)
	}
	return tokenized, nil
}

// countTokens counts non-empty whitespace-delimited tokens in an
// already tokenized line.
func countTokens(line string) int {
	return len(strings.Fields(line))
}

// WriteSplit
// Consumes articles from the shared cursor, writing each accepted one
// as a `= title =` header followed by one tokenized paragraph per
// line, until the split's accumulated tokens exceed the budget or the
// cursor is exhausted. Each accepted article charges its token count
// plus one separator token. Articles under MinTokens are discarded
// without consuming budget. The cursor advances irreversibly, so three
// sequential calls partition one pass over the corpus into three
// disjoint, ordered segments.
func (cw *CorpusWriter) WriteSplit(outPath string, next ArticlesIterator,
	budget int) (SplitResult, error) {
	var result SplitResult
	outFile, err := os.OpenFile(outPath,
		os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return result, err
	}
	defer outFile.Close()
	writer := bufio.NewWriter(outFile)

	for {
		article := next()
		if article == nil {
			break
		}
		tokenized, tokErr := cw.tokenize(article)
		if tokErr != nil {
			return result, tokErr
		}
		if tokenized.tokenCount < cw.MinTokens {
			continue
		}
		if _, writeErr := fmt.Fprintf(writer, "= %s =\n",
			strings.TrimSpace(tokenized.title)); writeErr != nil {
			return result, writeErr
		}
		for _, paragraph := range tokenized.paragraphs {
			if _, writeErr := writer.WriteString(
				paragraph + "\n"); writeErr != nil {
				return result, writeErr
			}
		}
		result.Documents += 1
		result.Tokens += tokenized.tokenCount + 1
		if budget != NoBudget && result.Tokens > budget {
			break
		}
	}

	if flushErr := writer.Flush(); flushErr != nil {
		return result, flushErr
	}
	cw.Log.Infof("%s: %s documents, %s tokens", outPath,
		humanize.Comma(int64(result.Documents)),
		humanize.Comma(int64(result.Tokens)))
	return result, nil
}
