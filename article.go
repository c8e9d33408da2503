package wikitext

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/yargevad/filepathx"
	"go.uber.org/zap"
)

const (
	ARTICLE_CHAN_SZ = 64
	LINEBUF_SZ      = 64 * 1024
	LINEBUF_MAX     = 16 * 1024 * 1024
)

// Article is one source record: a title and a multi-paragraph body with
// paragraphs separated by newlines. The key identifies the record's
// position in the source tree and is stable across passes.
type Article struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Key   string `json:"-"`
}

// ArticlesIterator
// A single-pass cursor over the article stream. Each call yields the
// next article, or nil once the source is exhausted. The cursor is not
// restartable; sequential consumers partition the stream by sharing it.
type ArticlesIterator func() *Article

// GlobRecordFiles
// Given a document-tree root, finds all record files one shard
// directory down, returning their paths in lexicographic order so that
// enumeration is deterministic across runs.
func GlobRecordFiles(rootDir string) ([]string, error) {
	matches, err := filepathx.Glob(rootDir + "/*/*")
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		stat, statErr := os.Stat(match)
		if statErr != nil {
			return nil, statErr
		}
		if !stat.IsDir() {
			paths = append(paths, match)
		}
	}
	if len(paths) == 0 {
		return nil, errors.New(fmt.Sprintf(
			"%s does not contain any record files", rootDir))
	}
	sort.Strings(paths)
	return paths, nil
}

// isStub reports whether a record is a placeholder whose body carries
// no content beyond its own title.
func isStub(article *Article) bool {
	return strings.TrimSpace(article.Text) == strings.TrimSpace(article.Title)
}

// ReadArticles
// Consumes a document-tree root and produces an ArticlesIterator over
// every parseable, non-stub record in the tree. Files are read ahead on
// a goroutine while the prior articles are being consumed; unparseable
// lines are skipped with a warning, stub records are dropped silently.
func ReadArticles(rootDir string, log *zap.SugaredLogger) (
	ArticlesIterator, error) {
	paths, err := GlobRecordFiles(rootDir)
	if err != nil {
		return nil, err
	}

	articles := make(chan *Article, ARTICLE_CHAN_SZ)
	go func() {
		for _, path := range paths {
			fileReader, openErr := os.Open(path)
			if openErr != nil {
				log.Fatalf("Error opening `%s`: %v", path, openErr)
			}
			scanner := bufio.NewScanner(fileReader)
			scanner.Buffer(make([]byte, 0, LINEBUF_SZ), LINEBUF_MAX)
			lineNo := 0
			for scanner.Scan() {
				lineNo += 1
				line := scanner.Bytes()
				if len(line) == 0 {
					continue
				}
				article := &Article{}
				if jsonErr := json.Unmarshal(line, article); jsonErr != nil {
					log.Warnf("Skipping malformed record %s:%d: %v",
						path, lineNo, jsonErr)
					continue
				}
				if isStub(article) {
					continue
				}
				article.Key = fmt.Sprintf("%s:%d", path, lineNo)
				articles <- article
			}
			if scanErr := scanner.Err(); scanErr != nil {
				log.Fatalf("Error reading `%s`: %v", path, scanErr)
			}
			if closeErr := fileReader.Close(); closeErr != nil {
				log.Fatalf("Error closing `%s`: %v", path, closeErr)
			}
		}
		close(articles)
	}()

	return func() *Article {
		article, ok := <-articles
		if !ok {
			return nil
		}
		return article
	}, nil
}
