package wikitext

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeShard(t *testing.T, root, shard, name string, lines []string) {
	t.Helper()
	dir := filepath.Join(root, shard)
	require.NoError(t, os.MkdirAll(dir, 0755))
	content := ""
	for _, line := range lines {
		content += line + "\n"
	}
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, name), []byte(content), 0644))
}

func drainArticles(next ArticlesIterator) []*Article {
	collected := make([]*Article, 0)
	for {
		article := next()
		if article == nil {
			return collected
		}
		collected = append(collected, article)
	}
}

func TestReadArticlesOrderAndFiltering(t *testing.T) {
	root := t.TempDir()
	writeShard(t, root, "AB", "wiki_00", []string{
		`{"title": "Third", "text": "Third\nbody text"}`,
	})
	writeShard(t, root, "AA", "wiki_01", []string{
		`{"title": "Second", "text": "Second\nbody text"}`,
	})
	writeShard(t, root, "AA", "wiki_00", []string{
		`{"title": "First", "text": "First\nbody text"}`,
		`{"title": "Stub", "text": " Stub "}`,
		`{not json at all`,
		``,
	})

	next, err := ReadArticles(root, zap.NewNop().Sugar())
	require.NoError(t, err)
	articles := drainArticles(next)

	titles := make([]string, 0, len(articles))
	for _, article := range articles {
		titles = append(titles, article.Title)
	}
	// Lexicographic shard/file order; stub and malformed lines dropped.
	assert.Equal(t, []string{"First", "Second", "Third"}, titles)
	for _, article := range articles {
		assert.NotEmpty(t, article.Key)
	}
}

func TestReadArticlesSingleEnumeration(t *testing.T) {
	root := t.TempDir()
	writeShard(t, root, "AA", "wiki_00", []string{
		`{"title": "One", "text": "One\nbody"}`,
		`{"title": "Two", "text": "Two\nbody"}`,
	})

	next, err := ReadArticles(root, zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.Equal(t, "One", next().Title)
	assert.Equal(t, "Two", next().Title)
	assert.Nil(t, next())
	assert.Nil(t, next())
}

func TestReadArticlesEmptyTree(t *testing.T) {
	_, err := ReadArticles(t.TempDir(), zap.NewNop().Sugar())
	assert.Error(t, err)
}
