package wikitext

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWriteCSV(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.csv")

	long := makeArticle("Kept", 149)
	long.Text = long.Text + "\n second paragraph "
	articles := []*Article{
		long,
		makeArticle("Dropped", 10),
	}

	result, err := WriteCSV(outPath, sliceIterator(articles), NoBudget,
		zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Documents)
	// 149 + 2 fields plus one per paragraph, plus the separator.
	assert.Equal(t, 154, result.Tokens)

	outFile, err := os.Open(outPath)
	require.NoError(t, err)
	defer outFile.Close()
	records, err := csv.NewReader(outFile).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Len(t, records[0], 1)
	// Paragraphs are stripped and rejoined with a literal newline
	// inside the single quoted field.
	parts := strings.Split(records[0][0], "\n")
	require.Len(t, parts, 2)
	assert.Equal(t, "second paragraph", parts[1])
}

func TestWriteCSVBudget(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.csv")
	cursor := sliceIterator([]*Article{
		makeArticle("A", 149),
		makeArticle("B", 149),
		makeArticle("C", 149),
	})

	result, err := WriteCSV(outPath, cursor, 200, zap.NewNop().Sugar())
	require.NoError(t, err)
	// 151 <= 200 continues, 302 > 200 stops after the second article.
	assert.Equal(t, 2, result.Documents)
	assert.Equal(t, 302, result.Tokens)
	assert.NotNil(t, cursor())
}
