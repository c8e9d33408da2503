package wikitext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhitespaceTokenizer(t *testing.T) {
	tok := WhitespaceTokenizer{}
	tokens, err := tok.Tokenize("  foo bar\tbaz ")
	assert.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar", "baz"}, tokens)

	joined, err := tok.TokenizeJoined("foo  bar")
	assert.NoError(t, err)
	assert.Equal(t, "foo bar", joined)
}

func TestWordTokenizer(t *testing.T) {
	tok, err := NewWordTokenizer("en")
	require.NoError(t, err)
	tokens, err := tok.Tokenize("Hello, world!")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello", ",", "world", "!"}, tokens)

	tokens, err = tok.Tokenize("   ")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestWordTokenizerBadLanguage(t *testing.T) {
	_, err := NewWordTokenizer("not a language!")
	assert.Error(t, err)
}

func TestNewTokenizer(t *testing.T) {
	tok, err := NewTokenizer("whitespace", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "whitespace", tok.Name())

	tok, err = NewTokenizer("word", "de", "", "")
	require.NoError(t, err)
	assert.Equal(t, "word[de]", tok.Name())

	_, err = NewTokenizer("bogus", "en", "", "")
	assert.Error(t, err)

	_, err = NewTokenizer("sentencepiece", "", "", "")
	assert.Error(t, err)
}
