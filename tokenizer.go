package wikitext

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jdkato/prose/v2"
	"github.com/pkoukk/tiktoken-go"
	"github.com/vikesh-raj/go-sentencepiece-encoder/sentencepiece"
	"golang.org/x/text/language"
)

// Tokenizer is the capability that turns raw paragraph text into
// tokens. Implementations are constructed once per language or model
// and are stateless per call, so a single instance is shared by
// reference across the scanner and all three writers.
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
	TokenizeJoined(text string) (string, error)
	Name() string
}

// NewTokenizer
// Creates a tokenizer backend by identifier. `lang` is an ISO language
// code and applies to the word backend; `modelPath` is a sentencepiece
// model file; `encoding` is a tiktoken encoding name.
func NewTokenizer(kind, lang, modelPath, encoding string) (Tokenizer, error) {
	switch kind {
	case "word":
		return NewWordTokenizer(lang)
	case "sentencepiece":
		return NewSentencepieceTokenizer(modelPath)
	case "tiktoken":
		return NewTiktokenTokenizer(encoding), nil
	case "whitespace":
		return WhitespaceTokenizer{}, nil
	}
	return nil, errors.New(fmt.Sprintf(
		"unknown tokenizer `%s` [word, sentencepiece, tiktoken, "+
			"whitespace]", kind))
}

func joinTokens(tokens []string, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return strings.Join(tokens, " "), nil
}

// WordTokenizer performs Moses-style word-level tokenization,
// splitting punctuation from words.
type WordTokenizer struct {
	tag language.Tag
}

func NewWordTokenizer(lang string) (*WordTokenizer, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("unsupported language code `%s`: %w",
			lang, err)
	}
	return &WordTokenizer{tag: tag}, nil
}

func (wt *WordTokenizer) Tokenize(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithSegmentation(false))
	if err != nil {
		return nil, err
	}
	docTokens := doc.Tokens()
	tokens := make([]string, 0, len(docTokens))
	for _, token := range docTokens {
		tokens = append(tokens, token.Text)
	}
	return tokens, nil
}

func (wt *WordTokenizer) TokenizeJoined(text string) (string, error) {
	return joinTokens(wt.Tokenize(text))
}

func (wt *WordTokenizer) Name() string {
	return fmt.Sprintf("word[%s]", wt.tag)
}

// SentencepieceTokenizer tokenizes with a trained sentencepiece model.
type SentencepieceTokenizer struct {
	sp        sentencepiece.Sentencepiece
	modelPath string
}

func NewSentencepieceTokenizer(modelPath string) (
	*SentencepieceTokenizer, error) {
	if modelPath == "" {
		return nil, errors.New(
			"sentencepiece tokenizer requires a model file")
	}
	sp, err := sentencepiece.NewSentencepieceFromFile(modelPath, false)
	if err != nil {
		return nil, fmt.Errorf("loading sentencepiece model `%s`: %w",
			modelPath, err)
	}
	return &SentencepieceTokenizer{sp: sp, modelPath: modelPath}, nil
}

func (st *SentencepieceTokenizer) Tokenize(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	spTokens := st.sp.Tokenize(text)
	tokens := make([]string, 0, len(spTokens))
	for _, token := range spTokens {
		tokens = append(tokens, token.Text)
	}
	return tokens, nil
}

func (st *SentencepieceTokenizer) TokenizeJoined(text string) (string, error) {
	return joinTokens(st.Tokenize(text))
}

func (st *SentencepieceTokenizer) Name() string {
	return fmt.Sprintf("sentencepiece[%s]", st.modelPath)
}

// TiktokenTokenizer tokenizes with an OpenAI BPE encoding. The encoding
// is initialized lazily since it may fetch its ranks file on first use.
type TiktokenTokenizer struct {
	encoding string
	enc      *tiktoken.Tiktoken
	once     sync.Once
	initErr  error
}

func NewTiktokenTokenizer(encoding string) *TiktokenTokenizer {
	if encoding == "" {
		encoding = "cl100k_base"
	}
	return &TiktokenTokenizer{encoding: encoding}
}

func (tt *TiktokenTokenizer) init() error {
	tt.once.Do(func() {
		enc, err := tiktoken.GetEncoding(tt.encoding)
		if err != nil {
			tt.initErr = fmt.Errorf("init tiktoken encoding %s: %w",
				tt.encoding, err)
			return
		}
		tt.enc = enc
	})
	return tt.initErr
}

func (tt *TiktokenTokenizer) Tokenize(text string) ([]string, error) {
	if err := tt.init(); err != nil {
		return nil, err
	}
	ids := tt.enc.Encode(text, nil, nil)
	tokens := make([]string, 0, len(ids))
	for _, id := range ids {
		tokens = append(tokens, tt.enc.Decode([]int{id}))
	}
	return tokens, nil
}

func (tt *TiktokenTokenizer) TokenizeJoined(text string) (string, error) {
	return joinTokens(tt.Tokenize(text))
}

func (tt *TiktokenTokenizer) Name() string {
	return fmt.Sprintf("tiktoken[%s]", tt.encoding)
}

// WhitespaceTokenizer passes pre-tokenized text through, splitting on
// whitespace only.
type WhitespaceTokenizer struct{}

func (WhitespaceTokenizer) Tokenize(text string) ([]string, error) {
	return strings.Fields(text), nil
}

func (wt WhitespaceTokenizer) TokenizeJoined(text string) (string, error) {
	return joinTokens(wt.Tokenize(text))
}

func (WhitespaceTokenizer) Name() string {
	return "whitespace"
}
