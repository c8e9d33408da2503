package wikitext

import (
	lru "github.com/hashicorp/golang-lru"
)

const TOKEN_CACHE_SZ = 32768

// TokenCache holds tokenized articles from the scan pass so the write
// pass does not tokenize the corpus a second time. It is bounded, so a
// miss simply re-tokenizes; acceptance decisions are identical either
// way because tokenization is deterministic.
type TokenCache struct {
	arc *lru.ARCCache
}

func NewTokenCache() *TokenCache {
	cache, _ := lru.NewARC(TOKEN_CACHE_SZ)
	return &TokenCache{arc: cache}
}

func (tc *TokenCache) add(key string, article *tokenizedArticle) {
	tc.arc.Add(key, article)
}

func (tc *TokenCache) get(key string) (*tokenizedArticle, bool) {
	if cached, ok := tc.arc.Get(key); ok {
		return cached.(*tokenizedArticle), true
	}
	return nil, false
}

// ScanTotalTokens
// Full pre-pass over the article stream that applies the same
// tokenization and the same acceptance filter as WriteSplit, but only
// accumulates the tokens each accepted article would charge against a
// budget. Used when the caller supplies no explicit total budget.
func (cw *CorpusWriter) ScanTotalTokens(next ArticlesIterator) (int, error) {
	total := 0
	for {
		article := next()
		if article == nil {
			break
		}
		tokenized, err := cw.tokenize(article)
		if err != nil {
			return total, err
		}
		if tokenized.tokenCount < cw.MinTokens {
			continue
		}
		total += tokenized.tokenCount + 1
	}
	return total, nil
}
