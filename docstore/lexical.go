package docstore

import (
	"context"
	"sort"
	"strings"
)

// DefaultTopK is used when a caller asks for a non-positive number of results.
const DefaultTopK = 3

// LexicalIndex scores chunks by the number of distinct query words they
// contain. Words are produced by lowercasing and splitting on whitespace.
type LexicalIndex struct {
	chunks []Chunk
	words  []map[string]struct{}
}

func NewLexicalIndex(chunks []Chunk) *LexicalIndex {
	words := make([]map[string]struct{}, len(chunks))
	for i, c := range chunks {
		words[i] = wordSet(c.Content)
	}

	return &LexicalIndex{
		chunks: chunks,
		words:  words,
	}
}

func (li *LexicalIndex) Kind() Kind { return KindLexical }

func (li *LexicalIndex) Len() int { return len(li.chunks) }

// Retrieve never fails. Chunks with equal scores keep their original order.
func (li *LexicalIndex) Retrieve(_ context.Context, query string, k int) ([]SearchResult, error) {
	return li.Search(query, k), nil
}

func (li *LexicalIndex) Search(query string, k int) []SearchResult {
	if k <= 0 {
		k = DefaultTopK
	}

	q := wordSet(query)
	type scored struct {
		idx   int
		score int
	}

	ranked := make([]scored, len(li.chunks))
	for i := range li.chunks {
		ranked[i] = scored{idx: i, score: overlap(q, li.words[i])}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	n := min(k, len(ranked))
	res := make([]SearchResult, 0, n)
	for _, r := range ranked[:n] {
		c := li.chunks[r.idx]
		res = append(res, SearchResult{
			Content: c.Content,
			Source:  c.Source,
			Score:   float32(r.score),
		})
	}

	return res
}

func wordSet(text string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}

	return set
}

func overlap(a, b map[string]struct{}) int {
	if len(a) > len(b) {
		a, b = b, a
	}

	n := 0
	for w := range a {
		if _, ok := b[w]; ok {
			n++
		}
	}

	return n
}
