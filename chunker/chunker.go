package chunker

import (
	"strings"
	"unicode/utf8"

	"github.com/gamma-omg/teammind/docstore"
)

const (
	DefaultChunkSize = 500
	DefaultOverlap   = 50

	sectionMarker = "\n## "
)

type Option func(*Chunker)

// WithChunkSize sets the target chunk length in characters.
func WithChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithOverlap sets how many trailing words of a chunk seed the next one.
func WithOverlap(words int) Option {
	return func(c *Chunker) {
		if words >= 0 {
			c.overlap = words
		}
	}
}

// Chunker splits documents along "## " headings and then, for sections longer
// than the target size, along word boundaries with a word overlap.
type Chunker struct {
	chunkSize int
	overlap   int
}

func New(opts ...Option) *Chunker {
	c := &Chunker{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultOverlap,
	}
	for _, o := range opts {
		o(c)
	}

	return c
}

func (c *Chunker) ChunkSize() int { return c.chunkSize }

func (c *Chunker) Overlap() int { return c.overlap }

func (c *Chunker) Chunk(docs []docstore.Doc) []docstore.Chunk {
	var chunks []docstore.Chunk
	for _, d := range docs {
		for _, text := range c.Chunkify(d.Content) {
			chunks = append(chunks, docstore.Chunk{
				Source:  d.Filename,
				Content: text,
			})
		}
	}

	return chunks
}

// Chunkify returns the chunk texts of a single document in order.
func (c *Chunker) Chunkify(text string) []string {
	res := []string{}
	for i, section := range strings.Split(text, sectionMarker) {
		if i > 0 {
			section = "## " + section
		}

		if utf8.RuneCountInString(section) > c.chunkSize {
			res = append(res, c.splitWords(section)...)
			continue
		}

		if s := strings.TrimSpace(section); s != "" {
			res = append(res, s)
		}
	}

	return res
}

// splitWords accumulates words until the running length, counting one
// separator per word, reaches the target. A chunk therefore never exceeds the
// target by more than its last word.
func (c *Chunker) splitWords(section string) []string {
	var (
		res    []string
		cur    []string
		curLen int
		fresh  int
	)

	for _, w := range strings.Fields(section) {
		cur = append(cur, w)
		curLen += utf8.RuneCountInString(w) + 1
		fresh++

		if curLen >= c.chunkSize {
			res = append(res, strings.Join(cur, " "))
			cur = c.seed(cur)
			curLen = wordsLen(cur)
			fresh = 0
		}
	}

	// a tail holding only the carried-over seed is already part of the
	// previous chunk
	if fresh > 0 {
		res = append(res, strings.Join(cur, " "))
	}

	return res
}

// seed returns the last overlap words of a flushed chunk, dropping words from
// the front while the seed alone would reach the target or would repeat the
// whole flushed chunk.
func (c *Chunker) seed(flushed []string) []string {
	n := min(c.overlap, len(flushed))
	seed := flushed[len(flushed)-n:]

	for len(seed) > 0 && (len(seed) >= len(flushed) || wordsLen(seed) >= c.chunkSize) {
		seed = seed[1:]
	}

	return append([]string(nil), seed...)
}

func wordsLen(words []string) int {
	n := 0
	for _, w := range words {
		n += utf8.RuneCountInString(w) + 1
	}

	return n
}
