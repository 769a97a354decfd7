package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/gamma-omg/teammind/docstore"
	"github.com/gamma-omg/teammind/generation"
	"go.uber.org/zap"
)

const (
	NoInfoMessage = "I don't have specific information about that in my knowledge base. " +
		"Please check with your team lead or the team wiki."

	fallbackIntro = "Based on our team documentation, here's what I found:\n\n"
	fallbackNote  = "\n*Note: Running in fallback mode. Configure a generation backend for full AI-powered responses.*"

	snippetLen = 300
)

type Answer struct {
	Text    string                  `json:"answer"`
	Sources []docstore.SearchResult `json:"sources"`
}

// Composer turns retrieval results into an Answer. A nil generator selects
// the extractive fallback.
type Composer struct {
	gen generation.Generator
	log *zap.Logger
}

func NewComposer(gen generation.Generator, log *zap.Logger) *Composer {
	if log == nil {
		log = zap.NewNop()
	}

	return &Composer{gen: gen, log: log}
}

func (c *Composer) HasGenerator() bool { return c.gen != nil }

func (c *Composer) Compose(ctx context.Context, query, modeContext string, results []docstore.SearchResult) Answer {
	if len(results) == 0 {
		return Answer{Text: NoInfoMessage, Sources: []docstore.SearchResult{}}
	}

	if c.gen == nil {
		return Answer{Text: FallbackAnswer(results), Sources: results}
	}

	prompt, err := BuildPrompt(query, modeContext, results)
	if err != nil {
		return Answer{Text: errorText(err), Sources: results}
	}

	switch r := c.gen.Generate(ctx, prompt).(type) {
	case generation.Generated:
		return Answer{Text: strings.TrimSpace(r.Text), Sources: results}
	case generation.Failed:
		c.log.Warn("answer generation failed", zap.Error(r.Err))
		return Answer{Text: errorText(r.Err), Sources: results}
	default:
		return Answer{Text: errorText(fmt.Errorf("unexpected generation result %T", r)), Sources: results}
	}
}

// SummarizeForVoice shortens text for narration. Without a generator, or when
// generation fails, the first sentence is used.
func (c *Composer) SummarizeForVoice(ctx context.Context, text string) string {
	text = strings.TrimSpace(text)
	if text == "" || c.gen == nil {
		return FirstSentence(text)
	}

	prompt, err := buildVoicePrompt(text)
	if err != nil {
		return FirstSentence(text)
	}

	if r, ok := c.gen.Generate(ctx, prompt).(generation.Generated); ok && strings.TrimSpace(r.Text) != "" {
		return strings.TrimSpace(r.Text)
	}

	return FirstSentence(text)
}

func FallbackAnswer(results []docstore.SearchResult) string {
	var sb strings.Builder
	sb.WriteString(fallbackIntro)

	for _, r := range results {
		fmt.Fprintf(&sb, "**From %s**:\n%s\n\n", r.Source, snippet(r.Content))
	}

	sb.WriteString(fallbackNote)
	return sb.String()
}

// FirstSentence returns text up to and including its first period.
func FirstSentence(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.Index(text, "."); i >= 0 {
		return text[:i+1]
	}

	return text
}

func snippet(content string) string {
	runes := []rune(content)
	if len(runes) <= snippetLen {
		return content
	}

	return string(runes[:snippetLen]) + "..."
}

func errorText(err error) string {
	return fmt.Sprintf("Error generating response: %v", err)
}
