package rag

import (
	"fmt"
	"strings"

	"github.com/gamma-omg/teammind/docstore"
	"github.com/tmc/langchaingo/prompts"
)

const answerTemplate = `You are TeamMind AI, a helpful assistant for team knowledge and onboarding.
{{.mode_context}}

Use only the provided context from team documentation to answer the question.
If the answer is not present in the context, say so explicitly.
Never fabricate commands or credentials.

CONTEXT:
{{.context}}

USER QUESTION: {{.question}}

HELPFUL ANSWER:`

const voiceTemplate = `Rewrite the following answer as one or two short, friendly sentences that can be read aloud. Do not use lists, markdown or code.

ANSWER:
{{.text}}

SPOKEN SUMMARY:`

var (
	answerPrompt = prompts.NewPromptTemplate(answerTemplate, []string{"mode_context", "context", "question"})
	voicePrompt  = prompts.NewPromptTemplate(voiceTemplate, []string{"text"})
)

// ContextBlock labels every result with its source, in retrieval order.
func ContextBlock(results []docstore.SearchResult) string {
	blocks := make([]string, 0, len(results))
	for _, r := range results {
		blocks = append(blocks, fmt.Sprintf("[From %s]:\n%s", r.Source, r.Content))
	}

	return strings.Join(blocks, "\n\n")
}

func BuildPrompt(query, modeContext string, results []docstore.SearchResult) (string, error) {
	return answerPrompt.Format(map[string]any{
		"mode_context": strings.TrimSpace(modeContext),
		"context":      ContextBlock(results),
		"question":     query,
	})
}

func buildVoicePrompt(text string) (string, error) {
	return voicePrompt.Format(map[string]any{"text": text})
}
