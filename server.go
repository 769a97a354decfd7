package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gamma-omg/teammind/docstore"
	"github.com/gamma-omg/teammind/rag"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

const serverVersion = "0.1.0"

type knowledgeService interface {
	Ask(ctx context.Context, userQuery string, mode rag.Mode) rag.Answer
	Retrieve(ctx context.Context, query string, k int) ([]docstore.SearchResult, error)
	SummarizeForVoice(ctx context.Context, text string) string
}

type toolHandlers struct {
	svc knowledgeService
	log *zap.Logger
}

func NewRagServer(svc knowledgeService, log *zap.Logger) *server.MCPServer {
	h := &toolHandlers{svc: svc, log: log}

	ask := mcp.NewTool("ask",
		mcp.WithDescription("Answer a question from the team knowledge base. Returns the answer and the documents it is grounded on."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Question to answer"),
		),
		mcp.WithString("mode",
			mcp.Description("Answer tone"),
			mcp.Enum(string(rag.ModeOnboarding), string(rag.ModeKnowledge)),
			mcp.DefaultString(string(rag.ModeKnowledge)),
		))

	search := mcp.NewTool("search",
		mcp.WithDescription("Search team documentation and return the most relevant chunks"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query"),
		),
		mcp.WithNumber("top_k",
			mcp.Description("Number of chunks to return"),
		))

	voice := mcp.NewTool("voice_summary",
		mcp.WithDescription("Shorten an answer into one or two sentences suitable for reading aloud"),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Text to summarize"),
		))

	srv := server.NewMCPServer("TeamMind", serverVersion, server.WithToolCapabilities(false))
	srv.AddTool(ask, h.ask)
	srv.AddTool(search, h.search)
	srv.AddTool(voice, h.voiceSummary)

	return srv
}

func (h *toolHandlers) ask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	q, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	mode := rag.ParseMode(request.GetString("mode", string(rag.ModeKnowledge)))
	ans := h.svc.Ask(ctx, q, mode)

	raw, err := json.Marshal(ans)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(raw)), nil
}

func (h *toolHandlers) search(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	q, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := h.svc.Retrieve(ctx, q, request.GetInt("top_k", docstore.DefaultTopK))
	if err != nil {
		h.log.Warn("search failed", zap.String("query", q), zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	}

	var response strings.Builder
	for _, r := range res {
		raw, err := json.Marshal(struct {
			Score float32 `json:"score"`
			File  string  `json:"file"`
			Text  string  `json:"text"`
		}{
			Score: r.Score,
			File:  r.Source,
			Text:  r.Content,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		fmt.Fprintf(&response, "%s\n", raw)
	}

	return mcp.NewToolResultText(response.String()), nil
}

func (h *toolHandlers) voiceSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(h.svc.SummarizeForVoice(ctx, text)), nil
}
