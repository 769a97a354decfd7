package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gamma-omg/teammind/docstore"
	"github.com/gamma-omg/teammind/rag"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type apiService interface {
	knowledgeService
	Stats() rag.Stats
}

// HTTPServer exposes the engine as a small JSON API.
type HTTPServer struct {
	echo   *echo.Echo
	svc    apiService
	logger *zap.Logger
	addr   string
}

type QueryRequest struct {
	Query string `json:"query"`
	Mode  string `json:"mode"`
}

type SearchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

type SearchResponse struct {
	Results []docstore.SearchResult `json:"results"`
}

type VoiceRequest struct {
	Text string `json:"text"`
}

type VoiceResponse struct {
	Summary string `json:"summary"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

func NewHTTPServer(svc apiService, logger *zap.Logger, addr string) *HTTPServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)

			return err
		}
	})

	s := &HTTPServer{
		echo:   e,
		svc:    svc,
		logger: logger,
		addr:   addr,
	}
	s.registerRoutes()

	return s
}

func (s *HTTPServer) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)

	v1 := s.echo.Group("/api/v1")
	v1.GET("/stats", s.handleStats)
	v1.POST("/query", s.handleQuery)
	v1.POST("/search", s.handleSearch)
	v1.POST("/voice", s.handleVoice)
}

func (s *HTTPServer) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *HTTPServer) handleStats(c echo.Context) error {
	return c.JSON(http.StatusOK, s.svc.Stats())
}

func (s *HTTPServer) handleQuery(c echo.Context) error {
	var req QueryRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid query request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Query) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query field is required")
	}

	ans := s.svc.Ask(c.Request().Context(), req.Query, rag.ParseMode(req.Mode))
	return c.JSON(http.StatusOK, ans)
}

func (s *HTTPServer) handleSearch(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid search request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Query) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query field is required")
	}

	res, err := s.svc.Retrieve(c.Request().Context(), req.Query, req.TopK)
	if err != nil {
		s.logger.Warn("search failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusServiceUnavailable, "knowledge base unavailable")
	}

	return c.JSON(http.StatusOK, SearchResponse{Results: res})
}

func (s *HTTPServer) handleVoice(c echo.Context) error {
	var req VoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text field is required")
	}

	return c.JSON(http.StatusOK, VoiceResponse{Summary: s.svc.SummarizeForVoice(c.Request().Context(), req.Text)})
}

func (s *HTTPServer) Start() error {
	s.logger.Info("starting http server", zap.String("addr", s.addr))
	return s.echo.Start(s.addr)
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
