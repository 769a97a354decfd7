package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gamma-omg/teammind/rag"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	yamlv3 "gopkg.in/yaml.v3"
)

type app struct {
	cfgPath string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "teammind",
		Short:        "Team knowledge and onboarding assistant",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "config.yaml", "configuration file")

	root.AddCommand(
		a.serveCmd(),
		a.askCmd(),
		a.chatCmd(),
		a.statsCmd(),
		a.configCmd(),
	)

	return root
}

// session bundles everything a command needs; release must be deferred.
type session struct {
	cfg     *Config
	log     *zap.Logger
	engine  *rag.Engine
	release func()
}

func (a *app) open(ctx context.Context, init bool) (*session, error) {
	cfg, err := readConfig(a.cfgPath)
	if err != nil {
		return nil, err
	}

	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	engine, err := buildEngine(cfg, log)
	if err != nil {
		closeLog()
		return nil, err
	}

	s := &session{
		cfg:    cfg,
		log:    log,
		engine: engine,
		release: func() {
			if err := engine.Close(); err != nil {
				log.Debug("failed to close engine", zap.Error(err))
			}
			_ = log.Sync()
			closeLog()
		},
	}

	if init {
		if err := engine.Init(ctx); err != nil {
			s.release()
			return nil, err
		}
	}

	return s, nil
}

func (a *app) serveCmd() *cobra.Command {
	var (
		stdio    bool
		httpAddr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the knowledge base over MCP (SSE or stdio) and optionally HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s, err := a.open(ctx, true)
			if err != nil {
				return err
			}
			defer s.release()

			if httpAddr != "" {
				s.cfg.HTTPAddr = httpAddr
			}
			if s.cfg.HTTPAddr != "" {
				api := NewHTTPServer(s.engine, s.log, s.cfg.HTTPAddr)
				go func() {
					if err := api.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						s.log.Error("http server stopped", zap.Error(err))
					}
				}()
				defer shutdown(s.log, api.Shutdown)
			}

			srv := NewRagServer(s.engine, s.log)
			if stdio {
				return server.ServeStdio(srv)
			}

			sse := server.NewSSEServer(srv, server.WithBaseURL(fmt.Sprintf("http://%s", s.cfg.ServerAddr)))
			go func() {
				<-ctx.Done()
				shutdown(s.log, sse.Shutdown)
			}()

			s.log.Info("starting mcp server", zap.String("addr", s.cfg.ServerAddr))
			if err := sse.Start(s.cfg.ServerAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&stdio, "stdio", false, "serve MCP over stdin/stdout instead of SSE")
	cmd.Flags().StringVar(&httpAddr, "http", "", "serve the HTTP API on this address (overrides http_addr)")

	return cmd
}

func shutdown(log *zap.Logger, fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := fn(ctx); err != nil {
		log.Warn("shutdown failed", zap.Error(err))
	}
}

func (a *app) askCmd() *cobra.Command {
	var (
		mode    string
		voice   bool
		sources bool
	)

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a single question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer s.release()

			q := strings.Join(args, " ")
			ans := s.engine.Ask(cmd.Context(), q, rag.ParseMode(mode))
			cmd.Println(ans.Text)

			if sources {
				printSources(cmd, ans)
			}
			if voice {
				cmd.Println()
				cmd.Println("Voice summary:", s.engine.SummarizeForVoice(cmd.Context(), ans.Text))
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", string(rag.ModeKnowledge), "answer mode: onboarding or knowledge")
	cmd.Flags().BoolVar(&voice, "voice", false, "also print a short summary for narration")
	cmd.Flags().BoolVar(&sources, "sources", false, "list the documents the answer is based on")

	return cmd
}

func printSources(cmd *cobra.Command, ans rag.Answer) {
	if len(ans.Sources) == 0 {
		return
	}

	cmd.Println()
	cmd.Println("Sources:")
	for i, src := range ans.Sources {
		cmd.Printf("  [%d] %s\n", i+1, src.Source)
	}
}

func (a *app) chatCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive session",
		Long: `Starts an interactive question and answer session.
Commands: /mode onboarding|knowledge, /topics, /reset, /quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.open(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer s.release()

			return runChat(cmd, s.engine, rag.NewSession(rag.ParseMode(mode)))
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", string(rag.ModeOnboarding), "initial mode: onboarding or knowledge")

	return cmd
}

func runChat(cmd *cobra.Command, asker rag.Asker, sess *rag.Session) error {
	cmd.Println(sess.Messages[0].Content)
	cmd.Println()

	in := bufio.NewScanner(cmd.InOrStdin())
	for {
		cmd.Print("> ")
		if !in.Scan() {
			cmd.Println()
			return in.Err()
		}

		line := strings.TrimSpace(in.Text())
		switch {
		case line == "":
			continue
		case line == "/quit" || line == "/exit":
			return nil
		case line == "/topics":
			for _, t := range rag.SuggestedTopics {
				cmd.Println("  -", t)
			}
			continue
		case line == "/reset":
			sess.Reset(sess.Mode)
			cmd.Println(sess.Messages[0].Content)
			continue
		case strings.HasPrefix(line, "/mode"):
			sess.Reset(rag.ParseMode(strings.TrimSpace(strings.TrimPrefix(line, "/mode"))))
			cmd.Println(sess.Messages[0].Content)
			continue
		}

		ans := sess.Ask(cmd.Context(), asker, line)
		cmd.Println(ans.Text)
		printSources(cmd, ans)
		cmd.Println()
	}
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Load the knowledge base and print its statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.open(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer s.release()

			data, err := json.MarshalIndent(s.engine.Stats(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal stats: %w", err)
			}
			cmd.Println(string(data))

			return nil
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	var (
		output string
		force  bool
	)
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := defaultConfig()
			if output == "-" {
				data, err := yamlv3.Marshal(cfg)
				if err != nil {
					return fmt.Errorf("failed to marshal config: %w", err)
				}
				cmd.Print(string(data))
				return nil
			}

			if err := writeConfig(output, cfg, force); err != nil {
				return err
			}
			cmd.Printf("Configuration written to %s\n", output)

			return nil
		},
	}
	initCmd.Flags().StringVarP(&output, "output", "o", "config.yaml", "destination file, - for stdout")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)

	return cmd
}
