package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hazyhaar/drugreg/pkg/api"
	"github.com/hazyhaar/drugreg/pkg/drugsfda"
	"github.com/hazyhaar/drugreg/pkg/rxclass"
	"github.com/hazyhaar/drugreg/pkg/trials"
	"github.com/hazyhaar/drugreg/pkg/vocab"
	"github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"
)

type config struct {
	Addr        string `yaml:"addr"`
	OverlaysDir string `yaml:"overlays_dir"`
	LogLevel    string `yaml:"log_level"`
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "anda":
		cmdANDA(os.Args[2:])
	case "nda":
		cmdNDA(os.Args[2:])
	case "trials":
		cmdTrials(os.Args[2:])
	case "classes":
		cmdClasses(os.Args[2:])
	case "serve":
		cmdServe(os.Args[2:])
	case "mcp":
		cmdMCP(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: drugreg <command>

Commands:
  anda     Look up Drugs@FDA application records by ANDA number
  nda      Look up Drugs@FDA application records by NDA number
  trials   Look up ClinicalTrials.gov studies by intervention drug name
  classes  Look up RxClass classification claims by drug name
  serve    Start the HTTP server
  mcp      Serve the MCP tools on stdio
`)
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

// newRegistry collects every built-in vocabulary and applies overlay aliases
// from dir, when set.
func newRegistry(dir string, logger *slog.Logger) *vocab.Registry {
	reg := vocab.NewRegistry()
	reg.Add(drugsfda.Vocabularies()...)
	reg.Add(trials.Vocabularies()...)
	reg.Add(rxclass.Vocabularies()...)
	if dir != "" {
		if err := reg.LoadOverlays(dir); err != nil {
			logger.Error("failed to load vocabulary overlays", "dir", dir, "error", err)
			os.Exit(1)
		}
	}
	return reg
}

func newServices(cfg config, logger *slog.Logger) *api.Services {
	return &api.Services{
		Drugs:   drugsfda.NewClient(drugsfda.WithLogger(logger)),
		Trials:  trials.NewClient(trials.WithLogger(logger)),
		RxClass: rxclass.NewClient(rxclass.WithLogger(logger)),
		Vocab:   newRegistry(cfg.OverlaysDir, logger),
		Log:     logger,
	}
}

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	logger := newLogger("info")
	cfg := loadConfig(*cfgPath, logger)
	if cfg.LogLevel != "" {
		logger = newLogger(cfg.LogLevel)
	}

	services := newServices(cfg, logger)
	logger.Info("vocabularies loaded", "count", services.Vocab.Count())

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.NewRouter(services),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("drugreg listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	srv.Shutdown(context.Background())
}

func cmdMCP(args []string) {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	// stdout carries the MCP protocol, so logs must stay on stderr.
	logger := newLogger("warn")
	cfg := loadConfig(*cfgPath, logger)

	services := newServices(cfg, logger)

	srv := server.NewMCPServer("drugreg", "1.0.0")
	api.RegisterMCPTools(srv, services)

	if err := server.ServeStdio(srv); err != nil {
		logger.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}

func loadConfig(path string, logger *slog.Logger) config {
	cfg := config{
		Addr: ":8430",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("no config file, using defaults", "path", path)
			return cfg
		}
		logger.Error("read config", "error", err)
		os.Exit(1)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("parse config", "error", err)
		os.Exit(1)
	}
	return cfg
}
