package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/hazyhaar/dateglot/pkg/api"
	"github.com/hazyhaar/dateglot/pkg/chassis"
	"github.com/hazyhaar/dateglot/pkg/language"
)

type config struct {
	Addr         string `yaml:"addr"`
	LanguagesDir string `yaml:"languages_dir"`
	CertFile     string `yaml:"cert_file"`
	KeyFile      string `yaml:"key_file"`
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		cmdServe(os.Args[2:])
	case "import":
		cmdImport(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: dateglot <command>\n\nCommands:\n  serve    Start the HTTP + MCP server\n  import   Build language files from public locale data\n")
}

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg := loadConfig(*cfgPath, logger)

	// Load languages.
	reg := language.NewRegistry(cfg.LanguagesDir)
	if err := reg.Load(); err != nil {
		logger.Error("failed to load languages", "error", err)
		os.Exit(1)
	}
	logger.Info("languages loaded", "count", reg.Count())

	// MCP server exposing the same actions as the HTTP routes.
	mcpSrv := server.NewMCPServer("dateglot", "1.0.0")
	api.RegisterMCPTools(mcpSrv, reg)

	srv, err := chassis.New(chassis.Config{
		Addr:      cfg.Addr,
		CertFile:  cfg.CertFile,
		KeyFile:   cfg.KeyFile,
		Handler:   api.NewRouter(reg),
		MCPServer: mcpSrv,
		Logger:    logger,
	})
	if err != nil {
		logger.Error("chassis init failed", "error", err)
		os.Exit(1)
	}

	// SIGHUP: hot reload languages.
	// SIGINT/SIGTERM: graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sighup := make(chan os.Signal, 1)
	signal.Notify(sighup, syscall.SIGHUP)
	go func() {
		for range sighup {
			logger.Info("SIGHUP received, reloading languages")
			if err := reg.Reload(); err != nil {
				logger.Error("reload failed", "error", err)
			} else {
				logger.Info("languages reloaded", "count", reg.Count())
			}
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("dateglot listening", "addr", cfg.Addr)
		errCh <- srv.Start(ctx)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	srv.Stop(shutdownCtx)
}

func loadConfig(path string, logger *slog.Logger) config {
	cfg := config{
		Addr:         ":8421",
		LanguagesDir: "languages",
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
