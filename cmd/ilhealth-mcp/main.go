package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/david-aftergut/ILHealth-mcp/internal/config"
	"github.com/david-aftergut/ILHealth-mcp/internal/logger"
	"github.com/david-aftergut/ILHealth-mcp/internal/mcp"
	"github.com/david-aftergut/ILHealth-mcp/internal/tools"
	"github.com/david-aftergut/ILHealth-mcp/internal/tools/dashboard"
	"github.com/david-aftergut/ILHealth-mcp/internal/upstream"
	"github.com/david-aftergut/ILHealth-mcp/pkg/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ilhealth-mcp: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	client := upstream.NewClient(upstream.Config{
		MetadataBaseURL: cfg.MetadataBaseURL,
		DataBaseURL:     cfg.DataBaseURL,
		Timeout:         cfg.HTTPTimeout,
	})

	registry := tools.NewRegistry()
	for _, tool := range dashboard.GetTools(client) {
		if err := registry.Register(tool); err != nil {
			return fmt.Errorf("register tools: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting ILHealth MCP server",
		"version", version.Version,
		"tools", registry.Names())

	server := mcp.NewServer(registry)
	err := server.Serve(ctx, mcp.NewStdioStream(os.Stdin, os.Stdout))
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info("server stopped")
	return nil
}
