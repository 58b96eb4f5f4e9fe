// Package main is the entry point for the todo client: an interactive board
// by default, plus one-shot subcommands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsamuelsen11/todoapp/internal/adapters/cli"
	"github.com/jsamuelsen11/todoapp/internal/adapters/clients/todoapi"
	"github.com/jsamuelsen11/todoapp/internal/adapters/tui"
	"github.com/jsamuelsen11/todoapp/internal/platform/config"
	"github.com/jsamuelsen11/todoapp/internal/platform/httpclient"
	"github.com/jsamuelsen11/todoapp/internal/platform/logging"
	"github.com/jsamuelsen11/todoapp/internal/ports"
)

const defaultProfile = "local"

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}

	cfg, err := config.Load(profile, config.WithOptionalFiles())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Never log to the terminal; the board owns it.
	out, logFile := logging.Output(nil, logging.FileOptions{
		Path:       cfg.Log.File.Path,
		MaxSizeMB:  cfg.Log.File.MaxSizeMB,
		MaxBackups: cfg.Log.File.MaxBackups,
		MaxAgeDays: cfg.Log.File.MaxAgeDays,
		Compress:   cfg.Log.File.Compress,
	})
	defer func() { _ = logFile.Close() }()

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, out)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cli.Deps{
		BaseURL: cfg.Client.BaseURL,
		Workers: cfg.Client.Workers,
		Logger:  logger,
		Version: version,
		NewClient: func(baseURL string) cli.Client {
			clientCfg := cfg.Client
			clientCfg.BaseURL = baseURL
			return todoapi.NewClient(
				httpclient.New(&clientCfg, todoapi.ServiceName, httpclient.WithLogger(logger)),
				logger,
			)
		},
		RunTUI: func(ctx context.Context, client ports.TodoClient) error {
			return tui.Run(ctx, client, tui.WithRequestTimeout(cfg.Client.Timeout))
		},
	})

	return root.ExecuteContext(ctx)
}
