package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/gridiron-gm/internal/cli"
	"github.com/preston-bernstein/gridiron-gm/internal/config"
	"github.com/preston-bernstein/gridiron-gm/internal/logging"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_GRIDIRON_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.Metrics.ServiceName,
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, os.Args[1:], cfg, logger, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
