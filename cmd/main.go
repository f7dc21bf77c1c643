package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/blade/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := logger.Init(); err != nil {
		// Use os.Stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("failed to sync logger: " + err.Error() + "\n")
		}
	}()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger.Get().Error(ctx, "command failed", logger.Error(err))
		return 1
	}
	return 0
}
