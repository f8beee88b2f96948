package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kedare/wordsmith/cmd"
	"github.com/kedare/wordsmith/internal/logger"
)

func main() {
	// Diagnostics go to stderr so stdout only carries results.
	logger.InitPterm()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		logger.Log.Errorf("%v", err)
		os.Exit(1)
	}
}
