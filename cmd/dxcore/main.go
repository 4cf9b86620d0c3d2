package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/dyslexicore/dyslexicore-cli/internal/cli"
)

func main() {
	// Optional .env for local development; env takes precedence anyway
	_ = godotenv.Load()

	// Ctrl-C cancels the command's context so game loops and in-flight
	// requests tear down instead of being killed mid-round
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
