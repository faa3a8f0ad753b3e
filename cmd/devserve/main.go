package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/krlabs/devserve/cmd/devserve/commands"
)

func main() {
	// Ctrl+C stops the server cleanly; the context reaches the uvicorn
	// child through the command layer.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands.Execute(ctx)
}
