package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sammyshakes/solana-points-go/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], cli.Options{})
	stop()
	os.Exit(code)
}
