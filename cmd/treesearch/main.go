package main

import (
	"context"
	"os"
	"os/signal"

	"go.lepak.sg/treesearch/cmd/treesearch/command"
)

func main() {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt)
	os.Exit(command.Run(ctx, os.Stdout, os.Stderr, os.Args[1:]))
}
