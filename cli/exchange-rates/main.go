package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/malusev998/exchange-rates/cli/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cmd.Execute(ctx, &cmd.Config{})
	stop()

	if err != nil {
		os.Exit(1)
	}
}
