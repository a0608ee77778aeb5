package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/Makepad-fr/greetings/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, os.Stderr)
	stop()
	os.Exit(code)
}
