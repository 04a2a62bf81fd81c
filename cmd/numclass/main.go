package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)

	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, "numclass:", err)
		os.Exit(1)
	}
}
