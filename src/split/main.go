package main

import (
	"context"
	"fmt"
	"freecast-workers/src/application"
	"freecast-workers/src/application/cli"
	"freecast-workers/src/application/config"
	"freecast-workers/src/lib/logger"
	"os"
	"os/signal"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		return 1
	}

	if err := logger.Configure(cfg.Environment, cfg.LogLevel, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		return 1
	}

	referenceSplitter, err := application.NewReferenceSplitter(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr, referenceSplitter, cfg.MaxChunkBytes)
}
