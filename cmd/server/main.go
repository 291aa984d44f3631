// Package main provides the campus chat server entry point.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/srmist/campus-chat-go/internal/app"
	"github.com/srmist/campus-chat-go/internal/buildinfo"
	"github.com/srmist/campus-chat-go/internal/config"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "campus-chat %s: %v\n", buildinfo.Release(), err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	application, err := app.Initialize(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}

	return application.Run()
}
