// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"
	"slices"

	"github.com/urfave/cli/v3"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:    "ciphershield",
		Usage:   "Local anonymization pipeline with encrypted hand-off to the detection engine",
		Version: version,
		Commands: slices.Concat(
			getSystemCommands(version),
			getAuthCommands(),
			getKeyCommands(),
			getTemplateCommands(),
		),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
