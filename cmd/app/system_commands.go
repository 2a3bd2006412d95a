package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/ciphershield/cmd/app/commands"
	"github.com/allisson/ciphershield/internal/app"
	"github.com/allisson/ciphershield/internal/config"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:    "serve",
			Aliases: []string{"server"},
			Usage:   "Start the loopback HTTP API",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				return commands.RunServer(ctx, app.NewContainer(cfg), version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Run database migrations",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				db, err := container.DB()
				if err != nil {
					return err
				}

				return commands.RunMigrations(db, cfg.DBDriver, container.Logger())
			},
		},
	}
}
