package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/ciphershield/cmd/app/commands"
	"github.com/allisson/ciphershield/internal/app"
	"github.com/allisson/ciphershield/internal/config"
)

func getTemplateCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "list-templates",
			Usage: "List saved substitution templates",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				templateUseCase, err := container.TemplateUseCase()
				if err != nil {
					return err
				}

				return commands.RunListTemplates(
					ctx,
					templateUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("format"),
				)
			},
		},
	}
}
