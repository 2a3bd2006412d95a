package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/ciphershield/cmd/app/commands"
	"github.com/allisson/ciphershield/internal/app"
	"github.com/allisson/ciphershield/internal/config"
)

func getAuthCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "setup",
			Usage: "Create the local login credential (first run only)",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "email",
					Aliases:  []string{"e"},
					Required: true,
					Usage:    "Login email",
				},
				&cli.BoolFlag{
					Name:    "generate",
					Aliases: []string{"g"},
					Value:   false,
					Usage:   "Generate a random password and print it once instead of prompting",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				credentialUseCase, err := container.CredentialUseCase()
				if err != nil {
					return err
				}

				return commands.RunSetup(
					ctx,
					credentialUseCase,
					container.Logger(),
					cmd.String("email"),
					cmd.Bool("generate"),
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "change-password",
			Usage: "Change the local login password",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "email",
					Aliases:  []string{"e"},
					Required: true,
					Usage:    "Login email",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				credentialUseCase, err := container.CredentialUseCase()
				if err != nil {
					return err
				}

				return commands.RunChangePassword(
					ctx,
					credentialUseCase,
					container.Logger(),
					cmd.String("email"),
					commands.DefaultIO(),
				)
			},
		},
	}
}
