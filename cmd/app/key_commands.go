package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/ciphershield/cmd/app/commands"
	"github.com/allisson/ciphershield/internal/app"
	"github.com/allisson/ciphershield/internal/config"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-template-key",
			Usage: "Generate a TEMPLATE_KEY_URI for sealing stored templates",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCreateTemplateKey(commands.DefaultIO().Writer)
			},
		},
		{
			Name:  "decrypt-envelope",
			Usage: "Decrypt a nonce||ciphertext||tag envelope with a hex key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "input",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Path of the envelope file",
				},
				&cli.StringFlag{
					Name:     "key-hex",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "64-character hex key",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "Write plaintext to this path instead of stdout",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())

				return commands.RunDecryptEnvelope(
					container.EnvelopeCodec(),
					container.Logger(),
					cmd.String("input"),
					cmd.String("key-hex"),
					cmd.String("output"),
					commands.DefaultIO(),
				)
			},
		},
	}
}
