// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tlias/tlias/cmd/app/commands"
)

const version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "tlias",
		Usage:   "Training institute management backend",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunMigrations()
				},
			},
			{
				Name:  "create-emp",
				Usage: "Create an employee account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Required: true,
						Usage:    "Login username (2-20 characters)",
					},
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Required: true,
						Usage:    "Display name",
					},
					&cli.StringFlag{
						Name:    "password",
						Aliases: []string{"p"},
						Value:   "",
						Usage:   "Initial password (defaults to 123456 when omitted)",
					},
					&cli.IntFlag{
						Name:    "gender",
						Aliases: []string{"g"},
						Value:   1,
						Usage:   "Gender code (1 male, 2 female)",
					},
					&cli.IntFlag{
						Name:     "job",
						Aliases:  []string{"j"},
						Required: true,
						Usage:    "Job code, doubles as the role for authorization (e.g. 3 for admin)",
					},
					&cli.IntFlag{
						Name:    "salary",
						Aliases: []string{"s"},
						Value:   0,
						Usage:   "Monthly salary",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunCreateEmp(
						ctx,
						cmd.String("username"),
						cmd.String("name"),
						cmd.String("password"),
						int(cmd.Int("gender")),
						int(cmd.Int("job")),
						int(cmd.Int("salary")),
					)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
