package main

import (
	"fmt"
	"log/slog"

	"github.com/qaspilab/qaspilab/internal/config"
	"github.com/qaspilab/qaspilab/internal/database"
	"github.com/urfave/cli/v2"
)

func databaseFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "database-url",
		Aliases:  []string{"d"},
		Value:    config.DefaultDatabaseURL,
		Usage:    "PostgreSQL connection URL",
		EnvVars:  []string{"DATABASE_URL"},
		Required: true,
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Manage the database schema",
		Flags: []cli.Flag{databaseFlag()},
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "Apply all pending migrations",
				Action: func(c *cli.Context) error {
					pool, err := database.Connect(c.Context, c.String("database-url"))
					if err != nil {
						return fmt.Errorf("failed to connect to database: %w", err)
					}
					defer pool.Close()

					if err := database.Migrate(c.Context, pool); err != nil {
						return err
					}
					slog.Info("database migrated")
					return nil
				},
			},
			{
				Name:  "down",
				Usage: "Roll back the most recent migration",
				Action: func(c *cli.Context) error {
					pool, err := database.Connect(c.Context, c.String("database-url"))
					if err != nil {
						return fmt.Errorf("failed to connect to database: %w", err)
					}
					defer pool.Close()

					if err := database.Rollback(c.Context, pool); err != nil {
						return err
					}
					slog.Info("migration rolled back")
					return nil
				},
			},
			{
				Name:  "version",
				Usage: "Print the current schema version",
				Action: func(c *cli.Context) error {
					pool, err := database.Connect(c.Context, c.String("database-url"))
					if err != nil {
						return fmt.Errorf("failed to connect to database: %w", err)
					}
					defer pool.Close()

					v, err := database.Version(c.Context, pool)
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, v)
					return nil
				},
			},
		},
	}
}
