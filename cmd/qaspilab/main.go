package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/qaspilab/qaspilab/internal/config"
	"github.com/qaspilab/qaspilab/internal/logger"
	"github.com/urfave/cli/v2"

	_ "github.com/qaspilab/qaspilab/docs"
)

//	@title			qaspilab API
//	@version		1.0
//	@description	Idea submission endpoint and site content for the qaspilab studio site.
//	@BasePath		/

func main() {
	app := &cli.App{
		Name:  "qaspilab",
		Usage: "Idea submission backend and form tools for the qaspilab site",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   string(logger.FormatJSON),
				Usage:   "Log format (json, text)",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Site content file (TOML); built-in content when empty",
				EnvVars: []string{"SITE_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "Environment file loaded before flags are read",
			},
		},
		Before: func(c *cli.Context) error {
			if err := godotenv.Load(c.String("env-file")); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			// stdout belongs to the interactive shells.
			logger.Setup(os.Stderr, logger.ParseLevel(c.String("log-level")), logger.ParseFormat(c.String("log-format")))
			return nil
		},
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			ideasCommand(),
			submitCommand(),
			galleryCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func loadSite(c *cli.Context) (*config.Site, error) {
	return config.LoadSite(c.String("config"))
}
