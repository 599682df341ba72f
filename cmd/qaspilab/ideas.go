package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/qaspilab/qaspilab/internal/config"
	"github.com/qaspilab/qaspilab/internal/database"
	"github.com/qaspilab/qaspilab/internal/model"
	"github.com/qaspilab/qaspilab/internal/repository"
	"github.com/urfave/cli/v2"
)

func ideasCommand() *cli.Command {
	return &cli.Command{
		Name:  "ideas",
		Usage: "List stored ideas, newest first",
		Flags: []cli.Flag{
			databaseFlag(),
			&cli.IntFlag{
				Name:  "limit",
				Value: config.DefaultPageLimit,
				Usage: "Maximum number of ideas",
			},
			&cli.IntFlag{
				Name:  "offset",
				Usage: "Number of ideas to skip",
			},
			&cli.StringFlag{
				Name:  "status",
				Usage: "Filter by delivery status (new, notified, notify_failed)",
			},
			&cli.StringFlag{
				Name:  "surface",
				Usage: "Filter by form surface",
			},
			&cli.DurationFlag{
				Name:  "since",
				Usage: "Only ideas newer than this duration, e.g. 72h",
			},
		},
		Action: runIdeas,
	}
}

func runIdeas(c *cli.Context) error {
	if c.Int("limit") <= 0 || c.Int("offset") < 0 {
		return fmt.Errorf("limit must be positive and offset non-negative")
	}

	pool, err := database.Connect(c.Context, c.String("database-url"))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	repo, err := repository.NewIdeaRepository(pool)
	if err != nil {
		return err
	}

	filter := repository.IdeaFilter{
		Status:  model.DeliveryStatus(c.String("status")),
		Surface: c.String("surface"),
	}
	if d := c.Duration("since"); d > 0 {
		filter.Since = time.Now().Add(-d)
	}

	total, err := repo.Count(c.Context, filter)
	if err != nil {
		return err
	}
	ideas, err := repo.List(c.Context, filter, c.Int("limit"), c.Int("offset"))
	if err != nil {
		return err
	}

	site, err := loadSite(c)
	if err != nil {
		return fmt.Errorf("failed to load site config: %w", err)
	}
	return printIdeas(c.App.Writer, ideas, total, site.Location())
}

func printIdeas(w io.Writer, ideas []model.Idea, total int, loc *time.Location) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CREATED\tNAME\tCONTACT\tBUDGET\tSURFACE\tSTATUS\tIDEA")
	for _, idea := range ideas {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			idea.CreatedAt.In(loc).Format("2006-01-02 15:04"),
			idea.Name,
			idea.ContactFormatted,
			idea.BudgetLabel,
			idea.Surface,
			idea.Status,
			truncate(idea.Description, 60),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d of %d ideas\n", len(ideas), total)
	return err
}

// truncate shortens s to n runes on a single line.
func truncate(s string, n int) string {
	runes := []rune(s)
	for i, r := range runes {
		if r == '\n' || r == '\r' || r == '\t' {
			runes[i] = ' '
		}
	}
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[:n-1]) + "…"
}
