package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/qaspilab/qaspilab/internal/client"
	"github.com/qaspilab/qaspilab/internal/config"
	"github.com/qaspilab/qaspilab/internal/idea"
	"github.com/qaspilab/qaspilab/internal/model"
	"github.com/urfave/cli/v2"
)

func submitCommand() *cli.Command {
	return &cli.Command{
		Name:  "submit",
		Usage: "Fill in and send the idea form, prompting for missing fields",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "endpoint",
				Aliases: []string{"e"},
				Value:   config.DefaultEndpointURL,
				Usage:   "Base URL of the site serving " + config.SubmitIdeaPath,
				EnvVars: []string{"ENDPOINT_URL"},
			},
			&cli.StringFlag{
				Name:  "surface",
				Usage: "Form surface whose budget options are offered (cta, modal)",
			},
			&cli.StringFlag{Name: "name", Usage: "Your name"},
			&cli.StringFlag{Name: "contact", Usage: "Phone number or email"},
			&cli.StringFlag{Name: "description", Usage: "Describe your idea"},
			&cli.StringFlag{Name: "budget", Usage: "Budget token, e.g. 50000-200000"},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: config.DefaultSubmitTimeout,
				Usage: "Give up on the endpoint after this long",
			},
			&cli.BoolFlag{
				Name:  "no-input",
				Usage: "Never prompt; fail if required fields are missing",
			},
		},
		Action: runSubmit,
	}
}

func runSubmit(c *cli.Context) error {
	site, err := loadSite(c)
	if err != nil {
		return fmt.Errorf("failed to load site config: %w", err)
	}
	surface, ok := site.Surface(c.String("surface"))
	if !ok {
		return fmt.Errorf("unknown surface %q", c.String("surface"))
	}

	endpoint, err := client.New(c.String("endpoint"),
		client.WithSurface(surface.Name),
		client.WithTimeout(c.Duration("timeout")),
	)
	if err != nil {
		return err
	}

	sh := newFormShell(c.App.Reader, c.App.Writer, surface)
	ctrl, err := idea.NewController(endpoint,
		idea.WithBudgets(surface.BudgetValues()),
		idea.WithTimeout(c.Duration("timeout")),
		idea.WithFailureMessage(site.Messages.TransportFailure),
		idea.WithObserver(sh.render),
	)
	if err != nil {
		return err
	}

	for _, f := range []model.Field{model.FieldName, model.FieldContact, model.FieldDescription, model.FieldBudget} {
		if c.IsSet(string(f)) {
			ctrl.UpdateField(f, c.String(string(f)))
		}
	}

	interactive := !c.Bool("no-input")
	if interactive && !c.IsSet("budget") {
		if err := sh.fill(ctrl, model.FieldBudget); err != nil {
			return err
		}
	}
	return sh.run(c.Context, ctrl, interactive)
}

// formShell renders controller status to a terminal and prompts for fields.
type formShell struct {
	in      *bufio.Scanner
	out     io.Writer
	surface config.Surface
	mu      sync.Mutex
}

func newFormShell(in io.Reader, out io.Writer, surface config.Surface) *formShell {
	return &formShell{in: bufio.NewScanner(in), out: out, surface: surface}
}

// render is the controller observer. It can run on the auto-reset timer goroutine.
func (s *formShell) render(st idea.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch st.State {
	case idea.StateInFlight:
		fmt.Fprintln(s.out, "Sending...")
	case idea.StateSucceeded:
		fmt.Fprintln(s.out, "✓ "+st.Message)
		if st.ThankYou != "" {
			fmt.Fprintln(s.out, st.ThankYou)
		}
	case idea.StateFailed:
		fmt.Fprintln(s.out, "✗ "+st.Message)
	}
}

// run submits until the idea is accepted, asking for whatever the draft lacks.
func (s *formShell) run(ctx context.Context, ctrl *idea.Controller, interactive bool) error {
	for {
		if err := ctrl.Validate(); err != nil {
			var verr *idea.ValidationError
			if !errors.As(err, &verr) || !interactive {
				return fmt.Errorf("cannot submit: %w", err)
			}
			if err := s.fill(ctrl, verr.Fields...); err != nil {
				return err
			}
			continue
		}

		st := ctrl.Submit(ctx)
		switch st.State {
		case idea.StateSucceeded:
			return nil
		case idea.StateFailed:
			if !interactive {
				return fmt.Errorf("submission failed: %s", st.Message)
			}
			retry, err := s.confirm("Try again?")
			if err != nil {
				return err
			}
			if !retry {
				return fmt.Errorf("submission failed: %s", st.Message)
			}
		default:
			return fmt.Errorf("submission ended in state %s", st.State)
		}
	}
}

// fill prompts for each field and writes the answers into the draft.
func (s *formShell) fill(ctrl *idea.Controller, fields ...model.Field) error {
	for _, f := range fields {
		var (
			v   string
			err error
		)
		if f == model.FieldBudget {
			v, err = s.askBudget()
		} else {
			v, err = s.ask(fieldPrompt(f))
		}
		if err != nil {
			return err
		}
		ctrl.UpdateField(f, v)
	}
	return nil
}

func fieldPrompt(f model.Field) string {
	switch f {
	case model.FieldName:
		return "Your name"
	case model.FieldContact:
		return "Phone or email"
	case model.FieldDescription:
		return "Describe your idea"
	}
	return string(f)
}

func (s *formShell) ask(prompt string) (string, error) {
	s.mu.Lock()
	fmt.Fprintf(s.out, "%s: ", prompt)
	s.mu.Unlock()

	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// askBudget offers the surface options by number. Enter skips; a token is accepted as typed.
func (s *formShell) askBudget() (string, error) {
	options := s.surface.BudgetOptions()
	if len(options) == 0 {
		return "", nil
	}

	s.mu.Lock()
	for i, o := range options {
		fmt.Fprintf(s.out, "  %d) %s\n", i+1, o.Label)
	}
	s.mu.Unlock()

	answer, err := s.ask("Budget (number, Enter to skip)")
	if err != nil {
		return "", err
	}
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
		return options[n-1].Value, nil
	}
	return answer, nil
}

func (s *formShell) confirm(prompt string) (bool, error) {
	answer, err := s.ask(prompt + " [y/N]")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
