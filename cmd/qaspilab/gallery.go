package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/qaspilab/qaspilab/internal/gallery"
	"github.com/urfave/cli/v2"
)

func galleryCommand() *cli.Command {
	return &cli.Command{
		Name:  "gallery",
		Usage: "Browse a configured gallery (n: next, p: previous, 1..N: jump, q: close)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Usage: "Gallery name; the first configured gallery when empty",
			},
			&cli.IntFlag{
				Name:  "start",
				Value: 1,
				Usage: "Image to open at (1-based)",
			},
		},
		Action: runGallery,
	}
}

func runGallery(c *cli.Context) error {
	site, err := loadSite(c)
	if err != nil {
		return fmt.Errorf("failed to load site config: %w", err)
	}
	if len(site.Galleries) == 0 {
		return errors.New("no galleries configured")
	}

	g := site.Galleries[0]
	if name := c.String("name"); name != "" {
		var ok bool
		if g, ok = site.Gallery(name); !ok {
			return fmt.Errorf("unknown gallery %q", name)
		}
	}

	nav := gallery.New(gallery.FromConfig(g))
	if err := nav.Open(c.Int("start") - 1); err != nil {
		return fmt.Errorf("open gallery %q: %w", g.Name, err)
	}
	return browse(nav, c.App.Reader, c.App.Writer)
}

// browse maps line commands onto the navigator keys until the gallery is closed.
func browse(nav *gallery.Navigator, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	showImage(nav, out)

	for nav.IsOpen() {
		if !scanner.Scan() {
			nav.Close()
			break
		}

		cmd := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if n, err := strconv.Atoi(cmd); err == nil {
			if !nav.JumpTo(n - 1) {
				fmt.Fprintf(out, "no image %d\n", n)
				continue
			}
			showImage(nav, out)
			continue
		}

		key, ok := commandKeys[cmd]
		if !ok || !nav.HasControls() && key != gallery.KeyEscape {
			continue
		}
		nav.HandleKey(key)
		if nav.IsOpen() {
			showImage(nav, out)
		}
	}

	fmt.Fprintln(out, "gallery closed")
	return scanner.Err()
}

var commandKeys = map[string]string{
	"n":     gallery.KeyArrowRight,
	"next":  gallery.KeyArrowRight,
	"p":     gallery.KeyArrowLeft,
	"prev":  gallery.KeyArrowLeft,
	"q":     gallery.KeyEscape,
	"quit":  gallery.KeyEscape,
	"esc":   gallery.KeyEscape,
	"right": gallery.KeyArrowRight,
	"left":  gallery.KeyArrowLeft,
}

func showImage(nav *gallery.Navigator, out io.Writer) {
	img, ok := nav.Current()
	if !ok {
		return
	}

	title := img.Title
	if title == "" {
		title = img.Alt
	}
	if nav.HasControls() {
		fmt.Fprintf(out, "[%s] %s\n", nav.Position(), title)
	} else {
		fmt.Fprintln(out, title)
	}
	fmt.Fprintf(out, "  %s\n", img.Src)
}
