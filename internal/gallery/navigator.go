// Package gallery steps through a fixed ordered set of images in a modal.
package gallery

import (
	"errors"
	"fmt"

	"github.com/qaspilab/qaspilab/internal/config"
	"github.com/samber/lo"
)

// ErrEmptyGallery is returned by Open when there is nothing to show.
var ErrEmptyGallery = errors.New("gallery has no images")

// Keys understood by HandleKey, named like DOM KeyboardEvent.key values.
const (
	KeyEscape     = "Escape"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Image is one gallery entry.
type Image struct {
	Src   string
	Alt   string
	Title string
}

// FromConfig converts configured gallery images.
func FromConfig(g config.Gallery) []Image {
	return lo.Map(g.Images, func(img config.GalleryImage, _ int) Image {
		return Image{Src: img.Src, Alt: img.Alt, Title: img.Title}
	})
}

// Navigator holds the current index into the images and whether the modal
// is shown. The index is always valid for a non-empty gallery.
// It is not safe for concurrent use.
type Navigator struct {
	images []Image
	index  int
	open   bool
}

// New creates a closed navigator positioned at the first image.
func New(images []Image) *Navigator {
	return &Navigator{images: append([]Image(nil), images...)}
}

// Len returns the number of images.
func (n *Navigator) Len() int {
	return len(n.images)
}

// Open shows the gallery at initial, clamping an out-of-range index to 0.
func (n *Navigator) Open(initial int) error {
	if len(n.images) == 0 {
		return ErrEmptyGallery
	}
	if initial < 0 || initial >= len(n.images) {
		initial = 0
	}
	n.index = initial
	n.open = true
	return nil
}

// Close hides the gallery. The index is kept so Resume continues from it.
func (n *Navigator) Close() {
	n.open = false
}

// Resume reopens the gallery at the index it was closed on.
func (n *Navigator) Resume() error {
	return n.Open(n.index)
}

// Next advances one image, wrapping past the last one.
func (n *Navigator) Next() {
	if len(n.images) == 0 {
		return
	}
	n.index = (n.index + 1) % len(n.images)
}

// Previous steps back one image, wrapping before the first one.
func (n *Navigator) Previous() {
	if len(n.images) == 0 {
		return
	}
	n.index = (n.index - 1 + len(n.images)) % len(n.images)
}

// JumpTo selects an image directly, e.g. from a thumbnail strip.
// An out-of-range index is rejected and leaves the position unchanged.
func (n *Navigator) JumpTo(index int) bool {
	if index < 0 || index >= len(n.images) {
		return false
	}
	n.index = index
	return true
}

// HandleKey applies a keyboard shortcut while the gallery is open.
// Returns true if the key was consumed.
func (n *Navigator) HandleKey(key string) bool {
	if !n.open {
		return false
	}
	switch key {
	case KeyEscape:
		n.Close()
	case KeyArrowLeft:
		n.Previous()
	case KeyArrowRight:
		n.Next()
	default:
		return false
	}
	return true
}

// Index returns the current position.
func (n *Navigator) Index() int {
	return n.index
}

// IsOpen reports whether the gallery is shown.
func (n *Navigator) IsOpen() bool {
	return n.open
}

// Current returns the image at the current position.
func (n *Navigator) Current() (Image, bool) {
	if len(n.images) == 0 {
		return Image{}, false
	}
	return n.images[n.index], true
}

// HasControls reports whether previous/next controls make sense.
func (n *Navigator) HasControls() bool {
	return len(n.images) > 1
}

// Position renders the 1-based counter, e.g. "2 / 5".
func (n *Navigator) Position() string {
	if len(n.images) == 0 {
		return "0 / 0"
	}
	return fmt.Sprintf("%d / %d", n.index+1, len(n.images))
}
