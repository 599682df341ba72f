package gallery

import (
	"testing"

	"github.com/qaspilab/qaspilab/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func images(n int) []Image {
	out := make([]Image, n)
	for i := range out {
		out[i] = Image{Src: "/img/" + string(rune('a'+i)) + ".webp"}
	}
	return out
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name     string
		initial  int
		expected int
	}{
		{"first", 0, 0},
		{"middle", 2, 2},
		{"last", 4, 4},
		{"negative clamps to zero", -1, 0},
		{"past end clamps to zero", 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New(images(5))
			require.NoError(t, n.Open(tt.initial))
			assert.True(t, n.IsOpen())
			assert.Equal(t, tt.expected, n.Index())
		})
	}
}

func TestOpen_EmptyGallery(t *testing.T) {
	n := New(nil)

	assert.ErrorIs(t, n.Open(0), ErrEmptyGallery)
	assert.False(t, n.IsOpen())

	_, ok := n.Current()
	assert.False(t, ok)
	assert.Equal(t, "0 / 0", n.Position())

	n.Next()
	n.Previous()
	assert.Equal(t, 0, n.Index())
}

func TestWraparound(t *testing.T) {
	for _, size := range []int{1, 2, 5} {
		n := New(images(size))
		require.NoError(t, n.Open(0))

		for i := 0; i < size; i++ {
			n.Next()
		}
		assert.Equal(t, 0, n.Index(), "next %d times over %d images", size, size)

		n.Previous()
		assert.Equal(t, size-1, n.Index())
	}
}

func TestStepping(t *testing.T) {
	n := New(images(3))
	require.NoError(t, n.Open(1))

	n.Next()
	assert.Equal(t, 2, n.Index())
	n.Next()
	assert.Equal(t, 0, n.Index())
	n.Previous()
	n.Previous()
	assert.Equal(t, 1, n.Index())
	assert.Equal(t, "2 / 3", n.Position())

	img, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, "/img/b.webp", img.Src)
}

func TestClose_KeepsIndex(t *testing.T) {
	n := New(images(4))
	require.NoError(t, n.Open(2))

	n.Close()
	assert.False(t, n.IsOpen())
	assert.Equal(t, 2, n.Index())

	require.NoError(t, n.Resume())
	assert.True(t, n.IsOpen())
	assert.Equal(t, 2, n.Index())

	require.NoError(t, n.Open(0))
	assert.Equal(t, 0, n.Index())
}

func TestJumpTo(t *testing.T) {
	n := New(images(3))
	require.NoError(t, n.Open(0))

	assert.True(t, n.JumpTo(2))
	assert.Equal(t, 2, n.Index())

	assert.False(t, n.JumpTo(3))
	assert.False(t, n.JumpTo(-1))
	assert.Equal(t, 2, n.Index())
}

func TestHandleKey(t *testing.T) {
	n := New(images(3))

	assert.False(t, n.HandleKey(KeyArrowRight), "closed gallery ignores keys")
	assert.Equal(t, 0, n.Index())

	require.NoError(t, n.Open(0))
	assert.True(t, n.HandleKey(KeyArrowRight))
	assert.Equal(t, 1, n.Index())
	assert.True(t, n.HandleKey(KeyArrowLeft))
	assert.True(t, n.HandleKey(KeyArrowLeft))
	assert.Equal(t, 2, n.Index())
	assert.False(t, n.HandleKey("Enter"))

	assert.True(t, n.HandleKey(KeyEscape))
	assert.False(t, n.IsOpen())
	assert.Equal(t, 2, n.Index())
}

func TestNew_CopiesImages(t *testing.T) {
	src := images(2)
	n := New(src)
	src[0].Src = "changed"

	img, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, "/img/a.webp", img.Src)
	assert.True(t, n.HasControls())
	assert.False(t, New(images(1)).HasControls())
}

func TestFromConfig(t *testing.T) {
	got := FromConfig(config.Gallery{
		Name: "office",
		Images: []config.GalleryImage{
			{Src: "/1.webp", Alt: "one", Title: "First"},
			{Src: "/2.webp"},
		},
	})

	assert.Equal(t, []Image{
		{Src: "/1.webp", Alt: "one", Title: "First"},
		{Src: "/2.webp"},
	}, got)
}
