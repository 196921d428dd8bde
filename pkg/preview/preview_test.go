package preview

import (
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dixieflatline76/Pique/pkg/selector"
)

func TestThumbnail_PassThrough(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 80))
	out := Thumbnail(img)
	assert.Equal(t, img.Bounds(), out.Bounds(), "small images should not be resampled")
}

func TestThumbnail_Downscale(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3200, 1600))
	out := Thumbnail(img)

	bounds := out.Bounds()
	assert.Equal(t, 640, bounds.Dx())
	assert.Equal(t, 320, bounds.Dy(), "aspect ratio must be preserved")
}

func TestCaption(t *testing.T) {
	res := selector.Result{
		Name:    "photo.png",
		DataURL: strings.Repeat("a", 2048),
		Image:   image.NewRGBA(image.Rect(0, 0, 50, 50)),
	}

	caption := Caption(res)
	assert.Contains(t, caption, "photo.png")
	assert.Contains(t, caption, "50 x 50 px")
	assert.Contains(t, caption, "2.0 KB")
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "1.0 KB", formatBytes(1024))
	assert.Equal(t, "1.5 MB", formatBytes(3<<20/2))
}
