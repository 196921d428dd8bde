// Package preview displays the outcome of an image selection: a fitted
// rendition of the decoded bitmap plus a caption with its dimensions and
// encoded payload size. It only displays; editing belongs elsewhere.
package preview

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/disintegration/imaging"

	"github.com/dixieflatline76/Pique/pkg/selector"
)

// maxThumbEdge bounds the longest edge of the rendered preview.
const maxThumbEdge = 640

// Show opens a window presenting one selection result.
func Show(a fyne.App, res selector.Result) {
	win := a.NewWindow(res.Name)

	img := canvas.NewImageFromImage(Thumbnail(res.Image))
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(320, 240))

	caption := widget.NewLabel(Caption(res))
	caption.Alignment = fyne.TextAlignCenter
	caption.Importance = widget.LowImportance

	win.SetContent(container.NewBorder(nil, caption, nil, nil, img))
	win.Resize(fyne.NewSize(660, 540))
	win.CenterOnScreen()
	win.Show()
}

// Thumbnail downscales img to fit the preview box. Images already inside
// the box pass through untouched.
func Thumbnail(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= maxThumbEdge && bounds.Dy() <= maxThumbEdge {
		return img
	}
	return imaging.Fit(img, maxThumbEdge, maxThumbEdge, imaging.Lanczos)
}

// Caption summarizes a selection result for display under the preview.
func Caption(res selector.Result) string {
	bounds := res.Image.Bounds()
	return fmt.Sprintf("%s, %d x %d px, %s encoded",
		res.Name, bounds.Dx(), bounds.Dy(), formatBytes(len(res.DataURL)))
}

func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
