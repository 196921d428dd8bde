package selector

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// Source prompts the platform for a candidate file and reports it back.
// A nil File with a nil error means the user cancelled.
type Source interface {
	Prompt(cb func(File, error))
}

// DialogSource opens the native fyne file-open dialog scoped to images.
type DialogSource struct {
	parent fyne.Window
}

// NewDialogSource creates a Source backed by the file dialog of parent.
func NewDialogSource(parent fyne.Window) *DialogSource {
	return &DialogSource{parent: parent}
}

// Prompt shows the file dialog. The image filter is advisory; the loader
// still checks the declared media type of whatever comes back.
func (s *DialogSource) Prompt(cb func(File, error)) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			cb(nil, err)
			return
		}
		if rc == nil {
			cb(nil, nil) // cancelled
			return
		}
		cb(newOpenedFile(rc), nil)
	}, s.parent)
	d.SetFilter(storage.NewMimeTypeFileFilter([]string{"image/*"}))
	d.Show()
}
