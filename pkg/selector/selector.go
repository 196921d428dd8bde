package selector

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/Pique/util"
	"github.com/dixieflatline76/Pique/util/log"
)

// Widget is a drop/click target that accepts a single image file per
// selection. Clicking opens the file dialog through the configured
// Source; drops arrive via HandleDrop, which the hosting window wires to
// its drop handler. Hover and loading states are purely visual.
type Widget struct {
	widget.BaseWidget

	loader     *Loader
	source     Source
	dragActive *util.SafeFlag

	zone     *canvas.Rectangle
	icon     *widget.Icon
	title    *widget.Label
	hint     *widget.Label
	activity *widget.Activity
	dimmer   *canvas.Rectangle
	busy     *fyne.Container
}

// New creates the selector widget. icon may be nil for a text-only zone.
func New(loader *Loader, source Source, icon fyne.Resource) *Widget {
	w := &Widget{
		loader:     loader,
		source:     source,
		dragActive: util.NewSafeBool(),
	}

	w.zone = canvas.NewRectangle(color.Transparent)
	w.zone.StrokeColor = theme.Color(theme.ColorNameInputBorder)
	w.zone.StrokeWidth = 2
	w.zone.CornerRadius = 8
	w.zone.SetMinSize(fyne.NewSize(340, 220))

	if icon != nil {
		w.icon = widget.NewIcon(icon)
	}

	w.title = widget.NewLabel("Click or drop an image here")
	w.title.Alignment = fyne.TextAlignCenter
	w.title.TextStyle = fyne.TextStyle{Bold: true}

	w.hint = widget.NewLabel("JPG, PNG or WebP, up to 10MB")
	w.hint.Alignment = fyne.TextAlignCenter
	w.hint.Importance = widget.LowImportance

	w.activity = widget.NewActivity()
	w.dimmer = canvas.NewRectangle(color.NRGBA{A: 0x99})
	w.busy = container.NewStack(w.dimmer, container.NewCenter(w.activity))
	w.busy.Hide()

	loader.SetLoadingHook(func(loading bool) {
		fyne.Do(func() {
			w.setBusy(loading)
		})
	})

	w.ExtendBaseWidget(w)
	return w
}

// CreateRenderer builds the widget's visual tree.
func (w *Widget) CreateRenderer() fyne.WidgetRenderer {
	items := []fyne.CanvasObject{}
	if w.icon != nil {
		items = append(items, container.NewCenter(w.icon))
	}
	items = append(items, w.title, w.hint)

	content := container.NewStack(
		w.zone,
		container.NewCenter(container.NewVBox(items...)),
		w.busy,
	)
	return widget.NewSimpleRenderer(content)
}

// Loading reports whether a selection is currently being processed.
func (w *Widget) Loading() bool {
	return w.loader.Loading()
}

// DragActive reports whether the pointer is currently over the zone.
func (w *Widget) DragActive() bool {
	return w.dragActive.Value()
}

// Open starts the dialog selection path, exactly as a tap would.
func (w *Widget) Open() {
	if w.loader.Loading() {
		return
	}
	w.source.Prompt(w.handleCandidate)
}

// Tapped opens the file dialog. Input is swallowed while loading.
func (w *Widget) Tapped(_ *fyne.PointEvent) {
	w.Open()
}

// HandleDrop processes a drop gesture. Only the first file of a
// multi-file drop is used; the rest are ignored.
func (w *Widget) HandleDrop(uris []fyne.URI) {
	w.setDragActive(false)

	if len(uris) == 0 {
		return
	}
	if len(uris) > 1 {
		log.Printf("Drop contained %d files, using the first only", len(uris))
	}
	w.selectFile(FileFromURI(uris[0]))
}

// MouseIn marks the zone hover-active.
func (w *Widget) MouseIn(_ *desktop.MouseEvent) {
	w.setDragActive(true)
}

// MouseMoved implements desktop.Hoverable.
func (w *Widget) MouseMoved(_ *desktop.MouseEvent) {
}

// MouseOut clears the hover-active state.
func (w *Widget) MouseOut() {
	w.setDragActive(false)
}

func (w *Widget) handleCandidate(f File, err error) {
	if err != nil {
		log.Printf("File dialog failed: %v", err)
		w.loader.Notify("Selection failed", "The file could not be opened.")
		return
	}
	if f == nil {
		return // cancelled
	}
	w.selectFile(f)
}

func (w *Widget) selectFile(f File) {
	// Rejections are already surfaced to the user by the loader.
	_ = w.loader.Select(f)
}

func (w *Widget) setDragActive(active bool) {
	w.dragActive.Set(active)
	if active {
		w.zone.StrokeColor = theme.Color(theme.ColorNamePrimary)
	} else {
		w.zone.StrokeColor = theme.Color(theme.ColorNameInputBorder)
	}
	w.zone.Refresh()
}

func (w *Widget) setBusy(loading bool) {
	if loading {
		w.activity.Start()
		w.busy.Show()
	} else {
		w.activity.Stop()
		w.busy.Hide()
	}
	w.Refresh()
}
