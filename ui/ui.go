package ui

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/dixieflatline76/Pique/asset"
	"github.com/dixieflatline76/Pique/config"
	"github.com/dixieflatline76/Pique/pkg/hotkey"
	"github.com/dixieflatline76/Pique/pkg/preview"
	"github.com/dixieflatline76/Pique/pkg/selector"
	"github.com/dixieflatline76/Pique/util"
	"github.com/dixieflatline76/Pique/util/log"
)

// PiqueApp represents the application
type PiqueApp struct {
	app      fyne.App
	win      fyne.Window
	assetMgr *asset.Manager
	prefs    fyne.Preferences
	cfg      *config.AppConfig
	picker   *selector.Widget
}

var (
	instance *PiqueApp // Singleton instance of the application
	once     sync.Once // Ensures the singleton is created only once
)

// GetInstance returns the singleton instance of the application
func GetInstance() *PiqueApp {
	once.Do(func() {
		a := app.NewWithID(config.AppID)
		instance = &PiqueApp{
			app:      a,
			assetMgr: asset.NewManager(),
			prefs:    a.Preferences(),
			cfg:      config.NewAppConfig(a.Preferences()),
		}
		instance.createMainWindow()
	})
	return instance
}

// createMainWindow builds the picker window and wires the selector into
// the window's drop handler.
func (pa *PiqueApp) createMainWindow() {
	win := pa.app.NewWindow(config.AppName)

	if appIcon, err := pa.assetMgr.GetIcon("pique.png"); err == nil {
		pa.app.SetIcon(appIcon)
		win.SetIcon(appIcon)
	}

	loader := selector.NewLoader(pa.onImageSelected, pa.notifyUser, selector.Options{
		MaxBytes: pa.cfg.GetMaxFileBytes(),
		Timeout:  pa.cfg.GetDecodeTimeout(),
	})

	uploadIcon, err := pa.assetMgr.GetIcon("upload.png")
	if err != nil {
		log.Printf("Failed to load upload icon: %v", err)
	}

	pa.picker = selector.New(loader, selector.NewDialogSource(win), uploadIcon)

	win.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		pa.picker.HandleDrop(uris)
	})

	win.SetMainMenu(pa.createMainMenu())
	win.SetContent(container.NewPadded(pa.picker))
	win.Resize(fyne.NewSize(520, 360))
	win.CenterOnScreen()

	pa.win = win
}

// createMainMenu creates the application menu
func (pa *PiqueApp) createMainMenu() *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Image...", func() {
			pa.picker.Open()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Check for Updates", func() {
			go pa.checkForUpdates()
		}),
		fyne.NewMenuItem("About Pique", func() {
			pa.showAbout()
		}),
	)

	return fyne.NewMainMenu(fileMenu, helpMenu)
}

// onImageSelected receives the decoded selection. It runs on the loader's
// pipeline goroutine, so all UI work hops to the render thread.
func (pa *PiqueApp) onImageSelected(res selector.Result) {
	log.Printf("Selected %s (%d x %d px)",
		res.Name, res.Image.Bounds().Dx(), res.Image.Bounds().Dy())
	fyne.Do(func() {
		preview.Show(pa.app, res)
	})
}

// notifyUser shows a blocking modal message over the main window.
func (pa *PiqueApp) notifyUser(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, pa.win)
	})
}

// checkForUpdates polls GitHub for a newer release and reports the result.
func (pa *PiqueApp) checkForUpdates() {
	if !pa.cfg.GetUpdateCheckEnabled() {
		return
	}

	result, err := util.CheckForUpdates(nil)
	if err != nil {
		log.Printf("Update check failed: %v", err)
		pa.notifyUser("Update Check", "Could not reach the release server.")
		return
	}

	if result.UpdateAvailable {
		pa.notifyUser("Update Available",
			fmt.Sprintf("%s %s is available (you have %s).",
				config.AppName, result.LatestVersion, result.CurrentVersion))
	} else {
		pa.notifyUser("Update Check", "You are running the latest version.")
	}
}

// addVersionWatermark adds a version watermark to the given image.
func (pa *PiqueApp) addVersionWatermark(img image.Image) (image.Image, error) {
	versionString := fmt.Sprintf("Version: %s", config.AppVersion)

	watermark := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.Transparent)

	col := color.RGBA{100, 50, 0, 200} // Dark brown with some transparency

	bounds, _ := font.BoundString(basicfont.Face7x13, versionString)
	textWidth := bounds.Max.X.Ceil()

	point := fixed.Point26_6{
		X: fixed.Int26_6((img.Bounds().Dx() - textWidth - 10) * 64),
		Y: fixed.Int26_6((img.Bounds().Dy() - 10) * 64),
	}

	d := &font.Drawer{
		Dst:  watermark,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  point,
	}
	d.DrawString(versionString)

	dst := imaging.Overlay(img, watermark, image.Pt(0, 0), 1)
	return dst, nil
}

// showAbout displays a splash-style about window.
func (pa *PiqueApp) showAbout() {
	splashImg, err := pa.assetMgr.GetImage("splash.png")
	if err != nil {
		log.Printf("Failed to load splash image: %v", err)
		return
	}

	if watermarked, err := pa.addVersionWatermark(splashImg); err == nil {
		splashImg = watermarked
	}

	img := canvas.NewImageFromImage(splashImg)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(240, 160))

	aboutText, err := pa.assetMgr.GetText("about.txt")
	if err != nil {
		log.Printf("Failed to load about text: %v", err)
		aboutText = config.AppName
	}

	text := widget.NewLabel(aboutText)
	text.Wrapping = fyne.TextWrapWord

	content := container.NewBorder(img, nil, nil, nil, container.NewVScroll(text))

	aboutWindow := pa.app.NewWindow(fmt.Sprintf("About %s", config.AppName))
	aboutWindow.SetContent(content)
	aboutWindow.Resize(fyne.NewSize(420, 380))
	aboutWindow.CenterOnScreen()
	aboutWindow.Show()
}

// Preferences returns the preferences for the application
func (pa *PiqueApp) Preferences() fyne.Preferences {
	return pa.prefs
}

// Run shows the main window and runs the application
func (pa *PiqueApp) Run() {
	if pa.cfg.GetHotkeyEnabled() {
		hotkey.StartListener(func() {
			fyne.Do(pa.picker.Open)
		})
	}

	pa.win.Show()
	pa.app.Run()
}
