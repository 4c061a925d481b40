package views

import (
	"fmt"
	"io"
	"time"

	"desktop-gis/internal/geometry"
	"desktop-gis/internal/models"
	"desktop-gis/internal/render"
	"desktop-gis/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
)

// MainView is the application window: path entry, map and status bar
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	mapCanvas     *components.MapCanvas
	statusBar     *components.StatusBar

	// Event handlers - connected to controller
	openPathHandler   func(string)
	openReaderHandler func(path string, reader io.ReadCloser)
	saveHandler       func()
	deleteHandler     func()
	tapHandler        func(geometry.Vertex, float64)
}

// NewMainView creates the main view. items supplies the shapes to draw.
func NewMainView(window fyne.Window, renderer *render.Renderer, items func() []render.Item) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents(renderer, items)
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents(renderer *render.Renderer, items func() []render.Item) {
	mv.toolbar = components.NewToolbar()
	mv.mapCanvas = components.NewMapCanvas(renderer, items)
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		mv.toolbar.GetContainer(),   // top
		mv.statusBar.GetContainer(), // bottom
		nil,                         // left
		nil,                         // right
		mv.mapCanvas,                // center
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetOpenPathHandler(func(path string) {
		mv.releaseFocus()
		if mv.openPathHandler != nil {
			mv.openPathHandler(path)
		}
	})
	mv.toolbar.SetBrowseHandler(mv.showOpenDialog)
	mv.toolbar.SetSaveHandler(func() {
		if mv.saveHandler != nil {
			mv.saveHandler()
		}
	})

	mv.mapCanvas.SetTapHandler(func(world geometry.Vertex, tolerance float64) {
		mv.releaseFocus()
		if mv.tapHandler != nil {
			mv.tapHandler(world, tolerance)
		}
	})

	mv.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyDelete && mv.deleteHandler != nil {
			mv.deleteHandler()
		}
	})

	saveShortcut := &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierControl}
	mv.window.Canvas().AddShortcut(saveShortcut, func(fyne.Shortcut) {
		if mv.saveHandler != nil {
			mv.saveHandler()
		}
	})
}

// releaseFocus takes keyboard focus away from the path entry so window
// level keys such as Delete reach the canvas handler.
func (mv *MainView) releaseFocus() {
	mv.window.Canvas().Unfocus()
}

func (mv *MainView) showOpenDialog() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mv.ShowError("Open failed", err)
			return
		}
		if reader == nil {
			return
		}

		path := reader.URI().Path()
		mv.toolbar.SetPath(path)
		mv.releaseFocus()
		if mv.openReaderHandler != nil {
			mv.openReaderHandler(path, reader)
			return
		}
		reader.Close()
	}, mv.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".txt"}))
	fd.Show()
}

// Event handler setters - called by controller

func (mv *MainView) SetOpenPathHandler(handler func(string)) {
	mv.openPathHandler = handler
}

func (mv *MainView) SetOpenReaderHandler(handler func(path string, reader io.ReadCloser)) {
	mv.openReaderHandler = handler
}

func (mv *MainView) SetSaveHandler(handler func()) {
	mv.saveHandler = handler
}

func (mv *MainView) SetDeleteHandler(handler func()) {
	mv.deleteHandler = handler
}

func (mv *MainView) SetTapHandler(handler func(geometry.Vertex, float64)) {
	mv.tapHandler = handler
}

// UI update methods - called by controller

// SetFilePath shows path in the path entry
func (mv *MainView) SetFilePath(path string) {
	fyne.Do(func() {
		mv.toolbar.SetPath(path)
	})
}

// ShowStatus shows message in the status bar for duration
func (mv *MainView) ShowStatus(message string, duration time.Duration) {
	mv.statusBar.ShowMessage(message, duration)
}

// RefreshMap redraws the map
func (mv *MainView) RefreshMap() {
	fyne.Do(func() {
		mv.mapCanvas.Refresh()
	})
}

// SetStoreStats updates the shape counts in the status bar
func (mv *MainView) SetStoreStats(stats models.StoreStats) {
	if stats.Total == 0 {
		mv.statusBar.SetShapeInfo("No shapes")
		return
	}
	mv.statusBar.SetShapeInfo(fmt.Sprintf("Shapes: %d (%d points, %d segments, %d polygons)",
		stats.Total, stats.Points, stats.Segments, stats.Polygons))
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(title string, err error) {
	fyne.Do(func() {
		dialog.ShowError(fmt.Errorf("%s: %w", title, err), mv.window)
	})
}

// Show displays the window
func (mv *MainView) Show() {
	mv.window.Show()
}
