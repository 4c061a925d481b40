package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the file path entry and the file buttons
type Toolbar struct {
	container    *fyne.Container
	pathEntry    *widget.Entry
	browseButton *widget.Button
	saveButton   *widget.Button

	// Event handlers
	openPathHandler func(string)
	browseHandler   func()
	saveHandler     func()
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.pathEntry = widget.NewEntry()
	t.pathEntry.SetPlaceHolder("Enter a file path or choose one with Browse...")
	t.pathEntry.OnSubmitted = func(path string) {
		if t.openPathHandler != nil && path != "" {
			t.openPathHandler(path)
		}
	}

	t.browseButton = widget.NewButton("Browse", func() {
		if t.browseHandler != nil {
			t.browseHandler()
		}
	})

	t.saveButton = widget.NewButton("Save", func() {
		if t.saveHandler != nil {
			t.saveHandler()
		}
	})
	t.saveButton.Importance = widget.HighImportance
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewBorder(
		nil, nil,
		nil,
		container.NewHBox(t.browseButton, t.saveButton),
		t.pathEntry,
	)
}

func (t *Toolbar) SetOpenPathHandler(handler func(string)) {
	t.openPathHandler = handler
}

func (t *Toolbar) SetBrowseHandler(handler func()) {
	t.browseHandler = handler
}

func (t *Toolbar) SetSaveHandler(handler func()) {
	t.saveHandler = handler
}

// SetPath shows path in the entry
func (t *Toolbar) SetPath(path string) {
	t.pathEntry.SetText(path)
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
