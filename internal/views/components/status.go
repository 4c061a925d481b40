package components

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const readyText = "Ready"

// StatusBar displays timed status messages and shape counts
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	shapeInfo   *widget.Label

	mu         sync.Mutex
	generation int
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel(readyText)
	sb.statusLabel.Wrapping = fyne.TextWrapWord
	sb.shapeInfo = widget.NewLabel("No shapes")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewBorder(
		nil, nil,
		nil,
		sb.shapeInfo,
		sb.statusLabel,
	)
}

// ShowMessage displays message, reverting to the ready text after duration.
// A zero duration keeps the message until the next one.
func (sb *StatusBar) ShowMessage(message string, duration time.Duration) {
	sb.mu.Lock()
	sb.generation++
	current := sb.generation
	sb.mu.Unlock()

	fyne.Do(func() {
		sb.statusLabel.SetText(message)
	})

	if duration <= 0 {
		return
	}
	time.AfterFunc(duration, func() {
		sb.mu.Lock()
		stale := sb.generation != current
		sb.mu.Unlock()
		if stale {
			return
		}
		fyne.Do(func() {
			sb.statusLabel.SetText(readyText)
		})
	})
}

// SetShapeInfo updates the shape count display
func (sb *StatusBar) SetShapeInfo(text string) {
	fyne.Do(func() {
		sb.shapeInfo.SetText(text)
	})
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
