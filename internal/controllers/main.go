package controllers

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"desktop-gis/internal/geometry"
	"desktop-gis/internal/logger"
	"desktop-gis/internal/metrics"
	"desktop-gis/internal/models"
	"desktop-gis/internal/render"
	"desktop-gis/internal/services"
)

// View is the part of the main window the controller drives
type View interface {
	SetFilePath(path string)
	ShowStatus(message string, duration time.Duration)
	SetStoreStats(stats models.StoreStats)
	RefreshMap()
}

// MainController connects the document service and session to the view
type MainController struct {
	docs           *services.DocumentService
	session        *models.Session
	logger         logger.Logger
	statusDuration time.Duration
	timings        *metrics.Tracker

	view View

	// File operations run off the UI goroutine, one at a time, in the
	// order they were requested
	queueMu  sync.Mutex
	queue    []func()
	draining bool
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewMainController creates a new main controller
func NewMainController(docs *services.DocumentService, session *models.Session, log logger.Logger, statusDuration time.Duration) *MainController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &MainController{
		docs:           docs,
		session:        session,
		logger:         log,
		statusDuration: statusDuration,
		timings:        metrics.NewTracker(),
		ctx:            ctx,
		cancel:         cancel,
	}
}

// SetView associates the view with this controller
func (mc *MainController) SetView(view View) {
	mc.view = view
	mc.updateView()
}

// OpenFile loads the file at path in the background
func (mc *MainController) OpenFile(path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		return
	}

	mc.background(func() {
		done := mc.timings.Start("load")
		result, err := mc.docs.Load(mc.ctx, path)
		done()
		mc.finishLoad(path, result, err)
	})
}

// OpenReader loads a document from reader, which is closed afterwards
func (mc *MainController) OpenReader(path string, reader io.ReadCloser) {
	mc.background(func() {
		defer reader.Close()
		done := mc.timings.Start("load")
		result, err := mc.docs.LoadReader(mc.ctx, path, reader)
		done()
		mc.finishLoad(path, result, err)
	})
}

func (mc *MainController) finishLoad(path string, result *services.LoadResult, err error) {
	if err == nil {
		fields := map[string]interface{}{
			"path":        path,
			"status":      result.Status.String(),
			"shapes":      result.ShapeCount,
			"diagnostics": len(result.Diagnostics),
			"load_time":   result.LoadTime.String(),
		}
		mc.logger.Info("MainController", "document loaded", fields)
	}

	if mc.view == nil {
		return
	}
	if err == nil && result.Status != services.LoadEmpty {
		mc.view.SetFilePath(mc.session.FilePath())
	}
	mc.view.ShowStatus(services.LoadMessage(result, err), mc.statusDuration)
	mc.updateView()
}

// Items returns the shapes to draw with their selection state
func (mc *MainController) Items() []render.Item {
	shapes := mc.session.Store().Shapes()
	items := make([]render.Item, len(shapes))
	for i, s := range shapes {
		items[i] = render.Item{Record: s.Record, Selected: mc.session.IsSelected(s.ID)}
	}
	return items
}

// SelectAt toggles the topmost shape under p. A miss clears the selection.
func (mc *MainController) SelectAt(p geometry.Vertex, tolerance float64) {
	shape, ok := mc.session.Store().TopmostAt(p, tolerance)
	if ok {
		selected := mc.session.ToggleSelected(shape.ID)
		mc.logger.Debug("MainController", "selection toggled", map[string]interface{}{
			"id":       shape.ID,
			"kind":     shape.Record.Kind().String(),
			"selected": selected,
		})
	} else {
		mc.session.ClearSelection()
	}

	if mc.view != nil {
		mc.view.RefreshMap()
	}
}

// DeleteSelected removes the selected shapes. The file is not written.
func (mc *MainController) DeleteSelected() {
	removed := mc.session.DeleteSelected()
	if removed == 0 {
		return
	}

	mc.logger.Info("MainController", "shapes deleted", map[string]interface{}{
		"removed":   removed,
		"remaining": mc.session.Store().Len(),
	})
	mc.updateView()
}

// SaveFile writes the store to the open file in the background
func (mc *MainController) SaveFile() {
	mc.background(func() {
		done := mc.timings.Start("save")
		err := mc.docs.Save(mc.ctx)
		done()
		if err != nil {
			mc.logger.Warning("MainController", "save failed", map[string]interface{}{
				"path":  mc.session.FilePath(),
				"error": err.Error(),
			})
		}
		if mc.view != nil {
			mc.view.ShowStatus(services.SaveMessage(err), mc.statusDuration)
		}
	})
}

// Wait blocks until pending file operations finish
func (mc *MainController) Wait() {
	mc.wg.Wait()
}

// Shutdown cancels pending file operations and waits for them
func (mc *MainController) Shutdown() {
	mc.cancel()
	mc.wg.Wait()

	for _, s := range mc.timings.Summaries() {
		mc.logger.Info("MainController", "operation timings", map[string]interface{}{
			"operation": s.Operation,
			"count":     s.Count,
			"average":   s.Average.String(),
			"max":       s.Max.String(),
		})
	}
	mc.logger.Info("MainController", "controller stopped", nil)
}

// Timings returns the load and save duration tracker
func (mc *MainController) Timings() *metrics.Tracker {
	return mc.timings
}

// background queues fn behind any pending file operation
func (mc *MainController) background(fn func()) {
	mc.wg.Add(1)

	mc.queueMu.Lock()
	defer mc.queueMu.Unlock()
	mc.queue = append(mc.queue, fn)
	if !mc.draining {
		mc.draining = true
		go mc.drain()
	}
}

func (mc *MainController) drain() {
	for {
		mc.queueMu.Lock()
		if len(mc.queue) == 0 {
			mc.draining = false
			mc.queueMu.Unlock()
			return
		}
		fn := mc.queue[0]
		mc.queue[0] = nil
		mc.queue = mc.queue[1:]
		mc.queueMu.Unlock()

		fn()
		mc.wg.Done()
	}
}

func (mc *MainController) updateView() {
	if mc.view == nil {
		return
	}
	mc.view.SetStoreStats(mc.session.Store().GetStats())
	mc.view.RefreshMap()
}
