package main

import (
	"os"
	"runtime"

	"desktop-gis/internal/config"
	"desktop-gis/internal/controllers"
	"desktop-gis/internal/geometry"
	"desktop-gis/internal/logger"
	"desktop-gis/internal/models"
	"desktop-gis/internal/render"
	"desktop-gis/internal/services"
	"desktop-gis/internal/shutdown"
	"desktop-gis/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Desktop GIS"
	AppID      = "com.desktopgis.app"
	AppVersion = "1.0.0"
)

// Application holds the wired MVC components
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  *config.Config

	controller *controllers.MainController
	view       *views.MainView
	shutdown   *shutdown.Manager
}

func main() {
	cfg := config.Load()
	application := NewApplication(cfg)

	if len(os.Args) > 1 {
		application.controller.OpenFile(os.Args[1])
	}

	application.Run()
}

// NewApplication creates the application and wires its components
func NewApplication(cfg *config.Config) *Application {
	appLogger := logger.New(logger.ParseLevel(cfg.LogLevel), cfg.JSONLogs)

	fyneApp := app.NewWithID(AppID)
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()

	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":          AppVersion,
		"go_version":       runtime.Version(),
		"log_level":        cfg.LogLevel,
		"skip_blank_lines": cfg.SkipBlankLines,
		"grid_size":        cfg.GridSize,
	})

	session := models.NewSession()
	parser := geometry.NewParser(geometry.WithSkipBlankLines(cfg.SkipBlankLines))
	docs := services.NewDocumentService(services.OSFileSystem{}, parser, session, appLogger)

	renderer := render.NewRenderer(render.Grid{
		CellSize: cfg.GridSize,
		Width:    cfg.GridWidth,
		Height:   cfg.GridHeight,
	})

	controller := controllers.NewMainController(docs, session, appLogger, cfg.StatusDuration)
	view := views.NewMainView(window, renderer, controller.Items)

	view.SetOpenPathHandler(controller.OpenFile)
	view.SetOpenReaderHandler(controller.OpenReader)
	view.SetSaveHandler(controller.SaveFile)
	view.SetDeleteHandler(controller.DeleteSelected)
	view.SetTapHandler(controller.SelectAt)
	controller.SetView(view)

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register(shutdown.ShutdownFunc(func() {
		fyne.Do(fyneApp.Quit)
	}))
	shutdownManager.Register(controller)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		config:     cfg,
		controller: controller,
		view:       view,
		shutdown:   shutdownManager,
	}

	window.SetOnClosed(func() {
		appLogger.Info("Application", "window closed", nil)
		go shutdownManager.Shutdown()
	})

	return application
}

// Run shows the window and blocks until the application quits
func (a *Application) Run() {
	a.shutdown.Listen()
	a.view.Show()
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	a.logger.Info("Application", "terminated", nil)
}
