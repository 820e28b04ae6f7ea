package app

import (
	"dataplot/internal/chart"
	"dataplot/internal/config"
	"dataplot/internal/debug/timing"
	"dataplot/internal/gui"
	"dataplot/internal/logger"
	"dataplot/internal/session"
	"dataplot/internal/shutdown"
	"dataplot/internal/table"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName         = "Data Plotter"
	AppID           = "io.dataplot.dataplotter"
	AppVersion      = "1.0.0"
	MinWindowWidth  = 800
	MinWindowHeight = 760
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	shell      *session.Shell
	handlers   *Handlers
	lifecycle  *Lifecycle
	shutdown   *shutdown.Manager
	logger     logger.Logger
}

func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	return newApplication(app.NewWithID(AppID), cfg, log)
}

func newApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(MinWindowWidth, MinWindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":      AppVersion,
		"preview_rows": cfg.PreviewRows,
		"chart_size":   []float64{cfg.ChartWidth, cfg.ChartHeight},
	})

	tracker := timing.NewTracker()
	loader := table.NewLoader(cfg.Sheet, log, tracker)
	renderer := chart.NewRenderer(cfg.ChartWidth, cfg.ChartHeight, log, tracker)
	shell := session.NewShell(loader, renderer, cfg.PreviewRows, log)

	guiManager, err := gui.NewManager(window, chart.Labels(), chart.Line.Label(), log)
	if err != nil {
		return nil, err
	}

	lifecycle := NewLifecycle(guiManager, tracker, log)
	shutdownMgr := shutdown.NewManager(log)
	shutdownMgr.Register(lifecycle)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		shell:      shell,
		handlers:   NewHandlers(shell, guiManager, log),
		lifecycle:  lifecycle,
		shutdown:   shutdownMgr,
		logger:     log,
	}

	application.setupHandlers()

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() {
	a.guiManager.SetBrowseHandler(a.handlers.HandleBrowse)
	a.guiManager.SetXChangeHandler(a.handlers.HandleXChange)
	a.guiManager.SetYChangeHandler(a.handlers.HandleYChange)
	a.guiManager.SetKindChangeHandler(a.handlers.HandleKindChange)
	a.guiManager.SetPlotHandler(a.handlers.HandlePlot)
}

// Run shows the window and blocks on the fyne event loop until it closes.
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.shutdown.Shutdown()
		a.window.Close()
	})

	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	return nil
}
