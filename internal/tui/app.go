package tui

import (
	"context"
	"sync"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"ovhtui/internal/config"
	"ovhtui/internal/services"
)

// App encapsulates the terminal UI and the account data service
type App struct {
	*tview.Application
	Config *config.Config

	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.RWMutex
	views map[string]tview.Primitive
	root  *tview.Flex

	accountService services.AccountDataService
	errorHandler   *ErrorHandler
	theme          *config.ColorsConfig

	logging appLog

	// State management
	emailIDs         []int64 // list row -> email id, current render order
	rebuildingEmails bool
	showHelp         bool
	currentFocus     string
	uiReady          bool
	screenWidth      int
	screenHeight     int
}

// NewApp builds the dashboard around an account proxy client
func NewApp(client services.ResourceClient, cfg *config.Config) *App {
	ctx, cancel := context.WithCancel(context.Background())

	app := &App{
		Application:  tview.NewApplication(),
		Config:       cfg,
		ctx:          ctx,
		cancel:       cancel,
		views:        make(map[string]tview.Primitive),
		currentFocus: "emails",
	}

	app.initLogger()
	app.loadTheme()
	app.accountService = services.NewAccountDataService(client, app.logging.logger)

	app.initViews()
	app.initLayout()

	status, _ := app.views["status"].(*tview.TextView)
	app.errorHandler = NewErrorHandler(app.Application, app, status, app.logging.logger)

	app.bindKeys()

	// Track first draw and resize; reformat list rows when width changes
	app.SetBeforeDrawFunc(func(screen tcell.Screen) bool {
		if !app.uiReady {
			app.uiReady = true
		}
		w, h := screen.Size()
		if w != app.screenWidth || h != app.screenHeight {
			app.screenWidth, app.screenHeight = w, h
			app.reformatLists()
		}
		return false
	})

	return app
}

// Run starts the application: the three initial loads are fired
// back-to-back and the event loop takes over.
func (a *App) Run() error {
	defer a.closeLogger()
	defer a.cancel()

	a.SetRoot(a.root, true)
	a.SetFocus(a.views["emails"])

	a.initialize()

	return a.Application.Run()
}

// initialize is the explicit entry point that triggers the initial fetches.
// Each refresh is independent; none blocks the others.
func (a *App) initialize() {
	a.refreshProfile()
	a.refreshRefunds()
	a.refreshEmails()
}

// loadTheme resolves the configured theme, falling back to the built-in
// palette when the file is missing or malformed.
func (a *App) loadTheme() {
	a.theme = config.DefaultColorsConfig()
	if a.Config == nil || a.Config.Theme == "" {
		return
	}
	loader := config.NewThemeLoader(config.DefaultThemesDir())
	if theme, err := loader.LoadThemeFromFile(a.Config.Theme); err == nil {
		a.theme = theme
	} else if a.logging.logger != nil {
		a.logging.logger.Printf("theme %q not loaded, using defaults: %v", a.Config.Theme, err)
	}
}

// getStatusColor maps a status kind to its theme color
func (a *App) getStatusColor(kind string) tcell.Color {
	switch kind {
	case "warning":
		return a.theme.UI.WarningColor.Color()
	case "error":
		return a.theme.UI.ErrorColor.Color()
	case "success":
		return a.theme.UI.SuccessColor.Color()
	default:
		return a.theme.UI.InfoColor.Color()
	}
}

// listWidth estimates the usable row width of the right-hand lists
func (a *App) listWidth() int {
	// Half the screen minus borders; before the first draw fall back to 80
	if a.screenWidth <= 0 {
		return 80
	}
	w := a.screenWidth/2 - 4
	if w < 30 {
		w = 30
	}
	return w
}
