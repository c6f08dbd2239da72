package tui

import (
	"log"
	"os"
	"path/filepath"

	"ovhtui/internal/config"
)

type appLog struct {
	logger  *log.Logger
	logFile *os.File
}

// initLogger opens the file logger. Log output never goes to the terminal;
// it would fight the UI for the screen.
func (a *App) initLogger() {
	if a.logging.logger != nil {
		return
	}
	path := config.DefaultLogPath()
	if a.Config != nil && a.Config.LogFile != "" {
		path = a.Config.LogFile
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) // #nosec G304
	if err != nil {
		return
	}
	a.logging.logFile = f
	a.logging.logger = log.New(f, "[ovhtui] ", log.LstdFlags|log.Lmicroseconds)
}

// closeLogger closes the log file if opened
func (a *App) closeLogger() {
	if a.logging.logFile != nil {
		_ = a.logging.logFile.Close()
		a.logging.logFile = nil
	}
}
