package tui

import "fmt"

// statusBaseline is the status bar text when nothing else is showing
func (a *App) statusBaseline() string {
	keys := a.Config.Keys
	return fmt.Sprintf("OVH TUI | %s/%s/%s refresh | %s refresh all | %s help | %s quit",
		keys.RefreshProfile, keys.RefreshRefunds, keys.RefreshEmails,
		keys.RefreshAll, keys.Help, keys.Quit)
}
