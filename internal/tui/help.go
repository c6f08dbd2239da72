package tui

import (
	"fmt"

	"github.com/derailed/tview"
)

// toggleHelp swaps the detail pane content with the key map and back
func (a *App) toggleHelp() {
	detail, ok := a.views["detail"].(*tview.TextView)
	if !ok {
		return
	}

	if a.showHelp {
		a.showHelp = false
		a.renderEmailDetail()
		return
	}

	a.showHelp = true
	detail.SetTitle(" Help ")
	detail.SetText(a.buildHelpText())
	detail.ScrollToBeginning()
}

// buildHelpText renders the active key map
func (a *App) buildHelpText() string {
	keys := a.Config.Keys
	return fmt.Sprintf(`Keyboard shortcuts

  %s        refresh account profile
  %s        refresh refund history
  %s        refresh email history
  %s        refresh everything
  %s        clear email selection
  Tab      cycle pane focus
  %s        toggle this help
  %s        quit
`,
		keys.RefreshProfile, keys.RefreshRefunds, keys.RefreshEmails,
		keys.RefreshAll, keys.ClearSelection, keys.Help, keys.Quit)
}
