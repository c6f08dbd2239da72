package tui

import (
	"github.com/derailed/tcell/v2"
)

// bindKeys installs the application-level key map
func (a *App) bindKeys() {
	keys := a.Config.Keys

	a.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyTab {
			a.cycleFocus()
			return nil
		}
		if event.Key() != tcell.KeyRune {
			return event
		}

		switch string(event.Rune()) {
		case keys.Quit:
			a.Stop()
			return nil
		case keys.Help:
			a.toggleHelp()
			return nil
		case keys.RefreshAll:
			a.refreshProfile()
			a.refreshRefunds()
			a.refreshEmails()
			return nil
		case keys.RefreshProfile:
			a.refreshProfile()
			return nil
		case keys.RefreshRefunds:
			a.refreshRefunds()
			return nil
		case keys.RefreshEmails:
			a.refreshEmails()
			return nil
		case keys.ClearSelection:
			a.clearSelection()
			return nil
		}
		return event
	})
}
