package tui

import (
	"github.com/derailed/tview"
)

// initViews creates the dashboard primitives
func (a *App) initViews() {
	profile := tview.NewTextView()
	profile.SetDynamicColors(true)
	profile.SetBorder(true)
	profile.SetTitle(" Account ")
	a.styleBox(profile)
	a.views["profile"] = profile

	refunds := tview.NewList()
	refunds.ShowSecondaryText(false)
	refunds.SetBorder(true)
	refunds.SetTitle(" Refunds ")
	a.styleBox(refunds)
	a.views["refunds"] = refunds

	emails := tview.NewList()
	emails.ShowSecondaryText(false)
	emails.SetBorder(true)
	emails.SetTitle(" Emails ")
	emails.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		a.onEmailHighlighted(index)
	})
	a.styleBox(emails)
	a.views["emails"] = emails

	detail := tview.NewTextView()
	detail.SetDynamicColors(true)
	detail.SetWrap(true)
	detail.SetScrollable(true)
	detail.SetBorder(true)
	detail.SetTitle(" Email ")
	a.styleBox(detail)
	a.views["detail"] = detail

	status := tview.NewTextView()
	status.SetDynamicColors(true)
	status.SetText(a.statusBaseline())
	a.views["status"] = status
}

// styleBox applies the theme palette to a bordered primitive
func (a *App) styleBox(p tview.Primitive) {
	switch v := p.(type) {
	case *tview.TextView:
		v.SetBorderColor(a.theme.Frame.Border.FgColor.Color())
		v.SetTitleColor(a.theme.Frame.Title.FgColor.Color())
		v.SetBackgroundColor(a.theme.Body.BgColor.Color())
		v.SetTextColor(a.theme.Body.FgColor.Color())
	case *tview.List:
		v.SetBorderColor(a.theme.Frame.Border.FgColor.Color())
		v.SetTitleColor(a.theme.Frame.Title.FgColor.Color())
		v.SetBackgroundColor(a.theme.Body.BgColor.Color())
		v.SetMainTextColor(a.theme.Body.FgColor.Color())
		v.SetSelectedBackgroundColor(a.theme.Frame.Border.FocusColor.Color())
	}
}

// initLayout composes the panes: account + refunds on the left, email
// history and the selected email's body on the right, status bar below.
func (a *App) initLayout() {
	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.views["profile"], 10, 0, false).
		AddItem(a.views["refunds"], 0, 1, false)

	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.views["emails"], 0, 1, true).
		AddItem(a.views["detail"], 0, 1, false)

	content := tview.NewFlex().
		AddItem(left, 0, 1, false).
		AddItem(right, 0, 1, true)

	a.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(content, 0, 1, true).
		AddItem(a.views["status"], 1, 0, false)
}

// reformatLists recalculates list rows for the current screen width.
// Called from the draw path, so it must never queue updates.
func (a *App) reformatLists() {
	a.redrawRefundRows()
	a.redrawEmailRows()
}

// cycleFocus moves focus between the interactive panes
func (a *App) cycleFocus() {
	order := []string{"emails", "detail", "refunds"}
	next := order[0]
	for i, name := range order {
		if name == a.currentFocus {
			next = order[(i+1)%len(order)]
			break
		}
	}
	a.currentFocus = next
	a.SetFocus(a.views[next])
}
