package tui

import (
	"fmt"
	"strings"

	"github.com/derailed/tview"

	"ovhtui/internal/render"
	"ovhtui/internal/services"
)

// refreshEmails reloads the notification email history in the background
func (a *App) refreshEmails() {
	if list, ok := a.views["emails"].(*tview.List); ok {
		list.SetTitle(" Emails ⟳ ")
	}
	go func() {
		err := a.accountService.LoadEmailHistory(a.ctx)
		a.QueueUpdateDraw(func() {
			a.renderEmails()
			a.renderEmailDetail()
		})
		if err != nil {
			a.errorHandler.ShowLoadError(a.ctx, "email history", err, services.UserMessage(err))
		}
	}()
}

// renderEmails rebuilds the email list, newest first. The selection is by
// id, so after a refresh the highlight is restored to the same email when
// it still exists.
func (a *App) renderEmails() {
	list, ok := a.views["emails"].(*tview.List)
	if !ok {
		return
	}

	emails := a.accountService.Emails()
	selected, hasSelected := a.accountService.SelectedEmail()

	a.mu.Lock()
	a.rebuildingEmails = true
	a.emailIDs = a.emailIDs[:0]
	for _, e := range emails {
		a.emailIDs = append(a.emailIDs, e.ID)
	}
	a.mu.Unlock()

	list.Clear()

	if len(emails) == 0 {
		list.SetTitle(" Emails ")
		list.AddItem("No emails", "", 0, nil)
	} else {
		list.SetTitle(fmt.Sprintf(" Emails (%d) ", len(emails)))
		width := a.listWidth()
		for _, e := range emails {
			list.AddItem(render.FormatEmailRow(e, width), "", 0, nil)
		}
		if hasSelected {
			for i, e := range emails {
				if e.ID == selected.ID {
					list.SetCurrentItem(i)
					break
				}
			}
		}
	}

	a.mu.Lock()
	a.rebuildingEmails = false
	a.mu.Unlock()
}

// redrawEmailRows reformats existing rows in place for a new width
func (a *App) redrawEmailRows() {
	list, ok := a.views["emails"].(*tview.List)
	if !ok {
		return
	}
	emails := a.accountService.Emails()
	if len(emails) == 0 || list.GetItemCount() != len(emails) {
		return
	}
	width := a.listWidth()
	for i, e := range emails {
		list.SetItemText(i, render.FormatEmailRow(e, width), "")
	}
}

// onEmailHighlighted reacts to the user moving the list highlight
func (a *App) onEmailHighlighted(index int) {
	a.mu.RLock()
	rebuilding := a.rebuildingEmails
	var id int64
	if index >= 0 && index < len(a.emailIDs) {
		id = a.emailIDs[index]
	}
	a.mu.RUnlock()

	if rebuilding || id == 0 {
		return
	}
	if a.accountService.SelectEmail(id) {
		a.renderEmailDetail()
	}
}

// clearSelection empties the selection slot and the detail pane
func (a *App) clearSelection() {
	a.accountService.ClearSelection()
	a.renderEmailDetail()
}

// renderEmailDetail renders the currently selected email's body with
// clickable-looking links. Literal text is escaped verbatim; only URL
// segments are wrapped in color tags, so the original body text survives
// unchanged.
func (a *App) renderEmailDetail() {
	detail, ok := a.views["detail"].(*tview.TextView)
	if !ok {
		return
	}

	rec, selected := a.accountService.SelectedEmail()
	if !selected {
		detail.SetTitle(" Email ")
		detail.SetText("No email selected")
		return
	}

	detail.SetTitle(fmt.Sprintf(" Email #%d ", rec.ID))

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s]%s[-]\n", a.theme.Frame.Title.FgColor.String(), tview.Escape(render.OrAbsent(rec.Subject))))
	sb.WriteString(tview.Escape(render.FormatRecordDateTime(rec.Date, rec.RawDate)))
	sb.WriteString("\n\n")

	linkColor := a.theme.UI.LinkColor.String()
	for _, seg := range render.Linkify(rec.Body) {
		if seg.Link {
			sb.WriteString(fmt.Sprintf("[%s::u]%s[-::-]", linkColor, tview.Escape(seg.Text)))
		} else {
			sb.WriteString(tview.Escape(seg.Text))
		}
	}

	detail.SetText(sb.String())
	detail.ScrollToBeginning()
}
