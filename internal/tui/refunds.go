package tui

import (
	"fmt"

	"github.com/derailed/tview"

	"ovhtui/internal/render"
	"ovhtui/internal/services"
)

// refreshRefunds reloads the refund ledger in the background
func (a *App) refreshRefunds() {
	if list, ok := a.views["refunds"].(*tview.List); ok {
		list.SetTitle(" Refunds ⟳ ")
	}
	go func() {
		err := a.accountService.LoadRefunds(a.ctx)
		a.QueueUpdateDraw(func() {
			a.renderRefunds()
		})
		if err != nil {
			a.errorHandler.ShowLoadError(a.ctx, "refund history", err, services.UserMessage(err))
		}
	}()
}

// renderRefunds rebuilds the refund list, newest first
func (a *App) renderRefunds() {
	list, ok := a.views["refunds"].(*tview.List)
	if !ok {
		return
	}

	current := list.GetCurrentItem()
	list.Clear()

	refunds := a.accountService.Refunds()
	if len(refunds) == 0 {
		list.SetTitle(" Refunds ")
		list.AddItem("No refunds", "", 0, nil)
		return
	}

	list.SetTitle(fmt.Sprintf(" Refunds (%d) ", len(refunds)))
	width := a.listWidth()
	for _, r := range refunds {
		list.AddItem(render.FormatRefundRow(r, width), "", 0, nil)
	}
	if current >= 0 && current < list.GetItemCount() {
		list.SetCurrentItem(current)
	}
}

// redrawRefundRows reformats existing rows in place for a new width
func (a *App) redrawRefundRows() {
	list, ok := a.views["refunds"].(*tview.List)
	if !ok {
		return
	}
	refunds := a.accountService.Refunds()
	if len(refunds) == 0 || list.GetItemCount() != len(refunds) {
		return
	}
	width := a.listWidth()
	for i, r := range refunds {
		list.SetItemText(i, render.FormatRefundRow(r, width), "")
	}
}
