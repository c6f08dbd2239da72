package tui

import (
	"fmt"

	"github.com/derailed/tview"

	"ovhtui/internal/model"
	"ovhtui/internal/render"
	"ovhtui/internal/services"
)

// refreshProfile reloads the account profile snapshot in the background
func (a *App) refreshProfile() {
	if pv, ok := a.views["profile"].(*tview.TextView); ok {
		pv.SetTitle(" Account ⟳ ")
	}
	go func() {
		err := a.accountService.LoadProfile(a.ctx)
		a.QueueUpdateDraw(func() {
			a.renderProfile()
		})
		if err != nil {
			a.errorHandler.ShowLoadError(a.ctx, "account profile", err, services.UserMessage(err))
		}
	}()
}

// renderProfile projects the latest snapshot into the account pane.
// Absent fields render as the sentinel; the pane never shows a half
// populated snapshot.
func (a *App) renderProfile() {
	pv, ok := a.views["profile"].(*tview.TextView)
	if !ok {
		return
	}
	pv.SetTitle(" Account ")

	var p *model.AccountProfile
	if snapshot, loaded := a.accountService.Profile(); loaded {
		p = &snapshot
	}

	handle, customerCode, email := "-", "-", "-"
	if p != nil {
		handle = render.OrAbsent(p.Handle)
		customerCode = render.OrAbsent(p.CustomerCode)
		email = render.OrAbsent(p.Email)
	}

	kycColor := a.theme.UI.UnverifiedColor.String()
	if p != nil && p.KYCValidated {
		kycColor = a.theme.UI.VerifiedColor.String()
	}

	text := fmt.Sprintf(
		"Handle:         %s\nCustomer code:  %s\nEmail:          %s\nState:          %s\nKYC:            [%s]%s[-]\nCurrency:       %s\n",
		tview.Escape(handle),
		tview.Escape(customerCode),
		tview.Escape(email),
		tview.Escape(render.StateLabel(p)),
		kycColor,
		render.VerificationLabel(p),
		tview.Escape(render.CurrencyDisplay(p)),
	)
	pv.SetText(text)
}
