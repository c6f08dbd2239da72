package render

import (
	"fmt"
	"strconv"

	"github.com/mattn/go-runewidth"

	"ovhtui/internal/model"
)

// FormatEmailRow builds a fixed-column email list row: Date | Subject.
func FormatEmailRow(e model.EmailRecord, maxWidth int) string {
	if maxWidth < 30 {
		maxWidth = 30
	}
	dateWidth := 17
	// separator " | " accounts for 3 cells
	subjectWidth := maxWidth - dateWidth - 3
	if subjectWidth < 10 {
		subjectWidth = 10
	}

	subject := e.Subject
	if subject == "" {
		subject = "(no subject)"
	}

	dateText := fitWidth(FormatRecordDateTime(e.Date, e.RawDate), dateWidth)
	subjectText := fitWidth(subject, subjectWidth)

	return fmt.Sprintf("%s | %s", dateText, subjectText)
}

// FormatRefundRow builds a fixed-column refund row: Date | Order | Amount | Refund ID.
func FormatRefundRow(r model.RefundRecord, maxWidth int) string {
	if maxWidth < 40 {
		maxWidth = 40
	}
	dateWidth := 17
	orderWidth := 10
	amountWidth := 14
	idWidth := maxWidth - dateWidth - orderWidth - amountWidth - 9
	if idWidth < 8 {
		idWidth = 8
	}

	dateText := fitWidth(FormatRecordDateTime(r.Date, r.RawDate), dateWidth)
	orderText := rightFit(strconv.FormatInt(r.OrderID, 10), orderWidth)
	amountText := rightFit(AmountDisplay(r.Amount), amountWidth)
	idText := fitWidth(r.RefundID, idWidth)

	return fmt.Sprintf("%s | %s | %s | %s", dateText, orderText, amountText, idText)
}

// fitWidth truncates or pads to an exact display width, left aligned.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, "...")
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return s + spaces(pad)
	}
	return s
}

// rightFit truncates or pads to an exact display width, right aligned.
func rightFit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, "...")
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return spaces(pad) + s
	}
	return s
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
