package normalize

import (
	"sort"
	"strings"
	"time"

	"ovhtui/internal/model"
	"ovhtui/internal/ovh"
)

// dateFormats are tried in order when parsing upstream timestamps.
// The proxy usually emits RFC3339 but older billing rows use the
// space-separated form, and a few only carry a day.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Profile projects a raw profile payload into the canonical snapshot.
// Straight field regrouping; no derived computation.
func Profile(raw *ovh.RawProfile) model.AccountProfile {
	return model.AccountProfile{
		Handle:       raw.Handle,
		CustomerCode: raw.CustomerCode,
		Email:        raw.Email,
		State:        raw.State,
		KYCValidated: raw.KYCValidated,
		Currency: model.Currency{
			Code:   raw.Currency.Code,
			Symbol: raw.Currency.Symbol,
		},
	}
}

// Refunds projects raw refund items and sorts them newest-first.
// Items without a refundId are skipped rather than failing the batch.
// Unparsable dates keep the raw string and sort as oldest (zero time).
// Equal timestamps retain their input order (stable sort).
func Refunds(raws []ovh.RawRefund) []model.RefundRecord {
	out := make([]model.RefundRecord, 0, len(raws))
	for _, raw := range raws {
		if strings.TrimSpace(raw.RefundID) == "" {
			continue
		}
		date, ok := parseDate(raw.Date)
		rec := model.RefundRecord{
			RefundID: raw.RefundID,
			Date:     date,
			OrderID:  raw.OrderID,
			Amount: model.Amount{
				CurrencyCode: raw.Amount.CurrencyCode,
				Text:         raw.Amount.Text,
				Value:        raw.Amount.Value,
			},
			DocumentURL: raw.DocumentURL,
		}
		if !ok {
			rec.RawDate = raw.Date
		}
		out = append(out, rec)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// Emails projects raw email-history items and sorts them newest-first,
// with the same date and stability contract as Refunds. Items without a
// positive id are skipped.
func Emails(raws []ovh.RawEmail) []model.EmailRecord {
	out := make([]model.EmailRecord, 0, len(raws))
	for _, raw := range raws {
		if raw.ID <= 0 {
			continue
		}
		date, ok := parseDate(raw.Date)
		rec := model.EmailRecord{
			ID:      raw.ID,
			Subject: raw.Subject,
			Date:    date,
			Body:    raw.Body,
		}
		if !ok {
			rec.RawDate = raw.Date
		}
		out = append(out, rec)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// parseDate parses an upstream timestamp, reporting whether it succeeded.
// Failure yields the zero time so malformed rows sort last.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
