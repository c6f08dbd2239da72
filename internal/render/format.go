package render

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"ovhtui/internal/model"
)

// absent is the sentinel shown for fields that have no value yet.
const absent = "-"

const (
	dateTimeLayout = "02 Jan 2006 15:04"
	dateLayout     = "02 Jan 2006"
)

// urlRegexp matches plain-text http/https URLs. \S in the class is avoided
// on purpose: trailing punctuation handling matches the proxy frontend.
var urlRegexp = regexp.MustCompile(`(?i)\bhttps?://[\w\-\._~:/%\?#\[\]@!$&'()*+,;=]+`)

// FormatDateTime renders the dense date+time form used for list rows.
// The zero time yields the absent sentinel.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return absent
	}
	return t.Format(dateTimeLayout)
}

// FormatDate renders the date-only form used outside the lists.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return absent
	}
	return t.Format(dateLayout)
}

// FormatRecordDateTime prefers the parsed timestamp and falls back to the
// raw upstream string when parsing failed, so no information is dropped.
func FormatRecordDateTime(t time.Time, raw string) string {
	if t.IsZero() {
		if strings.TrimSpace(raw) != "" {
			return raw
		}
		return absent
	}
	return t.Format(dateTimeLayout)
}

// OrAbsent substitutes the sentinel for empty strings.
func OrAbsent(s string) string {
	if strings.TrimSpace(s) == "" {
		return absent
	}
	return s
}

// VerificationLabel maps the KYC flag to its display label.
// A nil profile (not yet loaded) yields the sentinel.
func VerificationLabel(p *model.AccountProfile) string {
	if p == nil {
		return absent
	}
	if p.KYCValidated {
		return "verified"
	}
	return "unverified"
}

// StateLabel maps the account state to its display label: "complete"
// renders as "normal", anything else passes through verbatim.
func StateLabel(p *model.AccountProfile) string {
	if p == nil {
		return absent
	}
	if p.State == "complete" {
		return "normal"
	}
	return OrAbsent(p.State)
}

// CurrencyDisplay renders the account currency as "EUR (€)".
func CurrencyDisplay(p *model.AccountProfile) string {
	if p == nil || p.Currency.Code == "" {
		return absent
	}
	if p.Currency.Symbol == "" {
		return p.Currency.Code
	}
	return fmt.Sprintf("%s (%s)", p.Currency.Code, p.Currency.Symbol)
}

// AmountDisplay prefers the upstream display text and falls back to a
// formatted numeric value.
func AmountDisplay(a model.Amount) string {
	if strings.TrimSpace(a.Text) != "" {
		return a.Text
	}
	if a.CurrencyCode == "" {
		return fmt.Sprintf("%.2f", a.Value)
	}
	return fmt.Sprintf("%.2f %s", a.Value, a.CurrencyCode)
}

// Segment is one run of an email body: either literal text or a URL.
type Segment struct {
	Text string
	Link bool
}

// Linkify splits an email body into literal and link segments. URLs never
// span line breaks, so newlines always live inside literal segments.
// Concatenating the Text of all segments reproduces the input exactly, and
// applying Linkify to that concatenation yields the same segments again.
func Linkify(body string) []Segment {
	if body == "" {
		return nil
	}
	var segs []Segment
	last := 0
	for _, loc := range urlRegexp.FindAllStringIndex(body, -1) {
		if loc[0] > last {
			segs = append(segs, Segment{Text: body[last:loc[0]]})
		}
		segs = append(segs, Segment{Text: body[loc[0]:loc[1]], Link: true})
		last = loc[1]
	}
	if last < len(body) {
		segs = append(segs, Segment{Text: body[last:]})
	}
	return segs
}
