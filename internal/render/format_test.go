package render

import (
	"strings"
	"testing"
	"time"

	"ovhtui/internal/model"
)

func TestLinkify_MultipleURLs(t *testing.T) {
	body := "see http://a.com and http://b.com end"
	segs := Linkify(body)
	if len(segs) != 5 {
		t.Fatalf("expected 5 segments, got %d: %+v", len(segs), segs)
	}
	want := []Segment{
		{Text: "see "},
		{Text: "http://a.com", Link: true},
		{Text: " and "},
		{Text: "http://b.com", Link: true},
		{Text: " end"},
	}
	for i, w := range want {
		if segs[i] != w {
			t.Fatalf("segment %d = %+v, want %+v", i, segs[i], w)
		}
	}
}

func TestLinkify_ContentPreserving(t *testing.T) {
	bodies := []string{
		"",
		"no links at all",
		"https://only-a-link.example.com/path?x=1",
		"line one https://a.example\nline two plain\nline three http://b.example tail",
		"trailing url https://x.example.com",
	}
	for _, body := range bodies {
		var sb strings.Builder
		for _, seg := range Linkify(body) {
			sb.WriteString(seg.Text)
		}
		if sb.String() != body {
			t.Fatalf("reconstruction mismatch:\n got %q\nwant %q", sb.String(), body)
		}
	}
}

func TestLinkify_Idempotent(t *testing.T) {
	body := "visit https://example.com/a and http://example.org/b\nsecond line"
	first := Linkify(body)
	var sb strings.Builder
	for _, seg := range first {
		sb.WriteString(seg.Text)
	}
	second := Linkify(sb.String())
	if len(first) != len(second) {
		t.Fatalf("segment count changed: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("segment %d changed: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestLinkify_URLsNeverSpanLines(t *testing.T) {
	body := "https://a.example\nhttps://b.example"
	segs := Linkify(body)
	for _, seg := range segs {
		if seg.Link && strings.Contains(seg.Text, "\n") {
			t.Fatalf("link segment spans line break: %q", seg.Text)
		}
	}
}

func TestFormatDateTime_ZeroIsSentinel(t *testing.T) {
	if got := FormatDateTime(time.Time{}); got != "-" {
		t.Fatalf("expected sentinel, got %q", got)
	}
	ts := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	if got := FormatDateTime(ts); got != "01 Mar 2024 12:30" {
		t.Fatalf("unexpected dense format: %q", got)
	}
	if got := FormatDate(ts); got != "01 Mar 2024" {
		t.Fatalf("unexpected date-only format: %q", got)
	}
}

func TestFormatRecordDateTime_FallsBackToRaw(t *testing.T) {
	if got := FormatRecordDateTime(time.Time{}, "31/12/2023"); got != "31/12/2023" {
		t.Fatalf("expected raw fallback, got %q", got)
	}
	if got := FormatRecordDateTime(time.Time{}, ""); got != "-" {
		t.Fatalf("expected sentinel, got %q", got)
	}
}

func TestProfileLabels(t *testing.T) {
	if got := VerificationLabel(nil); got != "-" {
		t.Fatalf("nil profile should be sentinel, got %q", got)
	}
	p := &model.AccountProfile{State: "complete", KYCValidated: true}
	if got := VerificationLabel(p); got != "verified" {
		t.Fatalf("expected verified, got %q", got)
	}
	p.KYCValidated = false
	if got := VerificationLabel(p); got != "unverified" {
		t.Fatalf("expected unverified, got %q", got)
	}
	if got := StateLabel(p); got != "normal" {
		t.Fatalf("complete state should render normal, got %q", got)
	}
	p.State = "suspended"
	if got := StateLabel(p); got != "suspended" {
		t.Fatalf("non-complete state should pass through, got %q", got)
	}
}

func TestCurrencyAndAmountDisplay(t *testing.T) {
	if got := CurrencyDisplay(nil); got != "-" {
		t.Fatalf("expected sentinel, got %q", got)
	}
	p := &model.AccountProfile{Currency: model.Currency{Code: "EUR", Symbol: "€"}}
	if got := CurrencyDisplay(p); got != "EUR (€)" {
		t.Fatalf("unexpected currency display: %q", got)
	}
	a := model.Amount{Text: "12,34 €"}
	if got := AmountDisplay(a); got != "12,34 €" {
		t.Fatalf("display text should win: %q", got)
	}
	a = model.Amount{CurrencyCode: "EUR", Value: 12.5}
	if got := AmountDisplay(a); got != "12.50 EUR" {
		t.Fatalf("unexpected numeric fallback: %q", got)
	}
}

func TestFormatRefundRow_Width(t *testing.T) {
	r := model.RefundRecord{
		RefundID: "r-123456",
		Date:     time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		OrderID:  987654,
		Amount:   model.Amount{Text: "12,34 €"},
	}
	row := FormatRefundRow(r, 60)
	if !strings.Contains(row, "r-123456") || !strings.Contains(row, "987654") {
		t.Fatalf("row missing fields: %q", row)
	}
}
