package normalize

import (
	"testing"
	"time"

	"ovhtui/internal/ovh"
)

func TestProfile_Projection(t *testing.T) {
	raw := &ovh.RawProfile{
		Handle:       "ab1234-ovh",
		CustomerCode: "1234-5678",
		Email:        "ops@example.com",
		State:        "complete",
		KYCValidated: true,
		Currency:     ovh.RawCurrency{Code: "EUR", Symbol: "€"},
		Name:         "ignored",
	}
	p := Profile(raw)
	if p.Handle != "ab1234-ovh" || p.CustomerCode != "1234-5678" {
		t.Fatalf("unexpected projection: %+v", p)
	}
	if p.Currency.Code != "EUR" || p.Currency.Symbol != "€" {
		t.Fatalf("currency not regrouped: %+v", p.Currency)
	}
	if !p.KYCValidated || p.State != "complete" {
		t.Fatalf("flags lost in projection: %+v", p)
	}
}

func TestEmails_SortedDescending(t *testing.T) {
	raws := []ovh.RawEmail{
		{ID: 1, Subject: "old", Date: "2024-01-01"},
		{ID: 2, Subject: "new", Date: "2024-03-01"},
	}
	recs := Emails(raws)
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].ID != 2 || recs[1].ID != 1 {
		t.Fatalf("expected order [2 1], got [%d %d]", recs[0].ID, recs[1].ID)
	}
	for i := 0; i+1 < len(recs); i++ {
		if recs[i].Date.Before(recs[i+1].Date) {
			t.Fatalf("order not descending at %d", i)
		}
	}
}

func TestRefunds_EmptyInput(t *testing.T) {
	recs := Refunds(nil)
	if recs == nil {
		t.Fatal("expected non-nil empty slice")
	}
	if len(recs) != 0 {
		t.Fatalf("expected empty, got %d", len(recs))
	}
}

func TestRefunds_MalformedDateSortsOldest(t *testing.T) {
	raws := []ovh.RawRefund{
		{RefundID: "r-bad", Date: "not-a-date"},
		{RefundID: "r-old", Date: "2020-05-01 10:00:00"},
		{RefundID: "r-new", Date: "2024-05-01T10:00:00Z"},
	}
	recs := Refunds(raws)
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	if recs[0].RefundID != "r-new" || recs[1].RefundID != "r-old" || recs[2].RefundID != "r-bad" {
		t.Fatalf("unexpected order: %s %s %s", recs[0].RefundID, recs[1].RefundID, recs[2].RefundID)
	}
	if !recs[2].Date.IsZero() || recs[2].RawDate != "not-a-date" {
		t.Fatalf("malformed date should keep raw string, got %+v", recs[2])
	}
}

func TestRefunds_SkipsMissingID(t *testing.T) {
	raws := []ovh.RawRefund{
		{RefundID: "", Date: "2024-01-01"},
		{RefundID: "r-1", Date: "2024-01-01"},
	}
	recs := Refunds(raws)
	if len(recs) != 1 || recs[0].RefundID != "r-1" {
		t.Fatalf("expected only r-1, got %+v", recs)
	}
}

func TestEmails_StableForEqualDates(t *testing.T) {
	raws := []ovh.RawEmail{
		{ID: 10, Date: "2024-02-01T00:00:00Z"},
		{ID: 11, Date: "2024-02-01T00:00:00Z"},
		{ID: 12, Date: "2024-02-01T00:00:00Z"},
	}
	recs := Emails(raws)
	if recs[0].ID != 10 || recs[1].ID != 11 || recs[2].ID != 12 {
		t.Fatalf("equal dates must keep input order, got %d %d %d", recs[0].ID, recs[1].ID, recs[2].ID)
	}
}

func TestParseDate_Formats(t *testing.T) {
	cases := []struct {
		in   string
		ok   bool
		want time.Time
	}{
		{"2024-03-01T12:30:00Z", true, time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)},
		{"2024-03-01 12:30:00", true, time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)},
		{"2024-03-01", true, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"", false, time.Time{}},
		{"garbage", false, time.Time{}},
	}
	for _, c := range cases {
		got, ok := parseDate(c.in)
		if ok != c.ok {
			t.Fatalf("parseDate(%q) ok=%v, want %v", c.in, ok, c.ok)
		}
		if !got.Equal(c.want) {
			t.Fatalf("parseDate(%q)=%v, want %v", c.in, got, c.want)
		}
	}
}
