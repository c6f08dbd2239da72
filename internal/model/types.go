package model

import "time"

// Currency is the billing currency attached to the account profile.
type Currency struct {
	Code   string
	Symbol string
}

// AccountProfile is the canonical snapshot of the provider account.
// It is either absent or complete; partial snapshots are never stored.
type AccountProfile struct {
	Handle       string
	CustomerCode string
	Email        string
	State        string
	KYCValidated bool
	Currency     Currency
}

// Amount carries the upstream representations of a refund amount.
type Amount struct {
	CurrencyCode string
	Text         string
	Value        float64
}

// RefundRecord is one refund transaction from the account ledger.
// RawDate keeps the upstream string when Date could not be parsed.
type RefundRecord struct {
	RefundID    string
	Date        time.Time
	RawDate     string
	OrderID     int64
	Amount      Amount
	DocumentURL string
}

// EmailRecord is one notification email sent by the provider.
type EmailRecord struct {
	ID      int64
	Subject string
	Date    time.Time
	RawDate string
	Body    string
}
