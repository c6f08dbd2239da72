package services

import (
	"context"

	"ovhtui/internal/model"
	"ovhtui/internal/ovh"
)

// Resource identifies one of the independently loaded dashboard resources.
type Resource string

const (
	ResourceProfile Resource = "profile"
	ResourceRefunds Resource = "refunds"
	ResourceEmails  Resource = "emails"
)

// ResourceClient is the transport used to reach the account proxy.
// *ovh.Client satisfies it; tests substitute a mock.
type ResourceClient interface {
	GetProfile(ctx context.Context) (*ovh.RawProfile, error)
	GetRefunds(ctx context.Context) ([]ovh.RawRefund, error)
	GetEmailHistory(ctx context.Context) ([]ovh.RawEmail, error)
}

// AccountDataService coordinates the three dashboard fetches and owns the
// canonical state they produce. The three Load operations are independent:
// starting one never blocks or cancels the others, and a failure in one
// leaves the other two resources untouched.
type AccountDataService interface {
	// Initialize fires all three loads concurrently. Intended to be called
	// once by the hosting shell; errors are recorded per resource and
	// retrievable via LastError.
	Initialize(ctx context.Context)

	LoadProfile(ctx context.Context) error
	LoadRefunds(ctx context.Context) error
	LoadEmailHistory(ctx context.Context) error

	// Profile reports the latest snapshot and whether one has been loaded.
	Profile() (model.AccountProfile, bool)
	// Refunds returns the refund ledger, newest first.
	Refunds() []model.RefundRecord
	// Emails returns the notification email history, newest first.
	Emails() []model.EmailRecord

	IsLoading(res Resource) bool
	LastError(res Resource) error

	// SelectEmail marks the email with the given id as the current focus.
	// It reports false (and leaves the selection unchanged) when the id is
	// not present in the current email collection.
	SelectEmail(id int64) bool
	ClearSelection()
	// SelectedEmail re-resolves the selected id against the current list,
	// so a refreshed list always yields the latest record for that id.
	// A selection whose id has disappeared reads as no selection.
	SelectedEmail() (model.EmailRecord, bool)
}
