package services

import (
	"context"
	"log"
	"sync"

	"ovhtui/internal/model"
	"ovhtui/internal/normalize"
)

// resourceState tracks the fetch lifecycle of a single resource.
// gen is a monotonic generation counter: every issued request bumps it,
// and a response is applied only if it still carries the latest generation.
// That discards stale in-flight responses when a refresh is re-triggered
// while an older request is still pending.
type resourceState struct {
	gen     uint64
	loading bool
	err     error
}

// AccountDataServiceImpl implements AccountDataService
type AccountDataServiceImpl struct {
	client ResourceClient
	logger *log.Logger

	mu     sync.RWMutex
	states map[Resource]*resourceState

	profile *model.AccountProfile
	refunds []model.RefundRecord
	emails  []model.EmailRecord

	selectedID   int64
	hasSelection bool
}

// NewAccountDataService creates the fetch coordinator for the dashboard.
// logger may be nil.
func NewAccountDataService(client ResourceClient, logger *log.Logger) *AccountDataServiceImpl {
	return &AccountDataServiceImpl{
		client: client,
		logger: logger,
		states: map[Resource]*resourceState{
			ResourceProfile: {},
			ResourceRefunds: {},
			ResourceEmails:  {},
		},
	}
}

// Initialize fires the three initial loads back-to-back without awaiting
// one another; they may complete in any order.
func (s *AccountDataServiceImpl) Initialize(ctx context.Context) {
	go func() { _ = s.LoadProfile(ctx) }()
	go func() { _ = s.LoadRefunds(ctx) }()
	go func() { _ = s.LoadEmailHistory(ctx) }()
}

// LoadProfile fetches and replaces the account profile snapshot.
func (s *AccountDataServiceImpl) LoadProfile(ctx context.Context) error {
	gen := s.begin(ResourceProfile)
	raw, err := s.client.GetProfile(ctx)
	if err != nil {
		s.fail(ResourceProfile, gen, err)
		return err
	}
	p := normalize.Profile(raw)
	s.apply(ResourceProfile, gen, func() { s.profile = &p })
	return nil
}

// LoadRefunds fetches and replaces the refund ledger.
func (s *AccountDataServiceImpl) LoadRefunds(ctx context.Context) error {
	gen := s.begin(ResourceRefunds)
	raws, err := s.client.GetRefunds(ctx)
	if err != nil {
		s.fail(ResourceRefunds, gen, err)
		return err
	}
	recs := normalize.Refunds(raws)
	s.apply(ResourceRefunds, gen, func() { s.refunds = recs })
	return nil
}

// LoadEmailHistory fetches and replaces the notification email history.
func (s *AccountDataServiceImpl) LoadEmailHistory(ctx context.Context) error {
	gen := s.begin(ResourceEmails)
	raws, err := s.client.GetEmailHistory(ctx)
	if err != nil {
		s.fail(ResourceEmails, gen, err)
		return err
	}
	recs := normalize.Emails(raws)
	s.apply(ResourceEmails, gen, func() { s.emails = recs })
	return nil
}

// begin issues a new generation for the resource and raises its loading flag.
func (s *AccountDataServiceImpl) begin(res Resource) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.states[res]
	st.gen++
	st.loading = true
	return st.gen
}

// apply commits a successful response if it is still the latest generation.
// A stale response is dropped whole: it neither touches canonical state nor
// the loading flag, which is owned by the newer in-flight request.
func (s *AccountDataServiceImpl) apply(res Resource, gen uint64, commit func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.states[res]
	if gen != st.gen {
		if s.logger != nil {
			s.logger.Printf("discarding stale %s response (gen %d, latest %d)", res, gen, st.gen)
		}
		return
	}
	st.loading = false
	st.err = nil
	commit()
}

// fail records a failure, leaving last-known-good state untouched.
func (s *AccountDataServiceImpl) fail(res Resource, gen uint64, err error) {
	if s.logger != nil {
		s.logger.Printf("load %s failed: %v", res, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.states[res]
	if gen != st.gen {
		return
	}
	st.loading = false
	st.err = err
}

func (s *AccountDataServiceImpl) Profile() (model.AccountProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return model.AccountProfile{}, false
	}
	return *s.profile, true
}

func (s *AccountDataServiceImpl) Refunds() []model.RefundRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refunds
}

func (s *AccountDataServiceImpl) Emails() []model.EmailRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.emails
}

func (s *AccountDataServiceImpl) IsLoading(res Resource) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st, ok := s.states[res]; ok {
		return st.loading
	}
	return false
}

func (s *AccountDataServiceImpl) LastError(res Resource) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st, ok := s.states[res]; ok {
		return st.err
	}
	return nil
}

// SelectEmail sets the selection if the id exists in the current list.
func (s *AccountDataServiceImpl) SelectEmail(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.emails {
		if rec.ID == id {
			s.selectedID = id
			s.hasSelection = true
			return true
		}
	}
	return false
}

// ClearSelection empties the selection slot.
func (s *AccountDataServiceImpl) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hasSelection = false
	s.selectedID = 0
}

// SelectedEmail resolves the selected id against the current collection.
// The selection is held by id, never by captured copy, so a refreshed list
// always yields its latest record. An id that has since disappeared is
// reported as no selection; the slot itself is kept until the next
// interaction replaces or clears it.
func (s *AccountDataServiceImpl) SelectedEmail() (model.EmailRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasSelection {
		return model.EmailRecord{}, false
	}
	for _, rec := range s.emails {
		if rec.ID == s.selectedID {
			return rec, true
		}
	}
	return model.EmailRecord{}, false
}
