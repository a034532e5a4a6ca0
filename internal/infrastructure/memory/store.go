// Package memory is an in-process implementation of the persistence ports. It enforces the same
// uniqueness, foreign-key and cascade rules as the PostgreSQL schema, so use cases behave the
// same against either adapter.
package memory

import (
	"context"
	"sync"

	"github.com/YudheerRM/bidding-insights/internal/application/ports"
	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
	"github.com/YudheerRM/bidding-insights/internal/domain/repository"
)

var _ ports.TxRunner = (*Store)(nil)

// Store holds every table. mu guards the maps; txMu serialises writers, so a Run callback
// sees no interleaved writes from other goroutines.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	users        map[string]entity.User
	tenders      map[string]entity.Tender
	applications map[string]entity.TenderApplication
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:        make(map[string]entity.User),
		tenders:      make(map[string]entity.Tender),
		applications: make(map[string]entity.TenderApplication),
	}
}

// Users repository outside any transaction.
func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }

// Tenders repository outside any transaction.
func (s *Store) Tenders() *TenderRepository { return &TenderRepository{s: s} }

// Applications repository outside any transaction.
func (s *Store) Applications() *ApplicationRepository { return &ApplicationRepository{s: s} }

// Stats aggregate queries.
func (s *Store) Stats() *StatsRepository { return &StatsRepository{s: s} }

// Run executes fn with repositories bound to a transaction. On error every change made by fn is undone.
func (s *Store) Run(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	tenderRepo repository.TenderRepository,
	applicationRepo repository.ApplicationRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	err := fn(&UserRepository{s: s, tx: true}, &TenderRepository{s: s, tx: true}, &ApplicationRepository{s: s, tx: true})
	if err != nil {
		s.restore(snap)
	}
	return err
}

// write runs fn under the write lock; outside a transaction it also takes the writer lock.
func (s *Store) write(tx bool, fn func() error) error {
	if !tx {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

func (s *Store) read(fn func()) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn()
}

type snapshot struct {
	users        map[string]entity.User
	tenders      map[string]entity.Tender
	applications map[string]entity.TenderApplication
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		users:        copyMap(s.users),
		tenders:      copyMap(s.tenders),
		applications: copyMap(s.applications),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = snap.users
	s.tenders = snap.tenders
	s.applications = snap.applications
}

func copyMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
