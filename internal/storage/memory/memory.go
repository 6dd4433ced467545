// Package memory provides a simple in-memory implementation used for development and tests.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/tinoosan/social/internal/errs"
	"github.com/tinoosan/social/internal/social"
)

// Store is an in-memory implementation of the account and message stores.
// It is guarded by an RWMutex for concurrent reads/writes.
type Store struct {
	mu         sync.RWMutex
	accounts   map[uuid.UUID]social.Account
	byUsername map[string]uuid.UUID
	messages   map[uuid.UUID]social.Message
	// insertion order of message ids; deleted ids are dropped lazily on read
	order []uuid.UUID
	// number of live messages per poster, backs MessageExistsByPostedBy
	postedCount map[uuid.UUID]int
}

// New constructs an empty in-memory store.
func New() *Store {
	s := &Store{}
	s.reset()
	return s
}

func (s *Store) reset() {
	s.mu.Lock()
	s.accounts = map[uuid.UUID]social.Account{}
	s.byUsername = map[string]uuid.UUID{}
	s.messages = map[uuid.UUID]social.Message{}
	s.order = nil
	s.postedCount = map[uuid.UUID]int{}
	s.mu.Unlock()
}

// Ready always succeeds for the in-memory store.
func (s *Store) Ready(context.Context) error { return nil }

// --- Accounts ---

// AccountExists implements account.Store.
func (s *Store) AccountExists(_ context.Context, username string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byUsername[username]
	return ok, nil
}

// InsertAccount assigns an ID and stores the account. The username check and
// the write happen under one lock, so concurrent duplicates cannot both land.
func (s *Store) InsertAccount(_ context.Context, a social.Account) (social.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byUsername[a.Username]; taken {
		return social.Account{}, errs.ErrConflict
	}
	a.ID = uuid.New()
	s.accounts[a.ID] = a
	s.byUsername[a.Username] = a.ID
	return a, nil
}

// FindAccountByUsername implements account.Store.
func (s *Store) FindAccountByUsername(_ context.Context, username string) (social.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byUsername[username]
	if !ok {
		return social.Account{}, errs.ErrNotFound
	}
	return s.accounts[id], nil
}

// AccountExistsByID implements message.Store.
func (s *Store) AccountExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.accounts[id]
	return ok, nil
}

// --- Messages ---

// MessageExistsByPostedBy implements message.Store.
func (s *Store) MessageExistsByPostedBy(_ context.Context, accountID uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.postedCount[accountID] > 0, nil
}

// InsertMessage assigns an ID and appends the message.
func (s *Store) InsertMessage(_ context.Context, m social.Message) (social.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = uuid.New()
	s.messages[m.ID] = m
	s.order = append(s.order, m.ID)
	s.postedCount[m.PostedBy]++
	return m, nil
}

// MessageExistsByID implements message.Store.
func (s *Store) MessageExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.messages[id]
	return ok, nil
}

// FindMessageByID implements message.Store.
func (s *Store) FindMessageByID(_ context.Context, id uuid.UUID) (social.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.messages[id]
	if !ok {
		return social.Message{}, errs.ErrNotFound
	}
	return m, nil
}

// SaveMessage overwrites an existing message.
func (s *Store) SaveMessage(_ context.Context, m social.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.messages[m.ID]
	if !ok {
		return errs.ErrNotFound
	}
	if prev.PostedBy != m.PostedBy {
		s.postedCount[prev.PostedBy]--
		s.postedCount[m.PostedBy]++
	}
	s.messages[m.ID] = m
	return nil
}

// DeleteMessageByID removes a message and reports how many were removed.
func (s *Store) DeleteMessageByID(_ context.Context, id uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.messages[id]
	if !ok {
		return 0, nil
	}
	delete(s.messages, id)
	s.postedCount[m.PostedBy]--
	if s.postedCount[m.PostedBy] <= 0 {
		delete(s.postedCount, m.PostedBy)
	}
	s.compactLocked()
	return 1, nil
}

// FindAllMessages returns messages in insertion order.
func (s *Store) FindAllMessages(_ context.Context) ([]social.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]social.Message, 0, len(s.messages))
	for _, id := range s.order {
		if m, ok := s.messages[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

// FindMessagesByPostedBy returns a poster's messages in insertion order.
func (s *Store) FindMessagesByPostedBy(_ context.Context, accountID uuid.UUID) ([]social.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]social.Message, 0)
	for _, id := range s.order {
		if m, ok := s.messages[id]; ok && m.PostedBy == accountID {
			out = append(out, m)
		}
	}
	return out, nil
}

// compactLocked rebuilds the order index once deleted ids dominate it.
// Caller must hold s.mu (write lock).
func (s *Store) compactLocked() {
	if len(s.order) < 64 || len(s.order) < 2*len(s.messages) {
		return
	}
	kept := make([]uuid.UUID, 0, len(s.messages))
	for _, id := range s.order {
		if _, ok := s.messages[id]; ok {
			kept = append(kept, id)
		}
	}
	s.order = kept
}
