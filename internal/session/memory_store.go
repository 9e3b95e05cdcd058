package session

import (
	"context"
	"sync"

	"github.com/rentalworks/rental-portal/internal/model"
)

// MemoryStore is an in-process Store used in tests and as the degraded
// mode when Redis is not reachable at startup.  Sessions then survive only
// as long as the process, consistent with how caching and rate limiting
// also degrade when Redis is absent.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*memEntry
}

type memEntry struct {
	user     *userRecord
	customer *model.Customer
	cart     *model.Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*memEntry)}
}

func (s *MemoryStore) Load(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sessions[id]
	if !ok || e.user == nil {
		return nil, ErrNoSession
	}
	u := e.user.User
	sess := &Session{ID: id, SID: e.user.SID, User: &u}
	if e.customer != nil {
		c := *e.customer
		sess.Customer = &c
	}
	if e.cart != nil {
		cp := *e.cart
		sess.Cart = &cp
	}
	return sess, nil
}

func (s *MemoryStore) SaveUser(_ context.Context, id string, u User, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(id).user = &userRecord{User: u, SID: sid}
	return nil
}

func (s *MemoryStore) SaveCustomer(_ context.Context, id string, c *model.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(id).customer = c
	return nil
}

func (s *MemoryStore) SaveCart(_ context.Context, id string, cart *model.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(id).cart = cart
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// entry returns the mutable record for id, creating it when missing.
// Callers must hold the write lock.
func (s *MemoryStore) entry(id string) *memEntry {
	e, ok := s.sessions[id]
	if !ok {
		e = &memEntry{}
		s.sessions[id] = e
	}
	return e
}
