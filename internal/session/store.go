package session

import (
	"log/slog"
	"time"

	"github.com/ReneKroon/ttlcache"
	"github.com/google/uuid"

	"github.com/sozercan/truthlens/internal/ui"
)

// CookieName carries the visitor's session id.
const CookieName = "truthlens_session"

// Store keeps one ui.Page per visitor in memory. Idle pages expire after the
// TTL; every lookup extends it.
type Store struct {
	cache *ttlcache.Cache
}

func NewStore(ttl time.Duration) *Store {
	cache := ttlcache.NewCache()
	cache.SetTTL(ttl)
	cache.SetExpirationCallback(func(key string, value interface{}) {
		slog.Debug("Session expired", "session", key)
	})
	return &Store{cache: cache}
}

// Get returns the page of an existing session.
func (s *Store) Get(id string) (*ui.Page, bool) {
	if id == "" {
		return nil, false
	}
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*ui.Page), true
}

// Create starts a session with a fresh page.
func (s *Store) Create() (string, *ui.Page) {
	id := uuid.NewString()
	page := ui.NewPage()
	s.cache.Set(id, page)
	slog.Debug("Session created", "session", id)
	return id, page
}

// Resolve returns the page for id, starting a new session when id is unknown
// or expired. created reports whether a new id was issued.
func (s *Store) Resolve(id string) (string, *ui.Page, bool) {
	if page, ok := s.Get(id); ok {
		return id, page, false
	}
	newID, page := s.Create()
	return newID, page, true
}

func (s *Store) Count() int {
	return s.cache.Count()
}

// Close stops the expiry goroutine.
func (s *Store) Close() {
	s.cache.Close()
}
