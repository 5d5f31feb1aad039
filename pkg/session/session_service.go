package session

import (
	"Bakify-Web/domain"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is the per-account context owning the catalog and filter
// state. The catalog pointer is swapped whole under the lock, so
// readers see either the old catalog in full or the new one, never a
// mix.
type Session struct {
	ID         string
	DriveToken string
	CreatedAt  time.Time

	mu      sync.RWMutex
	catalog *domain.Catalog
	filter  domain.FilterState
}

// Catalog returns the current catalog, or ErrCatalogNotLoaded when no
// load has succeeded for this session yet.
func (s *Session) Catalog() (*domain.Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.catalog == nil {
		return nil, domain.ErrCatalogNotLoaded
	}
	return s.catalog, nil
}

// ReplaceCatalog atomically installs a freshly built catalog.
func (s *Session) ReplaceCatalog(c *domain.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = c
}

func (s *Session) Filter() domain.FilterState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

func (s *Session) SetFilter(filter domain.FilterState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = filter
}

type (
	SessionService interface {
		Create(driveToken string) *Session
		Get(id string) (*Session, error)
		Delete(id string)
	}

	sessionService struct {
		mu       sync.RWMutex
		sessions map[string]*Session
	}
)

func NewSessionService() SessionService {
	return &sessionService{
		sessions: make(map[string]*Session),
	}
}

func (s *sessionService) Create(driveToken string) *Session {
	sess := &Session{
		ID:         uuid.NewString(),
		DriveToken: driveToken,
		CreatedAt:  time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return sess
}

func (s *sessionService) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

// Delete tears the session down; the catalog and filter state go with
// it.
func (s *sessionService) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
