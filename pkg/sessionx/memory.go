package sessionx

import (
	"log/slog"
	"sync"
)

// MemoryStore is an in-process Store. Sessions held in it do not survive a
// restart; it exists for tests and for callers that manage persistence
// themselves.
type MemoryStore struct {
	log *slog.Logger

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	userID       int64
	hasAccess    bool
	hasRefresh   bool
}

// NewMemoryStore returns an empty in-memory store. A nil logger falls back
// to slog.Default.
func NewMemoryStore(log *slog.Logger) *MemoryStore {
	if log == nil {
		log = slog.Default()
	}
	return &MemoryStore{log: log}
}

func (s *MemoryStore) Save(accessToken, refreshToken string) error {
	id, hasID := UserIDFromToken(s.log, accessToken)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.accessToken = accessToken
	s.hasAccess = true
	if refreshToken != "" {
		s.refreshToken = refreshToken
		s.hasRefresh = true
	}
	if hasID {
		s.userID = id
	}
	return nil
}

func (s *MemoryStore) AccessToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken, s.hasAccess
}

func (s *MemoryStore) RefreshToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken, s.hasRefresh
}

func (s *MemoryStore) UserID() (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.userID <= 0 {
		return 0, false
	}
	return s.userID, true
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accessToken = ""
	s.refreshToken = ""
	s.userID = 0
	s.hasAccess = false
	s.hasRefresh = false
	return nil
}
