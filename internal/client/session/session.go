// Package session holds the signed-in user for the running process.
package session

import (
	"sync"

	"github.com/dmitrijs2005/authclient/internal/client/models"
)

type Store struct {
	mu   sync.RWMutex
	user models.User
	set  bool
}

func New() *Store {
	return &Store{}
}

// SetUser replaces the current user.
func (s *Store) SetUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user, s.set = u, true
}

// User returns the current user and whether one is signed in.
func (s *Store) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.set
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user, s.set = models.User{}, false
}
