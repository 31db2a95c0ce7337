package services

import (
	"sync"

	"github.com/google/uuid"
	"github.com/maxaizer/job-board/internal/domain/models"
)

// Sessions maps opaque cookie tokens to logged-in users. Sessions live in
// process memory regardless of the storage backend, so a restart logs
// everyone out.
type Sessions struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewSessions() *Sessions {
	return &Sessions{users: make(map[string]models.User)}
}

// Login accepts any non-empty credential pair and returns a fresh session
// token. The username doubles as the user id.
func (s *Sessions) Login(username string) (string, models.User) {

	user := models.User{ID: username, Username: username}
	token := uuid.NewString()

	s.mu.Lock()
	s.users[token] = user
	s.mu.Unlock()

	return token, user
}

func (s *Sessions) User(token string) (models.User, bool) {
	s.mu.RLock()
	user, ok := s.users[token]
	s.mu.RUnlock()
	return user, ok
}

func (s *Sessions) Logout(token string) {
	s.mu.Lock()
	delete(s.users, token)
	s.mu.Unlock()
}
