package auth

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Verifier decides whether a login attempt is valid. Keeping this as an
// interface isolates the credential policy from the HTTP transport; the
// initial implementation is still a static table.
type Verifier interface {
	Verify(email, password string) bool
}

// StaticVerifier checks logins against a fixed email -> password table.
// Email matching is case-insensitive, passwords are exact.
type StaticVerifier map[string]string

func (v StaticVerifier) Verify(email, password string) bool {
	want, ok := v[strings.ToLower(strings.TrimSpace(email))]
	return ok && password == want
}

// Sessions issues opaque tokens for authenticated users. Tokens are
// memory-only and reset on restart, like the rest of the booking state.
type Sessions struct {
	mu     sync.Mutex
	tokens map[string]string // token -> email
}

func NewSessions() *Sessions {
	return &Sessions{tokens: map[string]string{}}
}

// Issue returns a fresh token bound to the given email.
func (s *Sessions) Issue(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := uuid.New().String()
	s.tokens[token] = email
	return token
}

// Email resolves a token back to the email it was issued for.
func (s *Sessions) Email(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email, ok := s.tokens[token]
	return email, ok
}
