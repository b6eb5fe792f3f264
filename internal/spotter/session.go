package spotter

import "sync/atomic"

// Session holds at most one bearer token. The token is only ever replaced as a whole,
// so reads and writes are plain atomic operations.
type Session struct {
	token atomic.Pointer[string]
}

func NewSession() *Session {
	return &Session{}
}

// Set replaces the current token.
func (s *Session) Set(token string) {
	s.token.Store(&token)
}

// Token returns the current token and whether one is set.
func (s *Session) Token() (string, bool) {
	t := s.token.Load()
	if t == nil {
		return "", false
	}
	return *t, true
}

func (s *Session) Authenticated() bool {
	return s.token.Load() != nil
}
