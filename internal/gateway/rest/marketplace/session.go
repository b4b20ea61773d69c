package marketplace

import (
	"sync"

	"marketplace/internal/entities"
)

// Session хранит токены текущего пользователя. Создается один раз при старте клиента
// и передается в Gateway явно.
type Session struct {
	mu   sync.Mutex
	pair *entities.TokenPair
}

func NewSession(pair *entities.TokenPair) *Session {
	s := &Session{}
	if pair != nil {
		copied := *pair
		s.pair = &copied
	}
	return s
}

// Tokens возвращает копию текущей пары или nil, если сессия сброшена.
func (s *Session) Tokens() *entities.TokenPair {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pair == nil {
		return nil
	}
	copied := *s.pair
	return &copied
}

func (s *Session) Set(pair entities.TokenPair) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pair = &pair
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pair = nil
}

func (s *Session) accessToken() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pair == nil {
		return "", false
	}
	return s.pair.AccessToken, true
}

func (s *Session) refreshToken() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pair == nil || s.pair.RefreshToken == "" {
		return "", false
	}
	return s.pair.RefreshToken, true
}
