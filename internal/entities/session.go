package entities

import "time"

// TokenPair - пара bearer токенов сессии пользователя.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}
