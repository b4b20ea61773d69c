//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_test
package session

import (
	"context"
	"time"
)

// Grant - владелец refresh токена и access токен, выданный с ним в одной паре.
// AccessToken пуст, если пара выдана без связки (например, внешним издателем).
type Grant struct {
	UserID      string
	AccessToken string
}

// Rotation - новая пара токенов. RevokedAccess удаляется в той же транзакции.
type Rotation struct {
	UserID        string
	RevokedAccess string
	AccessToken   string
	RefreshToken  string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

type Store interface {
	ResolveAccess(ctx context.Context, token string) (string, error)
	TakeRefresh(ctx context.Context, token string) (Grant, error)
	Save(ctx context.Context, rotation Rotation) error
}
