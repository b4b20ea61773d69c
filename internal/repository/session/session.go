package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"marketplace/internal/service/session"
)

const (
	accessKeyPrefix     = "session:access:"
	refreshKeyPrefix    = "session:refresh:"
	refreshAccessPrefix = "session:refresh-access:"
)

type Store struct {
	client redis.Cmdable
}

func New(client redis.Cmdable) *Store {
	return &Store{
		client: client,
	}
}

func AccessKey(token string) string {
	return accessKeyPrefix + token
}

func RefreshKey(token string) string {
	return refreshKeyPrefix + token
}

// RefreshAccessKey хранит access токен, выданный в одной паре с refresh токеном.
func RefreshAccessKey(refreshToken string) string {
	return refreshAccessPrefix + refreshToken
}

func (s *Store) ResolveAccess(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, AccessKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", session.ErrTokenNotFound
		}
		return "", fmt.Errorf("unexpected session store get error: %w", err)
	}
	return userID, nil
}

// TakeRefresh атомарно читает и удаляет refresh токен вместе со связанным access токеном (GETDEL в MULTI),
// поэтому токен можно обменять только один раз.
func (s *Store) TakeRefresh(ctx context.Context, token string) (session.Grant, error) {
	var userID, accessToken *redis.StringCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		userID = pipe.GetDel(ctx, RefreshKey(token))
		accessToken = pipe.GetDel(ctx, RefreshAccessKey(token))
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return session.Grant{}, fmt.Errorf("unexpected session store getdel error: %w", err)
	}

	grant := session.Grant{}
	grant.UserID, err = userID.Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return session.Grant{}, session.ErrTokenNotFound
		}
		return session.Grant{}, fmt.Errorf("unexpected session store getdel error: %w", err)
	}

	// пара могла быть выдана без связки
	grant.AccessToken, err = accessToken.Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return session.Grant{}, fmt.Errorf("unexpected session store getdel error: %w", err)
	}
	return grant, nil
}

func (s *Store) Save(ctx context.Context, rotation session.Rotation) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if rotation.RevokedAccess != "" {
			pipe.Del(ctx, AccessKey(rotation.RevokedAccess))
		}
		pipe.Set(ctx, AccessKey(rotation.AccessToken), rotation.UserID, rotation.AccessTTL)
		pipe.Set(ctx, RefreshKey(rotation.RefreshToken), rotation.UserID, rotation.RefreshTTL)
		pipe.Set(ctx, RefreshAccessKey(rotation.RefreshToken), rotation.AccessToken, rotation.RefreshTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("unexpected session store save error: %w", err)
	}
	return nil
}
