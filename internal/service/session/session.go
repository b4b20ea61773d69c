package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"marketplace/internal/entities"
)

type Service struct {
	store      Store
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
	newToken   func() string
}

func New(store Store, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		store:      store,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        func() time.Time { return time.Now().UTC() },
		newToken:   newToken,
	}
}

// Resolve возвращает id пользователя по access токену.
func (s *Service) Resolve(ctx context.Context, accessToken string) (string, error) {
	if strings.TrimSpace(accessToken) == "" {
		return "", ErrUnauthenticated
	}

	userID, err := s.store.ResolveAccess(ctx, accessToken)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return "", ErrUnauthenticated
		}
		return "", fmt.Errorf("resolve access token: %w", err)
	}
	return userID, nil
}

// Refresh обменивает refresh токен на новую пару. Старый refresh токен становится недействительным
// сразу при чтении, поэтому повторное использование (в том числе параллельное) отклоняется.
// Access токен из той же пары отзывается вместе с записью новой.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*entities.TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, ErrUnauthenticated
	}

	grant, err := s.store.TakeRefresh(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("take refresh token: %w", err)
	}

	now := s.now()
	pair := entities.TokenPair{
		AccessToken:      s.newToken(),
		RefreshToken:     s.newToken(),
		AccessExpiresAt:  now.Add(s.accessTTL),
		RefreshExpiresAt: now.Add(s.refreshTTL),
	}

	err = s.store.Save(ctx, Rotation{
		UserID:        grant.UserID,
		RevokedAccess: grant.AccessToken,
		AccessToken:   pair.AccessToken,
		RefreshToken:  pair.RefreshToken,
		AccessTTL:     s.accessTTL,
		RefreshTTL:    s.refreshTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &pair, nil
}

func newToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}
