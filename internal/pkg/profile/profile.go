package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
	"marketplace/internal/entities"
)

const EnvPath = "ORDERCTL_PROFILE"

var ErrNotSignedIn = errors.New("profile has no session tokens")

// Profile - локальные настройки orderctl: адрес сервиса и сессия пользователя.
type Profile struct {
	BaseURL string  `yaml:"base_url"`
	UserID  string  `yaml:"user_id"`
	Session Session `yaml:"session"`
}

type Session struct {
	AccessToken      string    `yaml:"access_token,omitempty"`
	RefreshToken     string    `yaml:"refresh_token,omitempty"`
	AccessExpiresAt  time.Time `yaml:"access_expires_at,omitempty"`
	RefreshExpiresAt time.Time `yaml:"refresh_expires_at,omitempty"`
}

// DefaultPath возвращает путь из ORDERCTL_PROFILE или ~/.config/orderctl/profile.yaml.
func DefaultPath() (string, error) {
	if path := os.Getenv(EnvPath); path != "" {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "orderctl", "profile.yaml"), nil
}

func Load(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}

	var p Profile
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}

	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return &p, nil
}

// Save перезаписывает профиль атомарно, токены доступны только владельцу файла.
func Save(path string, p *Profile) error {
	raw, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace profile: %w", err)
	}
	return nil
}

// TokenPair возвращает сохраненную сессию или ErrNotSignedIn.
func (p *Profile) TokenPair() (*entities.TokenPair, error) {
	if p.Session.AccessToken == "" {
		return nil, ErrNotSignedIn
	}
	return &entities.TokenPair{
		AccessToken:      p.Session.AccessToken,
		RefreshToken:     p.Session.RefreshToken,
		AccessExpiresAt:  p.Session.AccessExpiresAt,
		RefreshExpiresAt: p.Session.RefreshExpiresAt,
	}, nil
}

// SetTokenPair сохраняет обновленную сессию. nil означает, что сессия сброшена.
func (p *Profile) SetTokenPair(pair *entities.TokenPair) {
	if pair == nil {
		p.Session = Session{}
		return
	}
	p.Session = Session{
		AccessToken:      pair.AccessToken,
		RefreshToken:     pair.RefreshToken,
		AccessExpiresAt:  pair.AccessExpiresAt,
		RefreshExpiresAt: pair.RefreshExpiresAt,
	}
}

func (p *Profile) validate() error {
	if p.BaseURL == "" {
		return errors.New("base_url is required")
	}
	if p.UserID == "" {
		return errors.New("user_id is required")
	}
	return nil
}
