package session

import "errors"

var (
	// ErrUnauthenticated - токен отсутствует, истек или был отозван.
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrTokenNotFound   = errors.New("token not found")
)
