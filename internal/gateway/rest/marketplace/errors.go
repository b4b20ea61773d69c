package marketplace

import (
	"errors"
	"fmt"
	"net/http"

	"marketplace/internal/lifecycle"
)

var (
	ErrUnauthenticated = errors.New("session expired, sign in again")
	ErrNotFound        = errors.New("not found")
)

// RejectedError - ответ сервера с кодом ошибки. Всегда означает, что локальное решение
// нужно пересчитать по свежим данным сервера.
type RejectedError struct {
	Status  int
	Code    string
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("backend rejected with %d %s: %s", e.Status, e.Code, e.Message)
}

func (e *RejectedError) Unwrap() []error {
	errs := []error{lifecycle.ErrBackendRejected}
	if e.Status == http.StatusNotFound {
		errs = append(errs, ErrNotFound)
	}
	if known := lifecycle.FromCode(e.Code); known != nil {
		errs = append(errs, known)
	}
	return errs
}

// retryableStatusError - временный отказ сервера, после которого чтение можно повторить.
type retryableStatusError struct {
	status int
	err    error
}

func (e *retryableStatusError) Error() string {
	return fmt.Sprintf("status %d: %v", e.status, e.err)
}

func (e *retryableStatusError) Unwrap() error {
	return e.err
}
