package lifecycle

import (
	"errors"

	"marketplace/internal/entities"
)

var (
	ErrIllegalTransition = errors.New("illegal transition")
	ErrForbidden         = errors.New("forbidden")
	ErrMissingInput      = errors.New("missing input")
	ErrInvalidInput      = errors.New("invalid input")
	ErrExpired           = errors.New("custom order expired")

	ErrNotCompleted    = errors.New("order is not completed")
	ErrNotAParty       = errors.New("actor is not a party of the order")
	ErrAlreadyReviewed = errors.New("order already reviewed by actor")

	// ErrBackendRejected - оптимистичное локальное решение не совпало с состоянием на сервере.
	ErrBackendRejected = errors.New("rejected by backend")
)

const (
	CodeIllegalTransition = "ILLEGAL_TRANSITION"
	CodeForbidden         = "FORBIDDEN"
	CodeMissingInput      = "MISSING_INPUT"
	CodeValidation        = "VALIDATION"
	CodeExpired           = "EXPIRED"
	CodeNotCompleted      = "NOT_COMPLETED"
	CodeNotAParty         = "NOT_A_PARTY"
	CodeAlreadyReviewed   = "ALREADY_REVIEWED"
	CodeBackendRejected   = "BACKEND_REJECTED"
	CodeUnknown           = "UNKNOWN"
)

var codes = []struct {
	err      error
	code     string
	message  map[entities.ActorRole]string
	fallback string
}{
	{
		err:      ErrIllegalTransition,
		code:     CodeIllegalTransition,
		fallback: "This action is no longer available. Refresh to see the current status.",
	},
	{
		err:  ErrForbidden,
		code: CodeForbidden,
		message: map[entities.ActorRole]string{
			entities.RoleBuyer:  "Only the seller can perform this action.",
			entities.RoleSeller: "Only the buyer can perform this action.",
		},
		fallback: "You are not allowed to perform this action.",
	},
	{
		err:      ErrMissingInput,
		code:     CodeMissingInput,
		fallback: "Some required details are missing.",
	},
	{
		err:      ErrInvalidInput,
		code:     CodeValidation,
		fallback: "Some details are invalid.",
	},
	{
		err:  ErrExpired,
		code: CodeExpired,
		message: map[entities.ActorRole]string{
			entities.RoleSeller: "The response deadline for this request has passed.",
			entities.RoleBuyer:  "The seller did not respond in time.",
		},
		fallback: "This request has expired.",
	},
	{
		err:      ErrNotCompleted,
		code:     CodeNotCompleted,
		fallback: "Reviews open once the order is completed.",
	},
	{
		err:      ErrNotAParty,
		code:     CodeNotAParty,
		fallback: "Only the buyer and the seller can review this order.",
	},
	{
		err:      ErrAlreadyReviewed,
		code:     CodeAlreadyReviewed,
		fallback: "You have already reviewed this order.",
	},
	{
		err:      ErrBackendRejected,
		code:     CodeBackendRejected,
		fallback: "The order changed in the meantime. Refresh and try again.",
	},
}

// Code возвращает машиночитаемый код ошибки жизненного цикла.
func Code(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeUnknown
}

// Message возвращает короткое сообщение для пользователя с учетом его роли.
func Message(err error, role entities.ActorRole) string {
	for _, c := range codes {
		if !errors.Is(err, c.err) {
			continue
		}
		if msg, ok := c.message[role]; ok {
			return msg
		}
		return c.fallback
	}
	return "Something went wrong."
}

// FromCode восстанавливает sentinel-ошибку по коду, пришедшему от сервера.
func FromCode(code string) error {
	for _, c := range codes {
		if c.code == code {
			return c.err
		}
	}
	return nil
}

type roleError struct {
	role entities.ActorRole
	err  error
}

func (e *roleError) Error() string {
	return e.err.Error()
}

func (e *roleError) Unwrap() error {
	return e.err
}

// WithRole прикрепляет к ошибке роль пользователя, чтобы выбрать подходящее сообщение.
func WithRole(err error, role entities.ActorRole) error {
	if err == nil {
		return nil
	}
	return &roleError{role: role, err: err}
}

func RoleFromError(err error) entities.ActorRole {
	var re *roleError
	if errors.As(err, &re) {
		return re.role
	}
	return ""
}
