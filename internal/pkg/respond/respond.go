package respond

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/dto"
	"marketplace/internal/lifecycle"
	"marketplace/pkg/logger"
)

const (
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeInFlight        = "IN_FLIGHT"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeBadRequest      = "BAD_REQUEST"
	CodeInternal        = "INTERNAL"
	CodeTimeout         = "TIMEOUT"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

func JSON(w http.ResponseWriter, log handlerLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func Fail(w http.ResponseWriter, log handlerLogger, status int, code, message string) {
	JSON(w, log, status, dto.Error{Code: code, Message: message})
}

// BadRequest - тело или параметры запроса не разобраны.
func BadRequest(w http.ResponseWriter, log handlerLogger, message string) {
	Fail(w, log, http.StatusBadRequest, CodeBadRequest, message)
}

func NotFound(w http.ResponseWriter, log handlerLogger, message string) {
	Fail(w, log, http.StatusNotFound, CodeNotFound, message)
}

func Conflict(w http.ResponseWriter, log handlerLogger) {
	Fail(w, log, http.StatusConflict, CodeConflict, "The record changed in the meantime. Refresh and try again.")
}

func InFlight(w http.ResponseWriter, log handlerLogger) {
	Fail(w, log, http.StatusConflict, CodeInFlight, "Another update of this record is in progress.")
}

func Unauthenticated(w http.ResponseWriter, log handlerLogger) {
	Fail(w, log, http.StatusUnauthorized, CodeUnauthenticated, "Sign in again to continue.")
}

// LifecycleError отвечает кодом ошибки жизненного цикла. Неизвестные ошибки логируются и отдаются как 500.
func LifecycleError(w http.ResponseWriter, log handlerLogger, err error) {
	// дедлайн ставит middleware timeout
	if errors.Is(err, context.DeadlineExceeded) {
		Fail(w, log, http.StatusGatewayTimeout, CodeTimeout, "The request took too long. Try again.")
		return
	}

	status, ok := lifecycleStatus(err)
	if !ok {
		log.With(
			logger.NewField("error", err),
		).Error("unexpected error")
		Fail(w, log, http.StatusInternalServerError, CodeInternal, "Something went wrong.")
		return
	}

	Fail(w, log, status, lifecycle.Code(err), lifecycle.Message(err, lifecycle.RoleFromError(err)))
}

func lifecycleStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, lifecycle.ErrInvalidInput):
		return http.StatusBadRequest, true
	case errors.Is(err, lifecycle.ErrForbidden), errors.Is(err, lifecycle.ErrNotAParty):
		return http.StatusForbidden, true
	case errors.Is(err, lifecycle.ErrMissingInput):
		return http.StatusUnprocessableEntity, true
	case errors.Is(err, lifecycle.ErrIllegalTransition),
		errors.Is(err, lifecycle.ErrExpired),
		errors.Is(err, lifecycle.ErrNotCompleted),
		errors.Is(err, lifecycle.ErrAlreadyReviewed):
		return http.StatusConflict, true
	default:
		return 0, false
	}
}
