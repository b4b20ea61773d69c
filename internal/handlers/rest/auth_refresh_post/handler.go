package auth_refresh_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/dto"
	"marketplace/internal/pkg/respond"
	"marketplace/internal/service/session"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP не требует access токена: именно через него клиент восстанавливает истекшую сессию.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request dto.RefreshRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		respond.BadRequest(w, h.log, "Request body is not valid JSON.")
		return
	}

	pair, err := h.service.Refresh(r.Context(), request.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrUnauthenticated):
			respond.Unauthenticated(w, h.log)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("failed to refresh session")
			respond.Fail(w, h.log, http.StatusInternalServerError, respond.CodeInternal, "Something went wrong.")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromTokenPair(pair))
}
