package notifications_get

import (
	"net/http"
	"strconv"

	"marketplace/internal/dto"
	"marketplace/internal/pkg/middlewares/auth"
	"marketplace/internal/pkg/respond"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actorID, ok := auth.ActorID(r.Context())
	if !ok {
		respond.Unauthenticated(w, h.log)
		return
	}

	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respond.BadRequest(w, h.log, "Limit must be a number.")
			return
		}
		limit = parsed
	}

	notifications, err := h.service.List(r.Context(), actorID, limit)
	if err != nil {
		respond.LifecycleError(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromNotifications(notifications))
}
