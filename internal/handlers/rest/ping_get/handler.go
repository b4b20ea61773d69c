package ping_get

import (
	"net/http"
	"time"

	"marketplace/internal/dto"
	"marketplace/internal/pkg/respond"
)

type Handler struct {
	log       handlerLogger
	service   string
	startedAt time.Time
}

func New(log handlerLogger, service string, startedAt time.Time) *Handler {
	return &Handler{
		log:       log.With(),
		service:   service,
		startedAt: startedAt,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, h.log, http.StatusOK, dto.PingResponse{
		Message:       "pong",
		Service:       h.service,
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
	})
}
