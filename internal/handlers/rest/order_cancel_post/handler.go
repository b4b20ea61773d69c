package order_cancel_post

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/dispatcher"
	"marketplace/internal/dto"
	"marketplace/internal/pkg/middlewares/auth"
	"marketplace/internal/pkg/respond"
	"marketplace/internal/service/order"
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

// ServeHTTP отменяет заказ покупателя. Разрешено только из PENDING.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actorID, ok := auth.ActorID(r.Context())
	if !ok {
		respond.Unauthenticated(w, h.log)
		return
	}

	orderEntity, err := h.service.Cancel(r.Context(), actorID, mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			respond.NotFound(w, h.log, "Order not found.")
		case errors.Is(err, order.ErrInFlight):
			respond.InFlight(w, h.log)
		case errors.Is(err, order.ErrStaleState), errors.Is(err, dispatcher.ErrConflict):
			respond.Conflict(w, h.log)
		default:
			respond.LifecycleError(w, h.log, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromOrder(orderEntity))
}
