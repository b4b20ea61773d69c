package order_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actorID, ok := auth.ActorID(r.Context())
	if !ok {
		respond.Unauthenticated(w, h.log)
		return
	}

	orderEntity, _, err := h.service.GetOrder(r.Context(), actorID, mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			respond.NotFound(w, h.log, "Order not found.")
		default:
			respond.LifecycleError(w, h.log, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromOrder(orderEntity))
}
