package order_status_patch

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/dispatcher"
	"marketplace/internal/dto"
	"marketplace/internal/entities"
	"marketplace/internal/lifecycle"
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

	var request dto.OrderStatusRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		respond.BadRequest(w, h.log, "Request body is not valid JSON.")
		return
	}

	orderEntity, err := h.service.RequestTransition(
		r.Context(),
		actorID,
		mux.Vars(r)["id"],
		entities.OrderStatusType(request.Status),
		lifecycle.Payload{
			ActorID:        actorID,
			TrackingNumber: request.TrackingNumber,
		},
	)
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
