package custom_order_status_patch

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
	"marketplace/internal/service/customorder"
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

	var request dto.CustomOrderStatusRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		respond.BadRequest(w, h.log, "Request body is not valid JSON.")
		return
	}

	customOrder, err := h.service.RequestTransition(
		r.Context(),
		actorID,
		mux.Vars(r)["id"],
		entities.CustomOrderStatusType(request.Status),
		lifecycle.Payload{
			ActorID:         actorID,
			Message:         request.Message,
			FinalPrice:      request.FinalPrice,
			DeliveryAddress: request.DeliveryAddress,
			Notes:           request.Notes,
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, customorder.ErrCustomOrderNotFound):
			respond.NotFound(w, h.log, "Custom order not found.")
		case errors.Is(err, customorder.ErrInFlight):
			respond.InFlight(w, h.log)
		case errors.Is(err, customorder.ErrStaleState),
			errors.Is(err, order.ErrConflict),
			errors.Is(err, dispatcher.ErrConflict):
			respond.Conflict(w, h.log)
		default:
			respond.LifecycleError(w, h.log, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromCustomOrder(customOrder, customOrder.Status))
}
