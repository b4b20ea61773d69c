package order_post

import (
	"encoding/json"
	"net/http"

	"marketplace/internal/dto"
	"marketplace/internal/entities"
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

	var request dto.OrderCreateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		respond.BadRequest(w, h.log, "Request body is not valid JSON.")
		return
	}

	order, err := h.service.CreateOrder(r.Context(), actorID, entities.OrderCreate{
		SellerID:        request.SellerID,
		ProductID:       request.ProductID,
		Quantity:        request.Quantity,
		Price:           request.Price,
		Currency:        request.Currency,
		DeliveryAddress: request.DeliveryAddress,
		Notes:           request.Notes,
	})
	if err != nil {
		respond.LifecycleError(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.FromOrder(order))
}
