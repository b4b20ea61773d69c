package custom_order_post

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

	var request dto.CustomOrderCreateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		respond.BadRequest(w, h.log, "Request body is not valid JSON.")
		return
	}

	customOrder, err := h.service.CreateCustomOrder(r.Context(), actorID, entities.CustomOrderCreate{
		SellerID:         request.SellerID,
		Title:            request.Title,
		Description:      request.Description,
		Photos:           request.Photos,
		MaxPrice:         request.MaxPrice,
		Currency:         request.Currency,
		DeliveryDeadline: request.DeliveryDeadline,
		IsASAP:           request.IsASAP,
	})
	if err != nil {
		respond.LifecycleError(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.FromCustomOrder(customOrder, customOrder.Status))
}
