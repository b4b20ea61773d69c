package review_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/dto"
	"marketplace/internal/entities"
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

	var request dto.ReviewCreateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		respond.BadRequest(w, h.log, "Request body is not valid JSON.")
		return
	}

	review, err := h.service.CreateReview(r.Context(), actorID, entities.ReviewCreate{
		OrderID:             request.OrderID,
		RevieweeID:          request.RevieweeID,
		OverallRating:       request.OverallRating,
		CommunicationRating: request.CommunicationRating,
		TimelinessRating:    request.TimelinessRating,
		Comment:             request.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			respond.NotFound(w, h.log, "Order not found.")
		default:
			respond.LifecycleError(w, h.log, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.FromReview(review))
}
