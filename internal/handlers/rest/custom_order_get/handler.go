package custom_order_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/dto"
	"marketplace/internal/pkg/middlewares/auth"
	"marketplace/internal/pkg/respond"
	"marketplace/internal/service/customorder"
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

// ServeHTTP отдает индивидуальный заказ вместе со статусом для отображения (EXPIRED вычисляется здесь же).
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actorID, ok := auth.ActorID(r.Context())
	if !ok {
		respond.Unauthenticated(w, h.log)
		return
	}

	customOrder, viewStatus, _, err := h.service.GetCustomOrder(r.Context(), actorID, mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, customorder.ErrCustomOrderNotFound):
			respond.NotFound(w, h.log, "Custom order not found.")
		default:
			respond.LifecycleError(w, h.log, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromCustomOrder(customOrder, viewStatus))
}
