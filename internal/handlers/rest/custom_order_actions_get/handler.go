package custom_order_actions_get

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actorID, ok := auth.ActorID(r.Context())
	if !ok {
		respond.Unauthenticated(w, h.log)
		return
	}

	customOrder, role, available, err := h.service.Actions(r.Context(), actorID, mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, customorder.ErrCustomOrderNotFound):
			respond.NotFound(w, h.log, "Custom order not found.")
		default:
			respond.LifecycleError(w, h.log, err)
		}
		return
	}

	actions := make([]string, 0, len(available))
	for _, status := range available {
		actions = append(actions, status.String())
	}

	respond.JSON(w, h.log, http.StatusOK, dto.ActionsResponse{
		Status:  customOrder.Status.String(),
		Role:    role.String(),
		Actions: actions,
	})
}
