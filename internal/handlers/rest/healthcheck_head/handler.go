package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
)

const (
	checkTimeout = time.Second

	HeaderFailedCheck = "X-Health-Failed"
)

// Check - зависимость, без которой инстанс не должен получать трафик.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

type Handler struct {
	isShuttingDown *atomic.Bool
	checks         []Check
}

func New(isShuttingDown *atomic.Bool, checks ...Check) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		checks:         checks,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	for _, check := range h.checks {
		ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
		err := check.Ping(ctx)
		cancel()
		if err != nil {
			w.Header().Set(HeaderFailedCheck, check.Name)
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
