package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"marketplace/internal/pkg/respond"
	"marketplace/pkg/logger/zap_adapter"
)

const CodeShuttingDown = "SHUTTING_DOWN"

// Middleware отвечает 503 на новые запросы, когда инстанс уже выводится из балансировки.
// Клиент получает тот же конверт ошибки, что и от остальных ручек, и может повторить запрос на другой инстанс.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	nop := zap_adapter.NewNop()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					w.Header().Set("Connection", "close")
					w.Header().Set("Retry-After", "1")
					respond.Fail(w, nop, http.StatusServiceUnavailable, CodeShuttingDown, "Service is shutting down. Try again.")
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
