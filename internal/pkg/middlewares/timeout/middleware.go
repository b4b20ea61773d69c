package timeout

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"marketplace/pkg/logger"
)

// Middleware ограничивает время обработки запроса. Ответ на истекший дедлайн пишет сама ручка
// (respond.LifecycleError -> 504), здесь только учет и лог.
func Middleware(log handlerLogger, timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// r.Context() = ongoingCtx (из BaseContext)
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			start := time.Now()
			next.ServeHTTP(w, r.WithContext(ctx))

			if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return
			}

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if template, err := current.GetPathTemplate(); err == nil {
					route = template
				}
			}

			HTTPRequestTimeoutsTotal.WithLabelValues(r.Method, route).Inc()
			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("timeout", timeout.String()),
				logger.NewField("elapsed", time.Since(start).String()),
			).Warn("request deadline exceeded")
		})
	}
}
