package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"marketplace/internal/pkg/respond"
	"marketplace/internal/service/session"
	"marketplace/pkg/logger"
)

type actorKey struct{}

const bearerPrefix = "Bearer "

func WithActorID(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, actorKey{}, actorID)
}

// ActorID возвращает id пользователя, которого определил Middleware.
func ActorID(ctx context.Context) (string, bool) {
	actorID, ok := ctx.Value(actorKey{}).(string)
	return actorID, ok && actorID != ""
}

// Middleware пропускает запрос дальше только с действующим bearer токеном.
func Middleware(log handlerLogger, resolver Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				respond.Unauthenticated(w, log)
				return
			}

			actorID, err := resolver.Resolve(r.Context(), strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
			if err != nil {
				if !errors.Is(err, session.ErrUnauthenticated) {
					log.With(
						logger.NewField("error", err),
					).Error("resolve access token")
					respond.Fail(w, log, http.StatusServiceUnavailable, respond.CodeInternal, "Try again later.")
					return
				}
				respond.Unauthenticated(w, log)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActorID(r.Context(), actorID)))
		})
	}
}
