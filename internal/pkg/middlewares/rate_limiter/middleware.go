package rate_limiter

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"marketplace/internal/pkg/respond"
	"marketplace/pkg/logger"
)

const (
	CodeRateLimited = "RATE_LIMITED"

	clientToken  = "token"
	clientRemote = "remote"
)

// Middleware ограничивает частоту запросов отдельно для каждого клиента.
// Клиент с bearer токеном считается по токену, без токена - по адресу.
func Middleware(log handlerLogger, rateLimiterQPS int, rlimiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, client := clientKey(r)
			if rlimiter.Allow(key) {
				next.ServeHTTP(w, r)
				return
			}

			handlerPath := r.URL.Path
			route := mux.CurrentRoute(r)
			if route != nil {
				if template, err := route.GetPathTemplate(); err == nil {
					handlerPath = template
				}
			}

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", handlerPath),
				logger.NewField("client", client),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			RateLimitExceededTotal.WithLabelValues(r.Method, handlerPath, client).Inc()

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rateLimiterQPS))
			w.Header().Set("Retry-After", "1")
			respond.Fail(w, log, http.StatusTooManyRequests, CodeRateLimited, "Too many requests. Try again later.")
		})
	}
}

// clientKey не хранит сам токен: в ключ попадает только его хэш.
func clientKey(r *http.Request) (key, client string) {
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok && strings.TrimSpace(token) != "" {
		sum := sha256.Sum256([]byte(strings.TrimSpace(token)))
		return clientToken + ":" + hex.EncodeToString(sum[:8]), clientToken
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return clientRemote + ":" + host, clientRemote
}
