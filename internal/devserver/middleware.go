package devserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/techsolutions/horabank/internal/logger"
)

type ctxKey int

const (
	ctxKeyUserID ctxKey = iota
	ctxKeyToken
)

// UserIDFromContext returns the authenticated user's ID placed there by
// the auth middleware, or "" for unauthenticated requests.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyUserID).(string)
	return id
}

// TokenFromContext returns the raw bearer token of the current request.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(ctxKeyToken).(string)
	return token
}

// RequestLogger binds a request-scoped logger (with a generated request id)
// to the context and logs one line per finished request.
func RequestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqLog := log.With().
				Str("request_id", uuid.NewString()).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Logger()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r.WithContext(reqLog.WithContext(r.Context())))

			reqLog.Info().
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("request handled")
		})
	}
}

// Metrics records status code and latency for every request.
func Metrics(collector *Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			collector.RecordRequest(ww.Status(), time.Since(start))
		})
	}
}

// Authenticate verifies the Authorization bearer token, rejects revoked
// tokens, and stores the user ID and raw token in the request context.
func Authenticate(auth *Authenticator, repo Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				writeMessage(w, http.StatusUnauthorized, "Authorization token required")
				return
			}

			token, err := auth.ParseToken(raw)
			if err != nil {
				writeMessage(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			revoked, err := repo.IsTokenRevoked(r.Context(), raw)
			if err != nil {
				logger.FromRequest(r).Error().Err(err).Msg("token revocation check failed")
				writeMessage(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if revoked {
				logger.FromRequest(r).Debug().Err(ErrTokenRevoked).Str("user_id", token.UserID).Msg("rejected request")
				writeMessage(w, http.StatusUnauthorized, "Token has been revoked")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUserID, token.UserID)
			ctx = context.WithValue(ctx, ctxKeyToken, raw)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
