package http

import (
	"context"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/catalog-service/pkg/auth"
	"github.com/tair/catalog-service/pkg/logger"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	EmailKey     contextKey = "email"
	RoleKey      contextKey = "role"
	RequestIDKey contextKey = "request_id"
)

// TokenValidator verifies bearer tokens
type TokenValidator interface {
	ValidateToken(token string) (auth.Principal, error)
}

// AuthMiddleware validates the bearer token and stores the principal in the
// request context. Any role is accepted.
func AuthMiddleware(tokens TokenValidator) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn(r.Context()).Msg("Missing authorization header")
				respondError(w, http.StatusUnauthorized, "authorization header required")
				return
			}

			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				logger.Warn(r.Context()).Msg("Invalid authorization header format")
				respondError(w, http.StatusUnauthorized, "invalid authorization header format")
				return
			}

			principal, err := tokens.ValidateToken(parts[1])
			if err != nil {
				logger.Warn(r.Context()).Err(err).Msg("Invalid token")
				respondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, principal.ID)
			ctx = context.WithValue(ctx, EmailKey, principal.Email)
			ctx = context.WithValue(ctx, RoleKey, principal.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

// PrincipalFromContext returns the authenticated caller, if any
func PrincipalFromContext(ctx context.Context) (auth.Principal, bool) {
	id, ok := ctx.Value(UserIDKey).(uint)
	if !ok {
		return auth.Principal{}, false
	}
	email, _ := ctx.Value(EmailKey).(string)
	role, _ := ctx.Value(RoleKey).(string)
	return auth.Principal{ID: id, Email: email, Role: role}, true
}

// RequestIDMiddleware propagates X-Request-Id or assigns a new one
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)

		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LoggingMiddleware provides structured logging for requests
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := r.Context()

		traceID := "no-trace"
		if span := trace.SpanFromContext(ctx); span.SpanContext().IsValid() {
			traceID = span.SpanContext().TraceID().String()
		}
		requestID, _ := ctx.Value(RequestIDKey).(string)

		logger.Debug(ctx).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("ip", r.RemoteAddr).
			Str("user_agent", r.UserAgent()).
			Str("request_id", requestID).
			Msg("Request started")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start)

		event := logger.Info(ctx)
		if rw.statusCode >= 500 {
			event = logger.Error(ctx)
		} else if rw.statusCode >= 400 {
			event = logger.Warn(ctx)
		}

		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rw.statusCode).
			Dur("duration", duration).
			Int64("duration_ms", duration.Milliseconds()).
			Str("trace_id", traceID).
			Str("request_id", requestID).
			Msg("Request completed")
	})
}

// RecoveryMiddleware turns panics into 500 responses
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error(r.Context()).
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Msg("Recovered from panic")
				respondError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// SecurityHeadersMiddleware sets conservative response headers
func SecurityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}
