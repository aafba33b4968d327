package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"soundcrate/internal/auth"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.ResponseWriter.WriteHeader(code)
		rw.written = true
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// requestLogging logs every request with a propagated or generated request id.
func requestLogging(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.New().String()
			}
			w.Header().Set("X-Request-ID", requestID)
			r = r.WithContext(context.WithValue(r.Context(), requestIDKey, requestID))

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			event := logger.Info()
			if rw.statusCode >= 500 {
				event = logger.Error()
			} else if rw.statusCode >= 400 {
				event = logger.Warn()
			}
			event.
				Str("request_id", requestID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status_code", rw.statusCode).
				Dur("duration_ms", time.Since(start)).
				Msg("HTTP request")
		})
	}
}

// recovery converts panics into the 500 envelope.
func recovery(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error().
						Interface("panic", rec).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Msg("recovered from panic")
					writeEnvelope(w, http.StatusInternalServerError, "Internal Server Error", nil)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// requireAuth verifies the bearer token and attaches the principal to the
// request context. A missing header is 400; a malformed scheme or bad
// signature is 401 tagged authTokenInvalid; an expired token is 403 tagged
// authTokenExpired.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeEnvelope(w, http.StatusBadRequest, "Bad Request:Authorization Token", nil)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if parts[0] != "Bearer" || len(parts) < 2 || parts[1] == "" {
			writeEnvelope(w, http.StatusUnauthorized, "Unauthorized Access",
				map[string]string{"errorType": "authTokenInvalid"})
			return
		}

		claims, err := s.tokens.Verify(parts[1])
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				writeEnvelope(w, http.StatusForbidden, "Auth token expired",
					map[string]string{"errorType": "authTokenExpired"})
				return
			}
			writeEnvelope(w, http.StatusUnauthorized, "Unauthorized Access",
				map[string]string{"errorType": "authTokenInvalid"})
			return
		}

		principal := auth.Principal{UserID: claims.UserID, Role: auth.Role(claims.Role)}
		next(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
	}
}

// requireRole consults the operation gate table. Evaluated only after
// authentication has succeeded.
func (s *Server) requireRole(op auth.Operation, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFromContext(r.Context())
		if !ok {
			writeEnvelope(w, http.StatusUnauthorized, "Unauthorized Access", nil)
			return
		}
		if !auth.Allowed(op, principal.Role) {
			writeEnvelope(w, http.StatusForbidden, "Forbidden Access/Operation not allowed.", nil)
			return
		}
		next(w, r)
	}
}
