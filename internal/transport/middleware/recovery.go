package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/pkg/ctxutil"
)

// Recovery turns a handler panic into an INTERNAL_FAILURE envelope.
// http.ErrAbortHandler is re-raised so net/http can drop the connection.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}
				logger.ErrorContext(r.Context(), "handler panic",
					slog.Any("panic", v),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					slog.String("route", r.Method+" "+r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)
				WriteEnvelope(w, http.StatusInternalServerError, Envelope{
					Code:    domain.StatusInternalFailure,
					Message: "internal server error",
				})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
