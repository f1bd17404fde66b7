package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Recover turns a handler panic into a 500 response and logs the panic
// value with its stack. http.ErrAbortHandler is re-raised so the server
// can abort the connection.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				attrs := []any{
					"method", r.Method,
					"uri", r.URL.RequestURI(),
					"panic", rvr,
					"stack", string(debug.Stack()),
				}
				if cid := CorrelationIDFrom(r.Context()); cid != "" {
					attrs = append(attrs, "correlation_id", cid)
				}
				logger.Error("panic recovered", attrs...)

				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
