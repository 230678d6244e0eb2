package middlewares

import (
	"encoding/json"
	"net/http"

	"voyago/voyago/types"
	"voyago/voyago/utils/logging"

	"go.uber.org/zap"
)

// Recoverer converts handler panics into the API's standard 500
// envelope instead of a bare text response.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logging.ErrorLogger.Error("handler panic",
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(types.Envelope{
					Error: "Internal server error",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
