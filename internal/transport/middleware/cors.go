package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/vitalog-backend/internal/config"
)

// CORS echoes allowed origins back and answers preflight requests itself.
func CORS(cfg config.CORSConfig) Middleware {
	allowed, wildcard := originSet(cfg.AllowedOrigins)
	exposed := RequestIDHeader + ", Retry-After"
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			if origin := r.Header.Get("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok || wildcard {
					h.Set("Access-Control-Allow-Origin", origin)
					h.Set("Access-Control-Expose-Headers", exposed)
					if cfg.AllowCredentials {
						h.Set("Access-Control-Allow-Credentials", "true")
					}
				}
			}

			if isPreflight(r) {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
}

// originSet parses a comma separated origin list. "*" matches everything.
func originSet(list string) (map[string]struct{}, bool) {
	set := make(map[string]struct{})
	wildcard := false
	for _, o := range strings.Split(list, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			wildcard = true
		default:
			set[o] = struct{}{}
		}
	}
	return set, wildcard
}
