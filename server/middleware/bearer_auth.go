package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"venue-map-proxy/models"
)

const AUTHORIZATION_HEADER = "Authorization"

// BearerAuth rejects requests whose Authorization header does not carry the
// configured token: 401 when missing or malformed, 403 when wrong. An empty
// token disables the check.
func BearerAuth(token string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get(AUTHORIZATION_HEADER)
			if authHeader == "" {
				deny(w, r, http.StatusUnauthorized, "Authorization header is required")
				return
			}

			bearerToken := strings.Split(authHeader, " ")
			if len(bearerToken) != 2 || !strings.EqualFold(bearerToken[0], "Bearer") || bearerToken[1] == "" {
				deny(w, r, http.StatusUnauthorized, "Invalid token format")
				return
			}

			if subtle.ConstantTimeCompare([]byte(bearerToken[1]), []byte(token)) != 1 {
				deny(w, r, http.StatusForbidden, "Invalid token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func deny(w http.ResponseWriter, r *http.Request, status int, detail string) {
	log.Printf("[BearerAuth] %s %s rejected with %d request_id=%s", r.Method, r.URL.Path, status, RequestID(r.Context()))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{Detail: detail})
}
