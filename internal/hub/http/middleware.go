package http

import (
	"net/http"
	"strings"

	"userhub-go/internal/hub/service"
	"userhub-go/pkg/httpx"
	"userhub-go/pkg/userhub"
)

// AuthnMiddleware verifies the Authorization bearer token and stows the
// subject user id in the request context.
func AuthnMiddleware(sessions *service.SessionService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeInvalidSession(w)
				return
			}

			userID, err := sessions.VerifySession(r.Context(), token)
			if err != nil {
				writeInvalidSession(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(httpx.ContextWithUserID(r.Context(), userID)))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func writeInvalidSession(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusUnauthorized, userhub.ErrorResponse{
		Error: "Invalid session token. Please authenticate again.",
	})
}
