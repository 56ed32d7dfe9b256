package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"userhub-go/internal/hub/service"
	"userhub-go/pkg/httpx"
	"userhub-go/pkg/slogx"
	"userhub-go/pkg/userhub"
)

type SessionCreateHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Create API Session
//	@Description	Exchange a username and password for an API session token.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		userhub.CreateSessionRequest	true	"Credentials"
//	@Success		200		{object}	userhub.CreateSessionResponse	"sessionToken"
//	@Failure		400		{object}	userhub.ErrorResponse			"error"
//	@Failure		401		{object}	userhub.ErrorResponse			"error"
//	@Router			/adminapi/users/create-api-session [post].
func (h *SessionCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req userhub.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, userhub.ErrorResponse{
			Error: "Invalid JSON body.",
		})
		return
	}

	token, err := h.SessionService.CreateAPISession(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteJSON(w, http.StatusUnauthorized, userhub.ErrorResponse{
				Error: "Invalid username or password.",
			})
			return
		}
		log.Error("failed to create api session", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, userhub.ErrorResponse{
			Error: "Failed to create session.",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userhub.CreateSessionResponse{
		SessionToken: token,
	})
}
