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

type TokenExchangeHandler struct {
	ExchangeService *service.ExchangeService
}

// ServeHTTP godoc
//
//	@Summary		Exchange Provider Token
//	@Description	Exchange an external identity-provider token for an API session token.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		userhub.ExchangeTokenRequest	true	"Provider token"
//	@Success		200		{object}	userhub.ExchangeTokenResponse	"sessionToken, expiresIn, tokenType"
//	@Failure		400		{object}	userhub.ErrorResponse			"error"
//	@Failure		401		{object}	userhub.ErrorResponse			"error"
//	@Router			/userapi/session/exchange-token [post].
func (h *TokenExchangeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req userhub.ExchangeTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, userhub.ErrorResponse{
			Error: "Invalid JSON body.",
		})
		return
	}

	token, expiresIn, err := h.ExchangeService.ExchangeToken(ctx, req.ProviderToken, req.Provider)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownProvider):
			httpx.WriteJSON(w, http.StatusBadRequest, userhub.ErrorResponse{
				Error: "Unknown identity provider.",
			})
		case errors.Is(err, service.ErrInvalidProviderToken):
			httpx.WriteJSON(w, http.StatusUnauthorized, userhub.ErrorResponse{
				Error: "Invalid provider token.",
			})
		default:
			log.Error("failed to exchange token", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, userhub.ErrorResponse{
				Error: "Failed to exchange token.",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userhub.ExchangeTokenResponse{
		SessionToken: token,
		ExpiresIn:    expiresIn,
		TokenType:    "Bearer",
	})
}
