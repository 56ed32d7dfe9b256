package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"userhub-go/internal/hub/service"
	"userhub-go/pkg/httpx"
	"userhub-go/pkg/slogx"
	"userhub-go/pkg/userhub"
)

type InvitationCreateHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Create Join-Organization Invitation
//	@Description	Send a join-organization invitation to an email address with a role.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		userhub.InvitationRequest	true	"Invitation"
//	@Success		200		{object}	userhub.InvitationResult	"status, message"
//	@Failure		400		{object}	userhub.ErrorResponse		"error"
//	@Failure		401		{object}	userhub.ErrorResponse		"error"
//	@Failure		409		{object}	userhub.ErrorResponse		"error"
//	@Security		BearerAuth
//	@Router			/userapi/flows/create-join-organization [post].
func (h *InvitationCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req userhub.InvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, userhub.ErrorResponse{
			Error: "Invalid JSON body.",
		})
		return
	}

	if req.Email == "" || req.Role == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, userhub.ErrorResponse{
			Error: "Email and role are required.",
		})
		return
	}

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		writeInvalidSession(w)
		return
	}

	inv, err := h.InvitationService.CreateJoinOrganization(ctx, userID, req.Email, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			httpx.WriteJSON(w, http.StatusBadRequest, userhub.ErrorResponse{
				Error: "Email address is not valid.",
			})
		case errors.Is(err, service.ErrMissingRole):
			httpx.WriteJSON(w, http.StatusBadRequest, userhub.ErrorResponse{
				Error: "Email and role are required.",
			})
		case errors.Is(err, service.ErrDuplicateInvitation):
			httpx.WriteJSON(w, http.StatusConflict, userhub.ErrorResponse{
				Error: "An invitation for this email is already pending.",
			})
		default:
			log.Error("failed to create invitation", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, userhub.ErrorResponse{
				Error: "Failed to create invitation.",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userhub.InvitationResult{
		Status:  "success",
		Message: fmt.Sprintf("Invitation sent to %s.", inv.Email),
	})
}
