package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vibeqa/auth-service/internal/logger"
	"github.com/vibeqa/auth-service/internal/utils"
	"github.com/vibeqa/auth-service/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		// The auth middleware guarantees an identity; reaching this branch
		// means a route was wired without it.
		log.Error().Msg("no authenticated identity in request context")
		writeError(w, r, http.StatusUnauthorized, models.CodeUnauthorized, msgMissingAuthToken, nil)
		return
	}

	foundUser, err := h.services.ProfileService.GetProfile(ctx, identity.UserID)
	if err != nil {
		// A valid token does not guarantee the account still exists.
		log.Err(err).Int64("id", identity.UserID).Msg("profile lookup failed")
		failure := failureFromError(err)
		writeError(w, r, failure.status, failure.code, failure.message, nil)
		return
	}

	writeData(w, r, http.StatusOK, foundUser.Public())
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated identity in request context")
		writeError(w, r, http.StatusUnauthorized, models.CodeUnauthorized, msgMissingAuthToken, nil)
		return
	}

	var req models.UpdateProfileRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, models.CodeValidationError, "Invalid JSON body", nil)
		return
	}

	if fieldErrors := h.validator.ValidateUpdateProfileRequest(req); len(fieldErrors) > 0 {
		log.Debug().Any("field_errors", fieldErrors).Msg("profile update failed validation")
		writeValidationError(w, r, fieldErrors)
		return
	}

	updatedUser, err := h.services.ProfileService.UpdateName(ctx, identity.UserID, strings.TrimSpace(req.Name))
	if err != nil {
		log.Err(err).Int64("id", identity.UserID).Msg("profile update failed")
		failure := failureFromError(err)
		writeError(w, r, failure.status, failure.code, failure.message, nil)
		return
	}

	log.Info().Int64("id", identity.UserID).Msg("profile name updated")

	writeData(w, r, http.StatusOK, updatedUser.Public())
}
