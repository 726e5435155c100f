package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vibeqa/auth-service/internal/logger"
	"github.com/vibeqa/auth-service/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, models.CodeValidationError, "Invalid JSON body", nil)
		return
	}

	if fieldErrors := h.validator.ValidateRegisterRequest(req); len(fieldErrors) > 0 {
		log.Debug().Any("field_errors", fieldErrors).Msg("register request failed validation")
		writeValidationError(w, r, fieldErrors)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req.Email, req.Password, strings.TrimSpace(req.Name))
	if err != nil {
		log.Err(err).Msg("user registration failed")
		failure := failureFromError(err)
		writeError(w, r, failure.status, failure.code, failure.message, nil)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("user registered")

	writeData(w, r, http.StatusCreated, models.RegisterResult{User: registeredUser.Public()})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, models.CodeValidationError, "Invalid JSON body", nil)
		return
	}

	if fieldErrors := h.validator.ValidateLoginRequest(req); len(fieldErrors) > 0 {
		log.Debug().Any("field_errors", fieldErrors).Msg("login request failed validation")
		writeValidationError(w, r, fieldErrors)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		log.Err(err).Msg("login failed")
		failure := failureFromError(err)
		writeError(w, r, failure.status, failure.code, failure.message, nil)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeInternalError(w, r)
		return
	}

	log.Info().Int64("id", foundUser.UserID).Msg("user logged in")

	writeData(w, r, http.StatusOK, models.LoginResult{
		Token: token.SignedString,
		User:  foundUser.Public(),
	})
}

// logout always succeeds for an authenticated caller. Session tokens are
// stateless and cannot be revoked server-side; the client is expected to
// discard its copy.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	writeData(w, r, http.StatusOK, models.MessageResult{Message: "Logout successful"})
}
