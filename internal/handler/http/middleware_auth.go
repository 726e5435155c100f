package http

import (
	"context"
	"net/http"

	"github.com/vibeqa/auth-service/internal/logger"
	"github.com/vibeqa/auth-service/internal/utils"
	"github.com/vibeqa/auth-service/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and — on success — stores
// the caller's [models.AuthenticatedIdentity] in the request context under
// [utils.IdentityCtxKey] before delegating to the next handler.
//
// There are exactly three rejection reasons, each answered with HTTP 401 and
// the UNAUTHORIZED code; only the message distinguishes them:
//   - the "Authorization" header is absent entirely;
//   - the header does not have the exact "Bearer <token>" shape;
//   - the token fails verification (bad signature, wrong algorithm, expired,
//     malformed).
//
// Token verification failures are never broken down further for the client.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, r, http.StatusUnauthorized, models.CodeUnauthorized, msgMissingAuthToken, nil)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(ErrInvalidAuthorizationHeader).Send()
			writeError(w, r, http.StatusUnauthorized, models.CodeUnauthorized, msgInvalidAuthFormat, nil)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token verification failed")
			writeError(w, r, http.StatusUnauthorized, models.CodeUnauthorized, msgInvalidOrExpiredToken, nil)
			return
		}

		// Store the authenticated identity in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.IdentityCtxKey, models.AuthenticatedIdentity{
			UserID: token.UserID,
			Email:  token.Email,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
