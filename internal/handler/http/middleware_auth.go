package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/dpramesti/hris-directory/internal/logger"
	"github.com/dpramesti/hris-directory/internal/service"
	"github.com/dpramesti/hris-directory/internal/utils"
	"github.com/dpramesti/hris-directory/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token
// (the "Bearer " scheme prefix is optional), validates it via
// [service.AuthService.ParseToken], and on success stores the
// authenticated username in the request context under [utils.UsernameCtxKey]
// before delegating to the next handler.
//
// Rejections:
//   - HTTP 403 with {"message": "Token is missing!"} when the header is
//     absent or carries no token.
//   - HTTP 401 with {"message": "Token has expired!"} when the token's
//     expiry claim has passed.
//   - HTTP 401 with {"message": "Invalid token!"} for every other
//     validation failure (bad signature, malformed, wrong issuer).
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteJSON(w, models.MessageResponse{Message: "Token is missing!"}, http.StatusForbidden)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSON(w, models.MessageResponse{Message: "Token is missing!"}, http.StatusForbidden)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
				utils.WriteJSON(w, models.MessageResponse{Message: "Token has expired!"}, http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				utils.WriteJSON(w, models.MessageResponse{Message: "Invalid token!"}, http.StatusUnauthorized)
				return
			}
		}

		// Store the authenticated username in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UsernameCtxKey, token.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
