package http

import (
	"context"
	"net/http"

	"github.com/apexglitch/crm/internal/logger"
	"github.com/apexglitch/crm/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and — on success — stores
// the authenticated identity in the request context under
// [utils.PrincipalCtxKey] before delegating to the next handler.
//
// A missing or malformed "Authorization" header is rejected with
// HTTP 401 Unauthorized; a token that fails validation (bad signature,
// wrong issuer, expired) is rejected with HTTP 403 Forbidden.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token rejected")
			writeError(w, err.Error(), http.StatusForbidden)
			return
		}

		// Store the authenticated identity in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.PrincipalCtxKey, token.Principal())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
