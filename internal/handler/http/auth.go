package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/apexglitch/crm/internal/logger"
	"github.com/apexglitch/crm/internal/service"
	"github.com/apexglitch/crm/internal/store"
	"github.com/apexglitch/crm/internal/utils"
	"github.com/apexglitch/crm/models"
)

// root answers the unauthenticated health probe.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("CRM Backend is running!"))
}

// adminExists reports whether the bootstrap admin account has been created.
// The route is public so that clients can decide between showing the
// bootstrap form and the regular login form.
func (h *Handler) adminExists(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	exists, err := h.services.AuthService.AdminExists(r.Context())
	if err != nil {
		log.Err(err).Msg("error checking for admin account")
		writeError(w, "failed to check admin status", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AdminExistsResponse{AdminExists: exists}, http.StatusOK)
}

// register creates the first administrator account. It is open only until an
// admin exists and requires the configured secret code.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.BootstrapRegister(r.Context(), req.Email, req.Password, req.SecretCode)
	if err != nil {
		log.Err(err).Msg("admin registration failed")
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, user.Public(), http.StatusCreated)
}

// registerUser creates a regular account. No secret code is required.
func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), req.Email, req.Password)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, user.Public(), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		// unknown email and wrong password are indistinguishable to callers
		case errors.Is(err, store.ErrNoUserWasFound), errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("login rejected")
			writeError(w, "invalid credentials", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("login failed")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Err(err).Msg("token creation failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		Token: token.SignedString,
		User:  user.Public(),
	}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		log.Error().Msg("no principal in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ChangePassword(r.Context(), principal, req.CurrentPassword, req.NewPassword); err != nil {
		log.Err(err).Msg("password change failed")
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "Password updated successfully"}, http.StatusOK)
}

func (h *Handler) changeEmail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		log.Error().Msg("no principal in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.ChangeEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ChangeEmail(r.Context(), principal, req.NewEmail); err != nil {
		log.Err(err).Msg("email change failed")
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, map[string]string{
		"message":  "Email updated successfully",
		"newEmail": req.NewEmail,
	}, http.StatusOK)
}

// createAdmin lets an existing administrator provision another admin account.
// The configured secret code is required even for authenticated admins.
func (h *Handler) createAdmin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		log.Error().Msg("no principal in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.CreateAdmin(r.Context(), principal, req.Email, req.Password, req.SecretCode)
	if err != nil {
		log.Err(err).Msg("admin creation failed")
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, user.Public(), http.StatusCreated)
}
