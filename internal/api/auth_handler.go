package api

import (
	"net/http"

	"github.com/spendtrack/spendtrack-api/internal/api/shared"
	"github.com/spendtrack/spendtrack-api/internal/platform/logger"
	"github.com/spendtrack/spendtrack-api/internal/service"
)

// AuthHandler handles user registration and login requests.
type AuthHandler struct {
	userService service.UserService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userService service.UserService) *AuthHandler {
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &AuthHandler{userService: userService}
}

// Register handles POST /users/register. On success it returns 201 with a
// signed token for the new account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	token, err := h.userService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("user registered", "email", req.Email)
	shared.RespondWithJSON(w, r, http.StatusCreated, TokenResponse{Token: token})
}

// Login handles POST /users/login. An unknown email and a wrong password are
// reported separately: the former as a bad request, the latter as
// unauthorized.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	token, err := h.userService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("user logged in", "email", req.Email)
	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}
