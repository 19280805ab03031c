package handlers

import (
	"errors"
	"net/http"

	"github.com/arblack/trade-tracker/internal/api/middleware"
	"github.com/arblack/trade-tracker/internal/api/request"
	"github.com/arblack/trade-tracker/internal/api/response"
	"github.com/arblack/trade-tracker/internal/apperrors"
	"github.com/arblack/trade-tracker/internal/model"
	"github.com/arblack/trade-tracker/internal/service"
	"github.com/arblack/trade-tracker/internal/validation"
)

// AuthHandler handles HTTP requests for signup, login, and the current
// session. It serves as the HTTP layer adapter, parsing requests and
// delegating business logic to the authService.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler with the provided service dependency.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// SessionResponse is the body returned on successful signup or login.
type SessionResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Signup handles POST requests to register a new user.
//
// Endpoint: POST /api/auth/signup
// Request Body: SignupRequest (username, email, password)
// Response: 201 Created with SessionResponse
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 409 Conflict if the username is taken
// Error: 500 Internal Server Error if creation fails
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SignupRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateSignup(req); err != nil {
		response.RespondValidationError(w, err)
		return
	}

	user, token, err := h.authService.Signup(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUsernameTaken) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrUsernameTaken.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create user", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, SessionResponse{Token: token, User: user})
}

// Login handles POST requests to authenticate a user.
//
// Endpoint: POST /api/auth/login
// Request Body: LoginRequest (username, password)
// Response: 200 OK with SessionResponse
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 401 Unauthorized if the credentials are wrong
// Error: 403 Forbidden if the user is banned
// Error: 500 Internal Server Error otherwise
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.LoginRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateLogin(req); err != nil {
		response.RespondValidationError(w, err)
		return
	}

	user, token, err := h.authService.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			response.RespondError(w, http.StatusUnauthorized, apperrors.ErrInvalidCredentials.Error(), "")
		case errors.Is(err, apperrors.ErrUserBanned):
			response.RespondError(w, http.StatusForbidden, apperrors.ErrUserBanned.Error(), "")
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to log in", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, SessionResponse{Token: token, User: user})
}

// Me handles GET requests for the authenticated user's own record.
//
// Endpoint: GET /api/auth/me
// Response: 200 OK with User
// Error: 401 Unauthorized without a valid session (enforced by middleware)
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		response.RespondError(w, http.StatusUnauthorized, "authentication required", "")
		return
	}

	response.RespondJSON(w, http.StatusOK, user)
}

// Logout handles POST requests to end a session. Session tokens are
// self-contained and expire by TTL, so there is no server-side state to
// clear; the endpoint exists so clients can treat sessions symmetrically.
//
// Endpoint: POST /api/auth/logout
// Response: 204 No Content
func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusNoContent, nil)
}
