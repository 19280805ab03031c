package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arblack/trade-tracker/internal/api/request"
	"github.com/arblack/trade-tracker/internal/api/response"
	"github.com/arblack/trade-tracker/internal/apperrors"
	"github.com/arblack/trade-tracker/internal/service"
	"github.com/arblack/trade-tracker/internal/validation"
)

// UserHandler handles admin HTTP requests for user management.
type UserHandler struct {
	authService *service.AuthService
}

// NewUserHandler creates a new UserHandler with the provided service dependency.
func NewUserHandler(authService *service.AuthService) *UserHandler {
	return &UserHandler{
		authService: authService,
	}
}

// ListUsers handles GET requests to retrieve all users with their ban state.
//
// Endpoint: GET /api/admin/users
// Response: 200 OK with array of UserResponse
// Error: 500 Internal Server Error if retrieval fails
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveUsers.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, users)
}

// BanUser handles POST requests to ban or unban a user.
//
// Endpoint: POST /api/admin/users/{uuid}/ban
// Request Body: BanUserRequest (durationHours, permanent)
// Response: 200 OK with UserBan
// Error: 400 Bad Request if the UUID or body is invalid
// Error: 404 Not Found if the user does not exist
// Error: 500 Internal Server Error if the ban cannot be stored
func (h *UserHandler) BanUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.BanUserRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateBanUser(req); err != nil {
		response.RespondValidationError(w, err)
		return
	}

	ban, err := h.authService.BanUser(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrUserNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to ban user", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, ban)
}
