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
)

// MembershipHandler handles HTTP requests for membership records.
type MembershipHandler struct {
	membershipService *service.MembershipService
}

// NewMembershipHandler creates a new MembershipHandler with the provided service dependency.
func NewMembershipHandler(membershipService *service.MembershipService) *MembershipHandler {
	return &MembershipHandler{
		membershipService: membershipService,
	}
}

// GetMembership handles GET requests for the authenticated user's membership
// record, looked up by account name. A user without a record gets an empty
// "none" status rather than a 404.
//
// Endpoint: GET /api/membership
// Response: 200 OK with Membership
// Error: 500 Internal Server Error if retrieval fails
func (h *MembershipHandler) GetMembership(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	membership, err := h.membershipService.Get(r.Context(), user.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrMembershipNotFound) {
			response.RespondJSON(w, http.StatusOK, model.Membership{AccountName: user.Username, Status: "none"})
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveMembership.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, membership)
}

// SetMembership handles PUT requests to create or replace a membership
// record for any account.
//
// Endpoint: PUT /api/admin/membership
// Request Body: MembershipRequest (accountName, status, endDate)
// Response: 200 OK with Membership
// Error: 400 Bad Request if the body is invalid or the end date is malformed
// Error: 500 Internal Server Error if the upsert fails
func (h *MembershipHandler) SetMembership(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.MembershipRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.AccountName == "" || req.Status == "" {
		response.RespondError(w, http.StatusBadRequest, "accountName and status are required", "")
		return
	}

	membership, err := h.membershipService.Set(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "failed to set membership", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, membership)
}
