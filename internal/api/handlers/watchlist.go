package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arblack/trade-tracker/internal/api/middleware"
	"github.com/arblack/trade-tracker/internal/api/request"
	"github.com/arblack/trade-tracker/internal/api/response"
	"github.com/arblack/trade-tracker/internal/apperrors"
	"github.com/arblack/trade-tracker/internal/service"
	"github.com/arblack/trade-tracker/internal/validation"
)

// WatchlistHandler handles HTTP requests for the per-user watchlist.
type WatchlistHandler struct {
	watchlistService *service.WatchlistService
}

// NewWatchlistHandler creates a new WatchlistHandler with the provided service dependency.
func NewWatchlistHandler(watchlistService *service.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistService: watchlistService,
	}
}

// ListWatchlist handles GET requests for the authenticated user's watchlist,
// newest first.
//
// Endpoint: GET /api/watchlist
// Response: 200 OK with array of WatchlistEntry
// Error: 500 Internal Server Error if retrieval fails
func (h *WatchlistHandler) ListWatchlist(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	entries, err := h.watchlistService.ListByUser(r.Context(), user.ID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveWatchlist.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, entries)
}

// CreateWatchlistEntry handles POST requests to add a watchlist entry.
//
// Endpoint: POST /api/watchlist
// Request Body: CreateWatchlistRequest (name, buyOrSell, desiredPrice, wishedQuantity)
// Response: 201 Created with WatchlistEntry
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *WatchlistHandler) CreateWatchlistEntry(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	req, err := parseJSON[request.CreateWatchlistRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateWatchlist(req); err != nil {
		response.RespondValidationError(w, err)
		return
	}

	entry, err := h.watchlistService.Create(r.Context(), user.ID, req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create watchlist entry", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, entry)
}

// DeleteWatchlistEntry handles DELETE requests to remove a watchlist entry.
//
// Endpoint: DELETE /api/watchlist/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if the UUID is invalid (validated by middleware)
// Error: 404 Not Found if the entry does not exist or belongs to someone else
// Error: 500 Internal Server Error if the deletion fails
func (h *WatchlistHandler) DeleteWatchlistEntry(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())
	entryID := chi.URLParam(r, "uuid")

	if err := h.watchlistService.Delete(r.Context(), user.ID, entryID); err != nil {
		if errors.Is(err, apperrors.ErrWatchlistEntryNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrWatchlistEntryNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete watchlist entry", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
