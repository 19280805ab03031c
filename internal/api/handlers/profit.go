package handlers

import (
	"errors"
	"net/http"

	"github.com/arblack/trade-tracker/internal/api/middleware"
	"github.com/arblack/trade-tracker/internal/api/response"
	"github.com/arblack/trade-tracker/internal/apperrors"
	"github.com/arblack/trade-tracker/internal/service"
)

// ProfitHandler handles HTTP requests for profit figures and chart series.
type ProfitHandler struct {
	profitService *service.ProfitService
	itemService   *service.ItemService
}

// NewProfitHandler creates a new ProfitHandler with the provided service dependencies.
func NewProfitHandler(profitService *service.ProfitService, itemService *service.ItemService) *ProfitHandler {
	return &ProfitHandler{
		profitService: profitService,
		itemService:   itemService,
	}
}

// GlobalProfitResponse is the body of the global profit endpoint.
type GlobalProfitResponse struct {
	RealisedProfit float64 `json:"realisedProfit"`
}

// GlobalProfit handles GET requests for the authenticated user's total
// realised profit across all items.
//
// Endpoint: GET /api/profit
// Response: 200 OK with GlobalProfitResponse
// Error: 500 Internal Server Error if retrieval fails
func (h *ProfitHandler) GlobalProfit(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	profit, err := h.profitService.GlobalRealisedProfit(r.Context(), user.ID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveProfit.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, GlobalProfitResponse{RealisedProfit: profit})
}

// ProfitSeries handles GET requests for the cumulative-profit chart series.
// An optional ?item= query restricts the series to one item, resolved through
// aliases.
//
// Endpoint: GET /api/profit/series
// Response: 200 OK with array of ProfitPoint
// Error: 404 Not Found if the item filter matches nothing
// Error: 500 Internal Server Error if retrieval fails
func (h *ProfitHandler) ProfitSeries(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	itemID := ""
	if itemName := r.URL.Query().Get("item"); itemName != "" {
		item, err := h.itemService.Resolve(r.Context(), itemName)
		if err != nil {
			if errors.Is(err, apperrors.ErrItemNotFound) {
				response.RespondError(w, http.StatusNotFound, apperrors.ErrItemNotFound.Error(), "")
				return
			}
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveProfit.Error(), err.Error())
			return
		}
		itemID = item.ID
	}

	points, err := h.profitService.CumulativeSeries(r.Context(), user.ID, itemID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveProfit.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, points)
}

// Recompute handles POST requests to force a full recompute of every user's
// profit figures. Admin only.
//
// Endpoint: POST /api/admin/recompute
// Response: 204 No Content when every user recomputed cleanly
// Error: 500 Internal Server Error listing the users that failed
func (h *ProfitHandler) Recompute(w http.ResponseWriter, r *http.Request) {
	if err := h.profitService.RecomputeAll(r.Context()); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRecompute.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
