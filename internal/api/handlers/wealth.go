package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/arblack/trade-tracker/internal/api/middleware"
	"github.com/arblack/trade-tracker/internal/api/request"
	"github.com/arblack/trade-tracker/internal/api/response"
	"github.com/arblack/trade-tracker/internal/apperrors"
	"github.com/arblack/trade-tracker/internal/service"
	"github.com/arblack/trade-tracker/internal/validation"
)

// WealthHandler handles HTTP requests for monthly wealth records.
type WealthHandler struct {
	wealthService *service.WealthService
}

// NewWealthHandler creates a new WealthHandler with the provided service dependency.
func NewWealthHandler(wealthService *service.WealthService) *WealthHandler {
	return &WealthHandler{
		wealthService: wealthService,
	}
}

// ListWealth handles GET requests for the authenticated user's wealth
// records, optionally restricted to one year via ?year=.
//
// Endpoint: GET /api/wealth
// Response: 200 OK with array of WealthRecord
// Error: 400 Bad Request if the year query is not a number
// Error: 500 Internal Server Error if retrieval fails
func (h *WealthHandler) ListWealth(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	year := 0
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid year", err.Error())
			return
		}
		year = parsed
	}

	records, err := h.wealthService.ListByUser(r.Context(), user.ID, year)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveWealth.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, records)
}

// WealthYears handles GET requests for the distinct years covered by the
// authenticated user's records, newest first.
//
// Endpoint: GET /api/wealth/years
// Response: 200 OK with array of int
// Error: 500 Internal Server Error if retrieval fails
func (h *WealthHandler) WealthYears(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	years, err := h.wealthService.Years(r.Context(), user.ID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveWealth.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, years)
}

// WealthSeries handles GET requests for the monthly wealth total series
// across all of the authenticated user's records.
//
// Endpoint: GET /api/wealth/series
// Response: 200 OK with array of WealthPoint
// Error: 500 Internal Server Error if retrieval fails
func (h *WealthHandler) WealthSeries(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	points, err := h.wealthService.Series(r.Context(), user.ID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveWealth.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, points)
}

// CreateWealthRecord handles POST requests to store a new wealth record.
//
// Endpoint: POST /api/wealth
// Request Body: WealthRecordRequest (year plus twelve month strings)
// Response: 201 Created with WealthRecord
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *WealthHandler) CreateWealthRecord(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	req, err := parseJSON[request.WealthRecordRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateWealthRecord(req); err != nil {
		response.RespondValidationError(w, err)
		return
	}

	record, err := h.wealthService.Create(r.Context(), user.ID, req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create wealth record", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, record)
}

// UpdateWealthRecord handles PUT requests to rewrite a wealth record.
//
// Endpoint: PUT /api/wealth/{uuid}
// Request Body: WealthRecordRequest (year plus twelve month strings)
// Response: 200 OK with WealthRecord
// Error: 400 Bad Request if the UUID or body is invalid or validation fails
// Error: 404 Not Found if the record does not exist or belongs to someone else
// Error: 500 Internal Server Error if the update fails
func (h *WealthHandler) UpdateWealthRecord(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())
	recordID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.WealthRecordRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateWealthRecord(req); err != nil {
		response.RespondValidationError(w, err)
		return
	}

	record, err := h.wealthService.Update(r.Context(), user.ID, recordID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrWealthRecordNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrWealthRecordNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update wealth record", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, record)
}

// DeleteWealthRecords handles POST requests to mass-delete wealth records.
// IDs that do not exist or belong to someone else are skipped silently.
//
// Endpoint: POST /api/wealth/delete
// Request Body: DeleteWealthRequest (ids)
// Response: 204 No Content
// Error: 400 Bad Request if the body is invalid or an ID is not a UUID
// Error: 500 Internal Server Error if the deletion fails
func (h *WealthHandler) DeleteWealthRecords(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	req, err := parseJSON[request.DeleteWealthRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUUIDs(req.IDs); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid UUID format", err.Error())
		return
	}

	if err := h.wealthService.Delete(r.Context(), user.ID, req.IDs); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to delete wealth records", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
