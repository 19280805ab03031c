package handlers

import (
	"errors"
	"net/http"

	"github.com/arblack/trade-tracker/internal/api/middleware"
	"github.com/arblack/trade-tracker/internal/api/response"
	"github.com/arblack/trade-tracker/internal/apperrors"
	"github.com/arblack/trade-tracker/internal/service"
)

// maxImportBytes bounds the size of an uploaded CSV export.
const maxImportBytes = 10 << 20

// ImportHandler handles HTTP requests for legacy CSV imports.
type ImportHandler struct {
	importService *service.ImportService
}

// NewImportHandler creates a new ImportHandler with the provided service dependency.
func NewImportHandler(importService *service.ImportService) *ImportHandler {
	return &ImportHandler{
		importService: importService,
	}
}

// ImportResponse reports how many rows a CSV import inserted.
type ImportResponse struct {
	Imported int `json:"imported"`
}

// ImportCSV handles POST requests to import a legacy CSV transaction export
// for the authenticated user. The file is uploaded as multipart form data
// under the "file" field. Profits are recomputed once after the last row.
//
// Endpoint: POST /api/import/csv
// Response: 200 OK with ImportResponse
// Error: 400 Bad Request if the upload is missing, the headers are wrong, or a row is malformed
// Error: 500 Internal Server Error if storage or the recompute fails
func (h *ImportHandler) ImportCSV(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)

	file, _, err := r.FormFile("file")
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "file upload is required", err.Error())
		return
	}
	defer file.Close()

	imported, err := h.importService.ImportCSV(r.Context(), user.ID, file)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCSVHeaders) || errors.Is(err, apperrors.ErrNegativeAmount) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrFailedToImportCSV.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToImportCSV.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, ImportResponse{Imported: imported})
}
