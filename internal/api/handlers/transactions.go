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

// defaultRecentLimit bounds the recent-transactions feed when the client does
// not pass a limit.
const defaultRecentLimit = 20

// TransactionHandler handles HTTP requests for transaction endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the transactionService.
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// ListTransactions handles GET requests to retrieve the authenticated user's
// transactions, newest first. An optional ?item= query restricts the list to
// one item, resolved through aliases.
//
// Endpoint: GET /api/transaction
// Response: 200 OK with array of TransactionResponse
// Error: 404 Not Found if the item filter matches nothing
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	transactions, err := h.transactionService.ListByUser(r.Context(), user.ID, r.URL.Query().Get("item"))
	if err != nil {
		if errors.Is(err, apperrors.ErrItemNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrItemNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transactions)
}

// RecentTransactions handles GET requests for the most recent transactions
// across all users. The ?limit= query overrides the default of 20.
//
// Endpoint: GET /api/transaction/recent
// Response: 200 OK with array of TransactionResponse
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) RecentTransactions(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	transactions, err := h.transactionService.Recent(r.Context(), limit)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transactions)
}

// GetTransaction handles GET requests to retrieve a single transaction owned
// by the authenticated user.
//
// Endpoint: GET /api/transaction/{uuid}
// Response: 200 OK with Transaction
// Error: 400 Bad Request if the UUID is invalid (validated by middleware)
// Error: 404 Not Found if the transaction does not exist or belongs to someone else
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())
	transactionID := chi.URLParam(r, "uuid")

	transaction, err := h.transactionService.Get(r.Context(), user.ID, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransaction.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transaction)
}

// CreateTransaction handles POST requests to create a new transaction.
// Profit figures are recomputed before the response is sent, so the returned
// transaction carries up-to-date realised and cumulative profit.
//
// Endpoint: POST /api/transaction
// Request Body: CreateTransactionRequest (itemName, type, price, quantity, dateOfHolding)
// Response: 201 Created with Transaction
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation or recompute fails
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	req, err := parseJSON[request.CreateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTransaction(req); err != nil {
		response.RespondValidationError(w, err)
		return
	}

	transaction, err := h.transactionService.Create(r.Context(), user.ID, req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create transaction", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, transaction)
}

// UpdateTransaction handles PUT requests to update an existing transaction.
// Profit figures are recomputed before the response is sent.
//
// Endpoint: PUT /api/transaction/{uuid}
// Request Body: UpdateTransactionRequest (all fields optional)
// Response: 200 OK with updated Transaction
// Error: 400 Bad Request if the UUID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if the transaction does not exist or belongs to someone else
// Error: 500 Internal Server Error if the update or recompute fails
func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())
	transactionID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateTransaction(req); err != nil {
		response.RespondValidationError(w, err)
		return
	}

	transaction, err := h.transactionService.Update(r.Context(), user.ID, transactionID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update transaction", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transaction)
}

// DeleteTransaction handles DELETE requests to remove a transaction.
// Profit figures are recomputed before the response is sent.
//
// Endpoint: DELETE /api/transaction/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if the UUID is invalid (validated by middleware)
// Error: 404 Not Found if the transaction does not exist or belongs to someone else
// Error: 500 Internal Server Error if the deletion or recompute fails
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())
	transactionID := chi.URLParam(r, "uuid")

	err := h.transactionService.Delete(r.Context(), user.ID, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete transaction", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// ItemSummary handles GET requests for the authenticated user's aggregated
// position in one item.
//
// Endpoint: GET /api/transaction/summary?item=<name>
// Response: 200 OK with ItemSummary
// Error: 400 Bad Request if the item query is missing
// Error: 404 Not Found if the item matches nothing
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) ItemSummary(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	itemName := r.URL.Query().Get("item")
	if itemName == "" {
		response.RespondError(w, http.StatusBadRequest, "item query parameter is required", "")
		return
	}

	summary, err := h.transactionService.ItemSummary(r.Context(), user.ID, itemName)
	if err != nil {
		if errors.Is(err, apperrors.ErrItemNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrItemNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}
