package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arblack/trade-tracker/internal/api/request"
	"github.com/arblack/trade-tracker/internal/api/response"
	"github.com/arblack/trade-tracker/internal/apperrors"
	"github.com/arblack/trade-tracker/internal/service"
)

// ItemHandler handles HTTP requests for aliases and per-item price levels.
type ItemHandler struct {
	itemService *service.ItemService
}

// NewItemHandler creates a new ItemHandler with the provided service dependency.
func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
	}
}

// ListAliases handles GET requests for aliases, optionally filtered by first
// letter via ?letter=.
//
// Endpoint: GET /api/alias
// Response: 200 OK with array of Alias
// Error: 500 Internal Server Error if retrieval fails
func (h *ItemHandler) ListAliases(w http.ResponseWriter, r *http.Request) {
	aliases, err := h.itemService.ListAliases(r.Context(), r.URL.Query().Get("letter"))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveAliases.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, aliases)
}

// CreateAlias handles POST requests to create an alias.
//
// Endpoint: POST /api/alias
// Request Body: AliasRequest (fullName, shortName, imagePath)
// Response: 201 Created with Alias
// Error: 400 Bad Request if the body is invalid or names are empty
// Error: 500 Internal Server Error if creation fails
func (h *ItemHandler) CreateAlias(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.AliasRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.FullName == "" || req.ShortName == "" {
		response.RespondError(w, http.StatusBadRequest, "fullName and shortName are required", "")
		return
	}

	alias, err := h.itemService.CreateAlias(r.Context(), req.FullName, req.ShortName, req.ImagePath)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create alias", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, alias)
}

// UpdateAlias handles PUT requests to rewrite an alias.
//
// Endpoint: PUT /api/alias/{uuid}
// Request Body: AliasRequest (fullName, shortName, imagePath)
// Response: 200 OK with Alias
// Error: 400 Bad Request if the UUID or body is invalid
// Error: 404 Not Found if the alias does not exist
// Error: 500 Internal Server Error if the update fails
func (h *ItemHandler) UpdateAlias(w http.ResponseWriter, r *http.Request) {
	aliasID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.AliasRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	alias, err := h.itemService.UpdateAlias(r.Context(), aliasID, req.FullName, req.ShortName, req.ImagePath)
	if err != nil {
		if errors.Is(err, apperrors.ErrAliasNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAliasNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update alias", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, alias)
}

// DeleteAlias handles DELETE requests to remove an alias. Items created
// through the alias keep their canonical names.
//
// Endpoint: DELETE /api/alias/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if the UUID is invalid (validated by middleware)
// Error: 404 Not Found if the alias does not exist
// Error: 500 Internal Server Error if the deletion fails
func (h *ItemHandler) DeleteAlias(w http.ResponseWriter, r *http.Request) {
	aliasID := chi.URLParam(r, "uuid")

	if err := h.itemService.DeleteAlias(r.Context(), aliasID); err != nil {
		if errors.Is(err, apperrors.ErrAliasNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAliasNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete alias", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// SetAccumulationPrice handles PUT requests to store the accumulation price
// for an item. Unknown item names create the item.
//
// Endpoint: PUT /api/item/accumulation-price
// Request Body: ItemPriceRequest (itemName, price)
// Response: 200 OK with AccumulationPrice
// Error: 400 Bad Request if the body is invalid or the price is negative
// Error: 500 Internal Server Error if the upsert fails
func (h *ItemHandler) SetAccumulationPrice(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.ItemPriceRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.ItemName == "" || req.Price < 0 {
		response.RespondError(w, http.StatusBadRequest, "itemName is required and price cannot be negative", "")
		return
	}

	price, err := h.itemService.SetAccumulationPrice(r.Context(), req.ItemName, req.Price)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to set accumulation price", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, price)
}

// SetTargetSellPrice handles PUT requests to store the target sell price for
// an item. Unknown item names create the item.
//
// Endpoint: PUT /api/item/target-sell-price
// Request Body: ItemPriceRequest (itemName, price)
// Response: 200 OK with TargetSellPrice
// Error: 400 Bad Request if the body is invalid or the price is negative
// Error: 500 Internal Server Error if the upsert fails
func (h *ItemHandler) SetTargetSellPrice(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.ItemPriceRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.ItemName == "" || req.Price < 0 {
		response.RespondError(w, http.StatusBadRequest, "itemName is required and price cannot be negative", "")
		return
	}

	price, err := h.itemService.SetTargetSellPrice(r.Context(), req.ItemName, req.Price)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to set target sell price", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, price)
}
