package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/arblack/trade-tracker/internal/api/request"
	"github.com/arblack/trade-tracker/internal/model"
)

// ValidTransactionType contains the allowed transaction type values.
var ValidTransactionType = map[string]bool{
	model.TypeBuy: true, model.TypeSell: true,
}

// ValidateCreateTransaction validates a transaction creation request.
//
// Required fields:
//   - itemName: non-empty
//   - type: Buy or Sell
//   - price: non-negative
//   - quantity: non-negative
//   - dateOfHolding: YYYY-MM-DD
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.ItemName) == "" {
		errors["itemName"] = "item name is required"
	}

	validateType(errors, req.Type)
	validateAmounts(errors, req.Price, req.Quantity)
	validateDate(errors, req.DateOfHolding)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateTransaction validates a transaction update request.
// All fields are optional, but if provided, they must meet the same
// constraints as create.
func ValidateUpdateTransaction(req request.UpdateTransactionRequest) error {
	errors := make(map[string]string)

	if req.ItemName != nil && strings.TrimSpace(*req.ItemName) == "" {
		errors["itemName"] = "item name is required"
	}
	if req.Type != nil {
		validateType(errors, *req.Type)
	}
	if req.Price != nil && *req.Price < 0 {
		errors["price"] = "price cannot be negative"
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		errors["quantity"] = "quantity cannot be negative"
	}
	if req.DateOfHolding != nil {
		validateDate(errors, *req.DateOfHolding)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

func validateType(errors map[string]string, typ string) {
	if strings.TrimSpace(typ) == "" {
		errors["type"] = "type is required"
	} else if !ValidTransactionType[typ] {
		errors["type"] = fmt.Sprintf("invalid type: %s", typ)
	}
}

func validateAmounts(errors map[string]string, price, quantity float64) {
	if price < 0 {
		errors["price"] = "price cannot be negative"
	}
	if quantity < 0 {
		errors["quantity"] = "quantity cannot be negative"
	}
}

func validateDate(errors map[string]string, date string) {
	if strings.TrimSpace(date) == "" {
		errors["dateOfHolding"] = "date is required"
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		errors["dateOfHolding"] = err.Error()
	}
}
