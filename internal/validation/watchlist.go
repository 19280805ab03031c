package validation

import (
	"fmt"
	"strings"

	"github.com/arblack/trade-tracker/internal/api/request"
)

// ValidateCreateWatchlist validates a watchlist creation request.
func ValidateCreateWatchlist(req request.CreateWatchlistRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}
	if !ValidTransactionType[req.BuyOrSell] {
		errors["buyOrSell"] = fmt.Sprintf("invalid direction: %s", req.BuyOrSell)
	}
	if req.DesiredPrice < 0 {
		errors["desiredPrice"] = "desired price cannot be negative"
	}
	if req.WishedQuantity < 0 {
		errors["wishedQuantity"] = "wished quantity cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
