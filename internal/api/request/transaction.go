package request

// CreateTransactionRequest is the body of POST /api/transaction.
// ItemName may be an item's canonical name or an alias short name; unknown
// names create a new item.
type CreateTransactionRequest struct {
	ItemName      string  `json:"itemName"`
	Type          string  `json:"type"`
	Price         float64 `json:"price"`
	Quantity      float64 `json:"quantity"`
	DateOfHolding string  `json:"dateOfHolding"`
}

// UpdateTransactionRequest is the body of PUT /api/transaction/{uuid}.
// All fields are optional; absent fields keep their stored values.
type UpdateTransactionRequest struct {
	ItemName      *string  `json:"itemName,omitempty"`
	Type          *string  `json:"type,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	Quantity      *float64 `json:"quantity,omitempty"`
	DateOfHolding *string  `json:"dateOfHolding,omitempty"`
}
