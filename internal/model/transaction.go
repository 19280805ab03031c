package model

import "time"

// Transaction types. The string values are significant: the profit
// recalculation orders same-day transactions by type ascending, which puts
// "Buy" before "Sell".
const (
	TypeBuy  = "Buy"
	TypeSell = "Sell"
)

// Transaction represents a single buy or sell of an item by a user.
// RealisedProfit and CumulativeProfit are outputs of the FIFO recalculation
// and must not be set by callers; they are overwritten on every recompute.
type Transaction struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	ItemID           string    `json:"itemId"`
	Type             string    `json:"type"`
	Price            float64   `json:"price"`
	Quantity         float64   `json:"quantity"`
	DateOfHolding    time.Time `json:"dateOfHolding"`
	RealisedProfit   float64   `json:"realisedProfit"`
	CumulativeProfit float64   `json:"cumulativeProfit"`
	CreatedAt        time.Time `json:"createdAt,omitempty"`
}

// TransactionResponse represents a transaction enriched with its item name
// for API responses.
type TransactionResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	ItemID           string    `json:"itemId"`
	ItemName         string    `json:"itemName"`
	Type             string    `json:"type"`
	Price            float64   `json:"price"`
	Quantity         float64   `json:"quantity"`
	DateOfHolding    time.Time `json:"dateOfHolding"`
	RealisedProfit   float64   `json:"realisedProfit"`
	CumulativeProfit float64   `json:"cumulativeProfit"`
}

// ItemSummary aggregates a user's position in one item.
type ItemSummary struct {
	ItemID         string  `json:"itemId"`
	ItemName       string  `json:"itemName"`
	TotalSold      float64 `json:"totalSold"`
	RemainingQty   float64 `json:"remainingQty"`
	AvgSoldPrice   float64 `json:"avgSoldPrice"`
	RealisedProfit float64 `json:"realisedProfit"`
}

// ProfitPoint is one point of a cumulative-profit time series.
type ProfitPoint struct {
	Date             time.Time `json:"date"`
	CumulativeProfit float64   `json:"cumulativeProfit"`
}
