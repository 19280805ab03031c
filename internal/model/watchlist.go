package model

import "time"

// WatchlistEntry is a per-user wish to buy or sell an item at a desired price.
type WatchlistEntry struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	Name           string    `json:"name"`
	BuyOrSell      string    `json:"buyOrSell"`
	DesiredPrice   float64   `json:"desiredPrice"`
	WishedQuantity float64   `json:"wishedQuantity"`
	TotalValue     float64   `json:"totalValue"`
	CurrentHolding float64   `json:"currentHolding"`
	DateAdded      time.Time `json:"dateAdded"`
}
