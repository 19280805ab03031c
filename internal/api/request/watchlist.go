package request

// CreateWatchlistRequest is the body of POST /api/watchlist.
type CreateWatchlistRequest struct {
	Name           string  `json:"name"`
	BuyOrSell      string  `json:"buyOrSell"`
	DesiredPrice   float64 `json:"desiredPrice"`
	WishedQuantity float64 `json:"wishedQuantity"`
}
