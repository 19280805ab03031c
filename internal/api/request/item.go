package request

// AliasRequest is the body of POST /api/alias and PUT /api/alias/{uuid}.
type AliasRequest struct {
	FullName  string `json:"fullName"`
	ShortName string `json:"shortName"`
	ImagePath string `json:"imagePath"`
}

// ItemPriceRequest is the body of the accumulation-price and
// target-sell-price upserts. ItemName resolves through aliases and creates
// the item when it does not exist yet.
type ItemPriceRequest struct {
	ItemName string  `json:"itemName"`
	Price    float64 `json:"price"`
}
