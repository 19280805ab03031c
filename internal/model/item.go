package model

// Item identifies a traded instrument by its canonical name.
type Item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Alias links a short name to an item's full name, optionally with an image.
type Alias struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	ShortName string `json:"shortName"`
	ImagePath string `json:"imagePath,omitempty"`
}

// AccumulationPrice is a per-item price level the user accumulates below.
type AccumulationPrice struct {
	ID     string  `json:"id"`
	ItemID string  `json:"itemId"`
	Price  float64 `json:"price"`
}

// TargetSellPrice is a per-item price level the user intends to sell at.
type TargetSellPrice struct {
	ID     string  `json:"id"`
	ItemID string  `json:"itemId"`
	Price  float64 `json:"price"`
}
