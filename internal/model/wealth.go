package model

// WealthRecord holds one user's monthly wealth figures for one year.
// Month values are stored as entered (strings, possibly with thousands
// separators); totals parse them tolerantly and treat bad cells as zero.
type WealthRecord struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Year   int    `json:"year"`
	Months [12]string `json:"months"`
}

// MonthNames are the canonical month column names, in calendar order.
var MonthNames = [12]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// WealthPoint is one point of a monthly wealth total series.
type WealthPoint struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Total float64 `json:"total"`
}
