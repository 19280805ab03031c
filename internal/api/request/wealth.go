package request

// WealthRecordRequest is the body of POST /api/wealth and PUT /api/wealth/{uuid}.
// Month values are free-form strings; totals parse them tolerantly.
type WealthRecordRequest struct {
	Year      int    `json:"year"`
	January   string `json:"january"`
	February  string `json:"february"`
	March     string `json:"march"`
	April     string `json:"april"`
	May       string `json:"may"`
	June      string `json:"june"`
	July      string `json:"july"`
	August    string `json:"august"`
	September string `json:"september"`
	October   string `json:"october"`
	November  string `json:"november"`
	December  string `json:"december"`
}

// Months returns the month values in calendar order.
func (r *WealthRecordRequest) Months() [12]string {
	return [12]string{
		r.January, r.February, r.March, r.April, r.May, r.June,
		r.July, r.August, r.September, r.October, r.November, r.December,
	}
}

// DeleteWealthRequest is the body of POST /api/wealth/delete (mass delete).
type DeleteWealthRequest struct {
	IDs []string `json:"ids"`
}
