package request

// MembershipRequest is the body of PUT /api/admin/membership.
// EndDate is YYYY-MM-DD, or empty for open-ended.
type MembershipRequest struct {
	AccountName string `json:"accountName"`
	Status      string `json:"status"`
	EndDate     string `json:"endDate"`
}
