package validation

import (
	"github.com/arblack/trade-tracker/internal/api/request"
)

// ValidateWealthRecord validates a wealth record create/update request.
func ValidateWealthRecord(req request.WealthRecordRequest) error {
	if req.Year < 1900 || req.Year > 2200 {
		return &Error{Fields: map[string]string{"year": "year out of range"}}
	}
	return nil
}
