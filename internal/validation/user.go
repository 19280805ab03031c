package validation

import (
	"strings"

	"github.com/arblack/trade-tracker/internal/api/request"
)

// ValidateSignup validates a signup request. Username, email, and password
// must all be non-empty; the password must be at least 8 characters.
func ValidateSignup(req request.SignupRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Username) == "" {
		errors["username"] = "username is required"
	}
	if strings.TrimSpace(req.Email) == "" {
		errors["email"] = "email is required"
	} else if !strings.Contains(req.Email, "@") {
		errors["email"] = "invalid email address"
	}
	if req.Password == "" {
		errors["password"] = "password is required"
	} else if len(req.Password) < 8 {
		errors["password"] = "password must be at least 8 characters"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateLogin validates a login request.
func ValidateLogin(req request.LoginRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Username) == "" {
		errors["username"] = "username is required"
	}
	if req.Password == "" {
		errors["password"] = "password is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateBanUser validates a ban request. A negative duration is rejected;
// zero duration without the permanent flag lifts the ban.
func ValidateBanUser(req request.BanUserRequest) error {
	if req.DurationHours < 0 {
		return &Error{Fields: map[string]string{"durationHours": "duration cannot be negative"}}
	}
	return nil
}
