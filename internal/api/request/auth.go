package request

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// BanUserRequest is the body of POST /api/admin/users/{uuid}/ban.
// DurationHours is ignored when Permanent is set; a zero duration with
// Permanent unset lifts any active ban.
type BanUserRequest struct {
	DurationHours float64 `json:"durationHours"`
	Permanent     bool    `json:"permanent"`
}
