package auth

// LoginRequest carries admin credentials plus an optional callback path the
// sign-in page wants to return to. The callback is sanitized server-side.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Callback string `json:"callback"`
}

type LoginResponse struct {
	User        *User  `json:"user"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
	Callback    string `json:"callback"`
}
