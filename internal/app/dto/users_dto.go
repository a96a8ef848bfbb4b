package dto

// RegisterPayload is the raw registration body. Fields are typed as any so
// the validation pass can report non-string values the same way missing ones
// are reported, instead of failing opaquely at decode time.
type RegisterPayload struct {
	Username any `json:"username"`
	Password any `json:"password"`
	Fullname any `json:"fullname"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	AuthToken string `json:"authToken"`
}

// UserResponse is the public representation of an account.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}
