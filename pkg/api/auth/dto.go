package auth

// User — принципал идентичности; возвращается register/me.
type User struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
	IsActive bool    `json:"is_active"`
}

// LoginCredentials уходят form-encoded, не JSON.
type LoginCredentials struct {
	Username string
	Password string
}

type RegisterData struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"full_name,omitempty"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
