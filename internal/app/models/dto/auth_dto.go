package dto

// LoginRequest represents the login credentials
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued access token
type LoginResponse struct {
	Token     string `json:"token"`
	Role      string `json:"role" example:"admin"`
	UserID    int64  `json:"userId" example:"1"`
	ExpiresIn int    `json:"expiresIn" example:"28800"`
}
