package dto

// SignInRequest defines the sign-in credentials.
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignInResponse defines the data returned on a successful sign-in.
type SignInResponse struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}
