package dto

import (
	"github.com/parkwise/parking_cash_app/internal/core/domain"
)

// CreateUserRequest defines the data needed to sign up a new user.
// The password must be at least 8 characters and contain a lowercase letter,
// an uppercase letter and a digit (enforced by the strongpassword validator).
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,strongpassword"`
}

// UserResponse defines the data returned after sign-up.
type UserResponse struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID: user.UserID,
		Email:  user.Email,
	}
}
