package dto

import (
	"time"

	"github.com/finly/finly/internal/model"
)

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Position string `json:"position,omitempty"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public shape of a user. The password hash is
// deliberately absent and must never be added.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Position  string    `json:"position,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse couples a public user with a freshly issued token.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ToUserResponse maps a user entity to its public shape.
func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Position:  user.Position,
		CreatedAt: user.CreatedAt,
	}
}

// ToUserListResponse maps a list of user entities to their public shapes.
func ToUserListResponse(users []*model.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, ToUserResponse(u))
	}
	return result
}
