package dto

import "time"

// RegisterRequest is the payload for POST /api/users/register
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Username string `json:"username"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the payload for POST /api/users/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued token after a successful login
type AuthResponse struct {
	Token    string `json:"token"`
	UserID   uint64 `json:"userId"`
	Username string `json:"username"`
}

// UserResponse is the public representation of an account
type UserResponse struct {
	ID        uint64 `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	IsAdmin   bool   `json:"isAdmin"`
	CreatedAt string `json:"createdAt"`
}

// FormatTime renders timestamps the way all API responses do
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
