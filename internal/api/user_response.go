package api

import (
	"time"

	"slotbook/internal/model"
)

// UserResponse is the public view of a user. The password digest is never
// part of it.
// swagger:model api.UserResponse
type UserResponse struct {
	ID        int        `json:"id" example:"1"`
	Username  string     `json:"username" example:"johndoe"`
	Email     string     `json:"email" example:"johndoe@example.com"`
	FullName  *string    `json:"full_name" example:"John Doe"`
	Role      string     `json:"role" example:"user"`
	IsActive  bool       `json:"is_active" example:"true"`
	CreatedAt time.Time  `json:"created_at" example:"2025-05-01T15:04:05Z"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
