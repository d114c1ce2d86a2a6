package api

// UpdateUserRequest carries partial updates: nil fields are left untouched.
// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50" example:"johndoe"`
	Email    *string `json:"email" validate:"omitempty,email" example:"johndoe@example.com"`
	FullName *string `json:"full_name" validate:"omitempty,max=100" example:"John Doe"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin user" example:"user"`
	IsActive *bool   `json:"is_active" example:"true"`
	Password *string `json:"password" validate:"omitempty,min=8" example:"newsecretpassword"`
}
