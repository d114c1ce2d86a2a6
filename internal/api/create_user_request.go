package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50" example:"johndoe"`
	Email    string  `json:"email" validate:"required,email" example:"johndoe@example.com"`
	FullName *string `json:"full_name" validate:"omitempty,max=100" example:"John Doe"`
	Password string  `json:"password" validate:"required,min=8" example:"secretpassword123"`
	Role     string  `json:"role" validate:"omitempty,oneof=admin user" example:"user"`
	IsActive *bool   `json:"is_active" example:"true"`
}
