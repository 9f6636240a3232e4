package dto

import "jobboard_backend/internal/models"

// RegisterRequest - запрос регистрации.
// Роль выбирается регистрирующимся и никем не перепроверяется.
type RegisterRequest struct {
	Name     string          `json:"name" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6"`
	Role     models.UserRole `json:"role" validate:"required,oneof=seeker employer admin"`
	Location string          `json:"location,omitempty"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
