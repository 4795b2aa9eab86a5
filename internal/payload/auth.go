package payload

import "github.com/vasapolrittideah/corporate-site-api/internal/model"

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SetAccountActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type AuthResponse struct {
	User  *model.Account `json:"user"`
	Token string         `json:"token"`
}

type CreateAdminResponse struct {
	Admin *model.Account `json:"admin"`
}

type MeResponse struct {
	User *model.Account `json:"user"`
}
