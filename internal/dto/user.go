package dto

import (
	"time"

	"github.com/dialloibra/microcredit/internal/domain"
)

type CreateUserRequestDTO struct {
	Name     string      `json:"name" validate:"required,min=2,max=100" example:"Aminata Diallo"`
	Email    string      `json:"email" validate:"required,email" example:"aminata@example.com"`
	Password string      `json:"password" validate:"required,min=8"`
	Role     domain.Role `json:"role" validate:"required,oneof=CLIENT SUPERVISOR ADMINISTRATOR" example:"CLIENT"`
}

type UpdateUserRequestDTO struct {
	Name     string      `json:"name" validate:"required,min=2,max=100"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password,omitempty" validate:"omitempty,min=8"`
	Role     domain.Role `json:"role" validate:"required,oneof=CLIENT SUPERVISOR ADMINISTRATOR"`
}

// UserResponseDTO never carries the password hash.
type UserResponseDTO struct {
	ID        int         `json:"id" example:"1"`
	Name      string      `json:"name" example:"Aminata Diallo"`
	Email     string      `json:"email" example:"aminata@example.com"`
	Role      domain.Role `json:"role" example:"CLIENT"`
	CreatedAt time.Time   `json:"created_at"`
}

func NewUserResponse(u *domain.User) UserResponseDTO {
	return UserResponseDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
