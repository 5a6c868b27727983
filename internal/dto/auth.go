package dto

type RegisterRequestDTO struct {
	Name     string `json:"name" validate:"required,min=2,max=100" example:"Aminata Diallo"`
	Email    string `json:"email" validate:"required,email" example:"aminata@example.com"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"aminata@example.com"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
