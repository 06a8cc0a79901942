package dto

import "wedding_service/internal/domain/models"

type RSVPRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Attending   *bool  `json:"attending" validate:"required"`
	PlusOne     bool   `json:"plusOne"`
	PlusOneName string `json:"plusOneName,omitempty" validate:"max=100"`
	Message     string `json:"message,omitempty" validate:"max=500"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,min=5,max=30"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
}

type RSVPResponse struct {
	Message string        `json:"message"`
	Guest   *models.Guest `json:"guest"`
}

type GuestListResponse struct {
	Guests []models.Guest     `json:"guests"`
	Stats  models.GuestStats `json:"stats"`
}
