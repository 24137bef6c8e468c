package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	Name          string `json:"name" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"omitempty,min=7,max=20"`
	LicenseNumber string `json:"license_number" validate:"required"`
	Specialty     string `json:"specialty" validate:"required,oneof=cardiology dermatology general-medicine orthopedics pediatrics"`
}

// UpdateDoctorRequest carries partial updates; the specialty is immutable
// after registration, matching the registry's update contract.
type UpdateDoctorRequest struct {
	Name  string `json:"name" validate:"omitempty,min=2"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,min=7,max=20"`
}

// Response DTOs

type DoctorResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	LicenseNumber string    `json:"license_number"`
	Specialty     string    `json:"specialty"`
	Active        *bool     `json:"active"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}
