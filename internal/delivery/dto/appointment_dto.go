package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type BookAppointmentRequest struct {
	PatientID   uuid.UUID  `json:"patient_id" validate:"required"`
	DoctorID    *uuid.UUID `json:"doctor_id" validate:"omitempty"`
	Specialty   string     `json:"specialty" validate:"omitempty,oneof=cardiology dermatology general-medicine orthopedics pediatrics"`
	ScheduledAt time.Time  `json:"scheduled_at" validate:"required"`
}

type CancelAppointmentRequest struct {
	AppointmentID uuid.UUID `json:"appointment_id" validate:"required"`
	Reason        string    `json:"reason" validate:"required,oneof=patient doctor administrative"`
}

// Response DTOs

type DoctorSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
}

type PatientSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// AppointmentDetailResponse is the booking result: who was assigned, for
// whom, and when.
type AppointmentDetailResponse struct {
	ID          uuid.UUID      `json:"id"`
	Doctor      DoctorSummary  `json:"doctor"`
	Patient     PatientSummary `json:"patient"`
	ScheduledAt time.Time      `json:"scheduled_at"`
	CreatedAt   time.Time      `json:"created_at"`
}

type AppointmentResponse struct {
	ID                 uuid.UUID `json:"id"`
	DoctorID           uuid.UUID `json:"doctor_id"`
	DoctorName         string    `json:"doctor_name,omitempty"`
	PatientID          uuid.UUID `json:"patient_id"`
	ScheduledAt        time.Time `json:"scheduled_at"`
	CancellationReason string    `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
