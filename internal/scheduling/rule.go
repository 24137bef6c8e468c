package scheduling

import (
	"context"
	"time"

	"clinic-scheduling-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingRequest is the core's view of a booking: a patient, a requested
// time, and either a specific doctor or a specialty to pick one from.
type BookingRequest struct {
	PatientID   uuid.UUID
	DoctorID    *uuid.UUID
	Specialty   entity.Specialty
	ScheduledAt time.Time
}

// CancellationRequest identifies an appointment and the reason code to
// record on it.
type CancellationRequest struct {
	AppointmentID uuid.UUID
	Reason        entity.CancellationReason
}

// BookingRule is one stateless check over a booking request. A violated
// constraint comes back as a *Rejection carrying the human-readable reason;
// any other error is an infrastructure failure.
type BookingRule interface {
	Validate(ctx context.Context, db *gorm.DB, req *BookingRequest) error
}

// CancellationRule is the cancellation-side counterpart of BookingRule.
type CancellationRule interface {
	Validate(ctx context.Context, db *gorm.DB, req *CancellationRequest) error
}

// Registry holds the rule pipelines. It is assembled once in the
// composition root and never mutated afterwards; rules run in registration
// order and the first violation stops the pipeline.
type Registry struct {
	booking      []BookingRule
	cancellation []CancellationRule
}

func NewRegistry(booking []BookingRule, cancellation []CancellationRule) *Registry {
	return &Registry{
		booking:      booking,
		cancellation: cancellation,
	}
}

func (r *Registry) ValidateBooking(ctx context.Context, db *gorm.DB, req *BookingRequest) error {
	for _, rule := range r.booking {
		if err := rule.Validate(ctx, db, req); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) ValidateCancellation(ctx context.Context, db *gorm.DB, req *CancellationRequest) error {
	for _, rule := range r.cancellation {
		if err := rule.Validate(ctx, db, req); err != nil {
			return err
		}
	}
	return nil
}
