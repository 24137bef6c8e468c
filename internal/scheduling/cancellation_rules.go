package scheduling

import (
	"context"
	"time"

	"clinic-scheduling-api/internal/domain/repository"

	"gorm.io/gorm"
)

// AppointmentExistsRule rejects cancellations referencing an unknown
// appointment id.
type AppointmentExistsRule struct {
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentExistsRule(appointmentRepo repository.AppointmentRepository) *AppointmentExistsRule {
	return &AppointmentExistsRule{appointmentRepo: appointmentRepo}
}

func (r *AppointmentExistsRule) Validate(ctx context.Context, db *gorm.DB, req *CancellationRequest) error {
	exists, err := r.appointmentRepo.ExistsByID(ctx, db, req.AppointmentID)
	if err != nil {
		return err
	}
	if !exists {
		return Reject("the given appointment id does not exist")
	}
	return nil
}

// NotCancelledRule forbids cancelling an appointment twice. Registered only
// when the re-cancel guard is enabled in config; without it a second
// cancellation silently overwrites the recorded reason.
type NotCancelledRule struct {
	appointmentRepo repository.AppointmentRepository
}

func NewNotCancelledRule(appointmentRepo repository.AppointmentRepository) *NotCancelledRule {
	return &NotCancelledRule{appointmentRepo: appointmentRepo}
}

func (r *NotCancelledRule) Validate(ctx context.Context, db *gorm.DB, req *CancellationRequest) error {
	appointment, err := r.appointmentRepo.FindByID(ctx, db, req.AppointmentID)
	if err != nil {
		return err
	}
	if appointment != nil && appointment.IsCancelled() {
		return Reject("appointment has already been cancelled")
	}
	return nil
}

// MinimumNoticeRule enforces the cancellation notice period against the
// wall clock at validation time; exactly the configured lead remaining is
// still acceptable.
type MinimumNoticeRule struct {
	lead            time.Duration
	appointmentRepo repository.AppointmentRepository
	now             func() time.Time
}

func NewMinimumNoticeRule(lead time.Duration, appointmentRepo repository.AppointmentRepository) *MinimumNoticeRule {
	return &MinimumNoticeRule{
		lead:            lead,
		appointmentRepo: appointmentRepo,
		now:             time.Now,
	}
}

func (r *MinimumNoticeRule) Validate(ctx context.Context, db *gorm.DB, req *CancellationRequest) error {
	appointment, err := r.appointmentRepo.FindByID(ctx, db, req.AppointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return Reject("the given appointment id does not exist")
	}
	if appointment.ScheduledAt.Sub(r.now()) < r.lead {
		return Reject("appointment can only be cancelled with a minimum notice of 24 hours")
	}
	return nil
}
