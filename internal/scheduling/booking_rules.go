package scheduling

import (
	"context"
	"time"

	"clinic-scheduling-api/config"
	"clinic-scheduling-api/internal/domain/repository"

	"gorm.io/gorm"
)

// ActivePatientRule rejects bookings for patients that do not exist or have
// been deactivated.
type ActivePatientRule struct {
	patientRepo repository.PatientRepository
}

func NewActivePatientRule(patientRepo repository.PatientRepository) *ActivePatientRule {
	return &ActivePatientRule{patientRepo: patientRepo}
}

func (r *ActivePatientRule) Validate(ctx context.Context, db *gorm.DB, req *BookingRequest) error {
	patient, err := r.patientRepo.FindActiveByID(ctx, db, req.PatientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return Reject("no active patient matches the given id")
	}
	return nil
}

// ActiveDoctorRule rejects bookings naming a doctor that is not active.
// Bookings without a doctor id pass; the selector handles those.
type ActiveDoctorRule struct {
	doctorRepo repository.DoctorRepository
}

func NewActiveDoctorRule(doctorRepo repository.DoctorRepository) *ActiveDoctorRule {
	return &ActiveDoctorRule{doctorRepo: doctorRepo}
}

func (r *ActiveDoctorRule) Validate(ctx context.Context, db *gorm.DB, req *BookingRequest) error {
	if req.DoctorID == nil {
		return nil
	}
	doctor, err := r.doctorRepo.FindActiveByID(ctx, db, *req.DoctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return Reject("no active doctor matches the given id")
	}
	return nil
}

// SpecialtyRequiredRule demands a specialty whenever no specific doctor was
// requested, so the selector always has something to search by.
type SpecialtyRequiredRule struct{}

func NewSpecialtyRequiredRule() *SpecialtyRequiredRule {
	return &SpecialtyRequiredRule{}
}

func (r *SpecialtyRequiredRule) Validate(ctx context.Context, db *gorm.DB, req *BookingRequest) error {
	if req.DoctorID == nil && req.Specialty == "" {
		return Reject("a specialty is required when no doctor is specified")
	}
	return nil
}

// AppointmentTimeRule enforces the time policy: strictly in the future,
// inside clinic opening hours and on the configured slot grid.
type AppointmentTimeRule struct {
	cfg config.SchedulingConfig
	now func() time.Time
}

func NewAppointmentTimeRule(cfg config.SchedulingConfig) *AppointmentTimeRule {
	return &AppointmentTimeRule{cfg: cfg, now: time.Now}
}

func (r *AppointmentTimeRule) Validate(ctx context.Context, db *gorm.DB, req *BookingRequest) error {
	t := req.ScheduledAt
	if !t.After(r.now()) {
		return Reject("appointment time must be in the future")
	}
	if t.Hour() < r.cfg.OpeningHour || t.Hour() >= r.cfg.ClosingHour {
		return Reject("appointment time is outside clinic opening hours")
	}
	if r.cfg.SlotMinutes > 0 {
		if t.Minute()%r.cfg.SlotMinutes != 0 || t.Second() != 0 || t.Nanosecond() != 0 {
			return Reject("appointment time does not fall on a valid slot")
		}
	}
	return nil
}

// PatientBlackoutRule blocks a second non-cancelled appointment for the same
// patient within the clinic day of the requested time.
type PatientBlackoutRule struct {
	cfg             config.SchedulingConfig
	appointmentRepo repository.AppointmentRepository
}

func NewPatientBlackoutRule(cfg config.SchedulingConfig, appointmentRepo repository.AppointmentRepository) *PatientBlackoutRule {
	return &PatientBlackoutRule{cfg: cfg, appointmentRepo: appointmentRepo}
}

func (r *PatientBlackoutRule) Validate(ctx context.Context, db *gorm.DB, req *BookingRequest) error {
	t := req.ScheduledAt
	dayOpen := time.Date(t.Year(), t.Month(), t.Day(), r.cfg.OpeningHour, 0, 0, 0, t.Location())
	dayClose := time.Date(t.Year(), t.Month(), t.Day(), r.cfg.ClosingHour, 0, 0, 0, t.Location())

	exists, err := r.appointmentRepo.ExistsActiveByPatientBetween(ctx, db, req.PatientID, dayOpen, dayClose)
	if err != nil {
		return err
	}
	if exists {
		return Reject("patient already has an appointment on this day")
	}
	return nil
}

// DoctorConflictRule rejects a booking that names a doctor already booked
// (non-cancelled) at the exact requested time. Specialty-only requests skip
// it: the selector's eligibility query excludes conflicting doctors itself.
type DoctorConflictRule struct {
	appointmentRepo repository.AppointmentRepository
}

func NewDoctorConflictRule(appointmentRepo repository.AppointmentRepository) *DoctorConflictRule {
	return &DoctorConflictRule{appointmentRepo: appointmentRepo}
}

func (r *DoctorConflictRule) Validate(ctx context.Context, db *gorm.DB, req *BookingRequest) error {
	if req.DoctorID == nil {
		return nil
	}
	exists, err := r.appointmentRepo.ExistsActiveByDoctorAt(ctx, db, *req.DoctorID, req.ScheduledAt)
	if err != nil {
		return err
	}
	if exists {
		return Reject("doctor already has an appointment at this time")
	}
	return nil
}
