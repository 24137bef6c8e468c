package scheduling

import (
	"context"
	"errors"

	"clinic-scheduling-api/internal/domain/entity"
	"clinic-scheduling-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Booked is the detail view of a successful booking.
type Booked struct {
	Appointment *entity.Appointment
	Doctor      *entity.Doctor
	Patient     *entity.Patient
}

// Scheduler orchestrates booking and cancellation. Every call runs inside
// the transaction handed down by the caller: existence checks, the rule
// pipeline, selection and persistence execute in strict sequence, and a
// failure anywhere leaves nothing written.
type Scheduler struct {
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	registry        *Registry
	selector        *DoctorSelector
}

func NewScheduler(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	registry *Registry,
	selector *DoctorSelector,
) *Scheduler {
	return &Scheduler{
		log:             log,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		registry:        registry,
		selector:        selector,
	}
}

// Schedule books one appointment. Structural existence checks come first,
// then the booking rules in registration order (fail-fast), then doctor
// selection, then the single insert.
func (s *Scheduler) Schedule(ctx context.Context, db *gorm.DB, req *BookingRequest) (*Booked, error) {
	exists, err := s.patientRepo.Exists(ctx, db, req.PatientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, Reject("the given patient id was not found")
	}

	if req.DoctorID != nil {
		exists, err := s.doctorRepo.Exists(ctx, db, *req.DoctorID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, Reject("the given doctor id was not found")
		}
	}

	if err := s.registry.ValidateBooking(ctx, db, req); err != nil {
		return nil, err
	}

	patient, err := s.patientRepo.FindActiveByID(ctx, db, req.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, Reject("no active patient matches the given id")
	}

	doctor, err := s.selector.Select(ctx, db, req)
	if err != nil {
		if errors.Is(err, ErrNoDoctorAvailable) {
			return nil, Reject("no doctor is available for the requested specialty and time")
		}
		return nil, err
	}
	if doctor == nil {
		return nil, Reject("no doctor is available for the requested specialty and time")
	}

	appointment := &entity.Appointment{
		DoctorID:    doctor.ID,
		PatientID:   patient.ID,
		ScheduledAt: req.ScheduledAt,
	}
	if err := s.appointmentRepo.Create(ctx, db, appointment); err != nil {
		return nil, err
	}

	s.log.Infof("Appointment booked: id=%s, doctor=%s, patient=%s, at=%s",
		appointment.ID, doctor.ID, patient.ID, req.ScheduledAt)

	return &Booked{Appointment: appointment, Doctor: doctor, Patient: patient}, nil
}

// Cancel records a cancellation reason on an existing appointment after the
// cancellation rules pass. Explicit fetch-then-mutate: load the row, set the
// reason, persist it.
func (s *Scheduler) Cancel(ctx context.Context, db *gorm.DB, req *CancellationRequest) error {
	exists, err := s.appointmentRepo.ExistsByID(ctx, db, req.AppointmentID)
	if err != nil {
		return err
	}
	if !exists {
		return Reject("the given appointment id does not exist")
	}

	if err := s.registry.ValidateCancellation(ctx, db, req); err != nil {
		return err
	}

	appointment, err := s.appointmentRepo.FindByID(ctx, db, req.AppointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return Reject("the given appointment id does not exist")
	}

	appointment.Cancel(req.Reason)
	if err := s.appointmentRepo.UpdateCancellation(ctx, db, appointment); err != nil {
		return err
	}

	s.log.Infof("Appointment cancelled: id=%s, reason=%s", appointment.ID, req.Reason)
	return nil
}
