package scheduling

import (
	"context"
	"io"
	"testing"
	"time"

	"clinic-scheduling-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type schedulerFixture struct {
	doctorRepo      *fakeDoctorRepo
	patientRepo     *fakePatientRepo
	appointmentRepo *fakeAppointmentRepo
	bookingRules    []BookingRule
	cancelRules     []CancellationRule
}

func (f *schedulerFixture) build() *Scheduler {
	registry := NewRegistry(f.bookingRules, f.cancelRules)
	selector := NewDoctorSelector(f.doctorRepo)
	return NewScheduler(testLogger(), f.doctorRepo, f.patientRepo, f.appointmentRepo, registry, selector)
}

func newSchedulerFixture() *schedulerFixture {
	return &schedulerFixture{
		doctorRepo:      &fakeDoctorRepo{},
		patientRepo:     &fakePatientRepo{},
		appointmentRepo: &fakeAppointmentRepo{},
	}
}

func TestScheduleBooksAppointment(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()
	at := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)

	f := newSchedulerFixture()
	f.patientRepo.ExistsFunc = func(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
		return id == patientID, nil
	}
	f.patientRepo.FindActiveByIDFunc = func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
		return &entity.Patient{ID: id, Name: "Ana"}, nil
	}
	f.doctorRepo.ExistsFunc = func(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
		return id == doctorID, nil
	}
	f.doctorRepo.FindActiveByIDFunc = func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
		return &entity.Doctor{ID: id, Name: "Dr. Reis", Specialty: entity.SpecialtyCardiology}, nil
	}

	var created *entity.Appointment
	f.appointmentRepo.CreateFunc = func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
		created = appointment
		return nil
	}

	booked, err := f.build().Schedule(context.Background(), nil, &BookingRequest{
		PatientID:   patientID,
		DoctorID:    &doctorID,
		ScheduledAt: at,
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, doctorID, created.DoctorID)
	assert.Equal(t, patientID, created.PatientID)
	assert.Equal(t, at, created.ScheduledAt)
	assert.Equal(t, doctorID, booked.Doctor.ID)
	assert.Equal(t, patientID, booked.Patient.ID)
}

func TestScheduleRejectsUnknownPatient(t *testing.T) {
	f := newSchedulerFixture()
	f.appointmentRepo.CreateFunc = func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
		t.Fatal("nothing must be persisted when validation fails")
		return nil
	}

	_, err := f.build().Schedule(context.Background(), nil, &BookingRequest{
		PatientID:   uuid.New(),
		Specialty:   entity.SpecialtyCardiology,
		ScheduledAt: time.Now().Add(48 * time.Hour),
	})

	rej, ok := AsRejection(err)
	assert.True(t, ok)
	assert.Equal(t, "the given patient id was not found", rej.Reason)
}

func TestScheduleRejectsUnknownDoctor(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()

	f := newSchedulerFixture()
	f.patientRepo.ExistsFunc = func(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
		return true, nil
	}

	_, err := f.build().Schedule(context.Background(), nil, &BookingRequest{
		PatientID:   patientID,
		DoctorID:    &doctorID,
		ScheduledAt: time.Now().Add(48 * time.Hour),
	})

	rej, ok := AsRejection(err)
	assert.True(t, ok)
	assert.Equal(t, "the given doctor id was not found", rej.Reason)
}

func TestScheduleStopsAtFirstRuleViolation(t *testing.T) {
	patientID := uuid.New()

	f := newSchedulerFixture()
	f.patientRepo.ExistsFunc = func(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
		return true, nil
	}
	f.bookingRules = []BookingRule{NewSpecialtyRequiredRule()}
	f.appointmentRepo.CreateFunc = func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
		t.Fatal("nothing must be persisted when a rule rejects")
		return nil
	}

	_, err := f.build().Schedule(context.Background(), nil, &BookingRequest{
		PatientID:   patientID,
		ScheduledAt: time.Now().Add(48 * time.Hour),
	})

	rej, ok := AsRejection(err)
	assert.True(t, ok)
	assert.Equal(t, "a specialty is required when no doctor is specified", rej.Reason)
}

func TestScheduleRejectsWhenNoDoctorAvailable(t *testing.T) {
	patientID := uuid.New()

	f := newSchedulerFixture()
	f.patientRepo.ExistsFunc = func(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
		return true, nil
	}
	f.patientRepo.FindActiveByIDFunc = func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
		return &entity.Patient{ID: id}, nil
	}

	_, err := f.build().Schedule(context.Background(), nil, &BookingRequest{
		PatientID:   patientID,
		Specialty:   entity.SpecialtyDermatology,
		ScheduledAt: time.Now().Add(48 * time.Hour),
	})

	rej, ok := AsRejection(err)
	assert.True(t, ok)
	assert.Equal(t, "no doctor is available for the requested specialty and time", rej.Reason)
}

func TestScheduleDoubleBookingSecondRejected(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()
	at := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)

	booked := map[time.Time]bool{}

	f := newSchedulerFixture()
	f.patientRepo.ExistsFunc = func(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
		return true, nil
	}
	f.patientRepo.FindActiveByIDFunc = func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
		return &entity.Patient{ID: id}, nil
	}
	f.doctorRepo.ExistsFunc = func(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
		return true, nil
	}
	f.doctorRepo.FindActiveByIDFunc = func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
		return &entity.Doctor{ID: id}, nil
	}
	f.appointmentRepo.ExistsActiveByDoctorAtFunc = func(ctx context.Context, db *gorm.DB, id uuid.UUID, when time.Time) (bool, error) {
		return booked[when], nil
	}
	f.appointmentRepo.CreateFunc = func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
		booked[appointment.ScheduledAt] = true
		return nil
	}
	f.bookingRules = []BookingRule{NewDoctorConflictRule(f.appointmentRepo)}

	scheduler := f.build()
	req := &BookingRequest{PatientID: patientID, DoctorID: &doctorID, ScheduledAt: at}

	_, err := scheduler.Schedule(context.Background(), nil, req)
	assert.NoError(t, err)

	_, err = scheduler.Schedule(context.Background(), nil, req)
	rej, ok := AsRejection(err)
	assert.True(t, ok)
	assert.Equal(t, "doctor already has an appointment at this time", rej.Reason)
}

func TestCancelRecordsReason(t *testing.T) {
	appointmentID := uuid.New()
	at := time.Now().Add(72 * time.Hour)

	f := newSchedulerFixture()
	f.appointmentRepo.ExistsByIDFunc = func(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
		return true, nil
	}
	f.appointmentRepo.FindByIDFunc = func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
		return &entity.Appointment{ID: id, ScheduledAt: at}, nil
	}

	var updated *entity.Appointment
	f.appointmentRepo.UpdateCancellationFunc = func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
		updated = appointment
		return nil
	}

	err := f.build().Cancel(context.Background(), nil, &CancellationRequest{
		AppointmentID: appointmentID,
		Reason:        entity.CancelledByDoctor,
	})

	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.NotNil(t, updated.CancellationReason)
	assert.Equal(t, entity.CancelledByDoctor, *updated.CancellationReason)
}

func TestCancelRejectsUnknownAppointment(t *testing.T) {
	f := newSchedulerFixture()
	f.appointmentRepo.UpdateCancellationFunc = func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
		t.Fatal("nothing must be persisted for an unknown appointment")
		return nil
	}

	err := f.build().Cancel(context.Background(), nil, &CancellationRequest{
		AppointmentID: uuid.New(),
		Reason:        entity.CancelledByPatient,
	})

	rej, ok := AsRejection(err)
	assert.True(t, ok)
	assert.Equal(t, "the given appointment id does not exist", rej.Reason)
}

func TestCancelRunsRulesBeforePersisting(t *testing.T) {
	appointmentID := uuid.New()
	at := time.Now().Add(2 * time.Hour)

	f := newSchedulerFixture()
	f.appointmentRepo.ExistsByIDFunc = func(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
		return true, nil
	}
	f.appointmentRepo.FindByIDFunc = func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
		return &entity.Appointment{ID: id, ScheduledAt: at}, nil
	}
	f.appointmentRepo.UpdateCancellationFunc = func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
		t.Fatal("nothing must be persisted when a rule rejects")
		return nil
	}
	f.cancelRules = []CancellationRule{NewMinimumNoticeRule(24*time.Hour, f.appointmentRepo)}

	err := f.build().Cancel(context.Background(), nil, &CancellationRequest{
		AppointmentID: appointmentID,
		Reason:        entity.CancelledByPatient,
	})

	rej, ok := AsRejection(err)
	assert.True(t, ok)
	assert.Equal(t, "appointment can only be cancelled with a minimum notice of 24 hours", rej.Reason)
}
