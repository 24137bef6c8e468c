package scheduling

import (
	"context"
	"time"

	"clinic-scheduling-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Function-field fakes for the repository contracts. Unset fields return
// zero values so each test only wires what it cares about.

type fakeDoctorRepo struct {
	CreateFunc          func(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error
	ExistsFunc          func(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error)
	FindActiveByIDFunc  func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	FindAllActiveFunc   func(ctx context.Context, db *gorm.DB, offset, limit int) ([]entity.Doctor, int64, error)
	UpdateFunc          func(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error
	DeactivateFunc      func(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
	FindOneEligibleFunc func(ctx context.Context, db *gorm.DB, specialty entity.Specialty, at time.Time) (*entity.Doctor, error)
}

func (f *fakeDoctorRepo) Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, doctor)
	}
	return nil
}

func (f *fakeDoctorRepo) Exists(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
	if f.ExistsFunc != nil {
		return f.ExistsFunc(ctx, db, id)
	}
	return false, nil
}

func (f *fakeDoctorRepo) FindActiveByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	if f.FindActiveByIDFunc != nil {
		return f.FindActiveByIDFunc(ctx, db, id)
	}
	return nil, nil
}

func (f *fakeDoctorRepo) FindAllActive(ctx context.Context, db *gorm.DB, offset, limit int) ([]entity.Doctor, int64, error) {
	if f.FindAllActiveFunc != nil {
		return f.FindAllActiveFunc(ctx, db, offset, limit)
	}
	return nil, 0, nil
}

func (f *fakeDoctorRepo) Update(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, db, doctor)
	}
	return nil
}

func (f *fakeDoctorRepo) Deactivate(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	if f.DeactivateFunc != nil {
		return f.DeactivateFunc(ctx, db, id)
	}
	return 0, nil
}

func (f *fakeDoctorRepo) FindOneEligible(ctx context.Context, db *gorm.DB, specialty entity.Specialty, at time.Time) (*entity.Doctor, error) {
	if f.FindOneEligibleFunc != nil {
		return f.FindOneEligibleFunc(ctx, db, specialty, at)
	}
	return nil, nil
}

type fakePatientRepo struct {
	CreateFunc         func(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	ExistsFunc         func(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error)
	FindActiveByIDFunc func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	FindAllActiveFunc  func(ctx context.Context, db *gorm.DB, offset, limit int) ([]entity.Patient, int64, error)
	UpdateFunc         func(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	DeactivateFunc     func(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}

func (f *fakePatientRepo) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, patient)
	}
	return nil
}

func (f *fakePatientRepo) Exists(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
	if f.ExistsFunc != nil {
		return f.ExistsFunc(ctx, db, id)
	}
	return false, nil
}

func (f *fakePatientRepo) FindActiveByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	if f.FindActiveByIDFunc != nil {
		return f.FindActiveByIDFunc(ctx, db, id)
	}
	return nil, nil
}

func (f *fakePatientRepo) FindAllActive(ctx context.Context, db *gorm.DB, offset, limit int) ([]entity.Patient, int64, error) {
	if f.FindAllActiveFunc != nil {
		return f.FindAllActiveFunc(ctx, db, offset, limit)
	}
	return nil, 0, nil
}

func (f *fakePatientRepo) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, db, patient)
	}
	return nil
}

func (f *fakePatientRepo) Deactivate(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	if f.DeactivateFunc != nil {
		return f.DeactivateFunc(ctx, db, id)
	}
	return 0, nil
}

type fakeAppointmentRepo struct {
	CreateFunc                       func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByIDFunc                     func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	ExistsByIDFunc                   func(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error)
	ExistsActiveByDoctorAtFunc       func(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, at time.Time) (bool, error)
	ExistsActiveByPatientBetweenFunc func(ctx context.Context, db *gorm.DB, patientID uuid.UUID, from, to time.Time) (bool, error)
	UpdateCancellationFunc           func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByPatientIDFunc              func(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, appointment)
	}
	return nil
}

func (f *fakeAppointmentRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	if f.FindByIDFunc != nil {
		return f.FindByIDFunc(ctx, db, id)
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) ExistsByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
	if f.ExistsByIDFunc != nil {
		return f.ExistsByIDFunc(ctx, db, id)
	}
	return false, nil
}

func (f *fakeAppointmentRepo) ExistsActiveByDoctorAt(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, at time.Time) (bool, error) {
	if f.ExistsActiveByDoctorAtFunc != nil {
		return f.ExistsActiveByDoctorAtFunc(ctx, db, doctorID, at)
	}
	return false, nil
}

func (f *fakeAppointmentRepo) ExistsActiveByPatientBetween(ctx context.Context, db *gorm.DB, patientID uuid.UUID, from, to time.Time) (bool, error) {
	if f.ExistsActiveByPatientBetweenFunc != nil {
		return f.ExistsActiveByPatientBetweenFunc(ctx, db, patientID, from, to)
	}
	return false, nil
}

func (f *fakeAppointmentRepo) UpdateCancellation(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	if f.UpdateCancellationFunc != nil {
		return f.UpdateCancellationFunc(ctx, db, appointment)
	}
	return nil
}

func (f *fakeAppointmentRepo) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	if f.FindByPatientIDFunc != nil {
		return f.FindByPatientIDFunc(ctx, db, patientID)
	}
	return nil, nil
}
