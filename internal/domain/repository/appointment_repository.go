package repository

import (
	"context"
	"time"

	"clinic-scheduling-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentRepository owns durable storage of appointments. All "Active"
// queries mean "cancellation_reason IS NULL": cancelled appointments never
// count as conflicts.
type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	ExistsByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error)
	ExistsActiveByDoctorAt(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, at time.Time) (bool, error)
	ExistsActiveByPatientBetween(ctx context.Context, db *gorm.DB, patientID uuid.UUID, from, to time.Time) (bool, error)
	UpdateCancellation(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
}
