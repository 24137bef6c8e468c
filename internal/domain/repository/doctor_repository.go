package repository

import (
	"context"
	"time"

	"clinic-scheduling-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error
	Exists(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error)
	FindActiveByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	FindAllActive(ctx context.Context, db *gorm.DB, offset, limit int) ([]entity.Doctor, int64, error)
	Update(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error
	Deactivate(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
	// FindOneEligible picks any one active doctor of the specialty with no
	// non-cancelled appointment at the exact time; nil when none qualifies.
	FindOneEligible(ctx context.Context, db *gorm.DB, specialty entity.Specialty, at time.Time) (*entity.Doctor, error)
}
