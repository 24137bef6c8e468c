package repository

import (
	"context"

	"clinic-scheduling-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	Exists(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error)
	FindActiveByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	FindAllActive(ctx context.Context, db *gorm.DB, offset, limit int) ([]entity.Patient, int64, error)
	Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	Deactivate(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}
