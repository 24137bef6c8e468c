package repository

import (
	"context"
	"errors"
	"time"

	"clinic-scheduling-api/internal/domain/entity"
	domainRepo "clinic-scheduling-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	return db.WithContext(ctx).Create(doctor).Error
}

func (r *doctorRepository) Exists(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Doctor{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *doctorRepository) FindActiveByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.WithContext(ctx).Where("id = ? AND active = true", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAllActive(ctx context.Context, db *gorm.DB, offset, limit int) ([]entity.Doctor, int64, error) {
	var doctors []entity.Doctor
	var total int64

	query := db.WithContext(ctx).Model(&entity.Doctor{}).Where("active = true")
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&doctors).Error
	if err != nil {
		return nil, 0, err
	}
	return doctors, total, nil
}

func (r *doctorRepository) Update(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	return db.WithContext(ctx).Save(doctor).Error
}

func (r *doctorRepository) Deactivate(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Doctor{}).
		Where("id = ? AND active = true", id).
		Update("active", false)
	return result.RowsAffected, result.Error
}

// FindOneEligible reproduces the clinic's "any free doctor" pick: active,
// right specialty, not already booked (non-cancelled) at the exact time.
// The tie-break among candidates is deliberately random.
func (r *doctorRepository) FindOneEligible(ctx context.Context, db *gorm.DB, specialty entity.Specialty, at time.Time) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.WithContext(ctx).
		Where("active = true AND specialty = ?", specialty).
		Where("id NOT IN (?)", db.Session(&gorm.Session{NewDB: true}).
			Model(&entity.Appointment{}).
			Select("doctor_id").
			Where("scheduled_at = ? AND cancellation_reason IS NULL", at)).
		Order("RANDOM()").
		First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}
