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

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.WithContext(ctx).Preload("Doctor").Preload("Patient").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) ExistsByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Appointment{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *appointmentRepository) ExistsActiveByDoctorAt(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, at time.Time) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("doctor_id = ? AND scheduled_at = ? AND cancellation_reason IS NULL", doctorID, at).
		Count(&count).Error
	return count > 0, err
}

func (r *appointmentRepository) ExistsActiveByPatientBetween(ctx context.Context, db *gorm.DB, patientID uuid.UUID, from, to time.Time) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("patient_id = ? AND scheduled_at BETWEEN ? AND ? AND cancellation_reason IS NULL", patientID, from, to).
		Count(&count).Error
	return count > 0, err
}

// UpdateCancellation persists only the cancellation reason; everything else
// on an appointment is immutable after creation.
func (r *appointmentRepository) UpdateCancellation(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ?", appointment.ID).
		Update("cancellation_reason", appointment.CancellationReason).Error
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.WithContext(ctx).Preload("Doctor").
		Where("patient_id = ?", patientID).
		Order("scheduled_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
