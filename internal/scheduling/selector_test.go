package scheduling

import (
	"context"
	"testing"
	"time"

	"clinic-scheduling-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestDoctorSelector(t *testing.T) {
	at := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)

	t.Run("requested doctor wins outright", func(t *testing.T) {
		doctorID := uuid.New()
		selector := NewDoctorSelector(&fakeDoctorRepo{
			FindActiveByIDFunc: func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
				return &entity.Doctor{ID: id, Specialty: entity.SpecialtyCardiology}, nil
			},
			FindOneEligibleFunc: func(ctx context.Context, db *gorm.DB, specialty entity.Specialty, at time.Time) (*entity.Doctor, error) {
				t.Fatal("should not search by specialty when a doctor was requested")
				return nil, nil
			},
		})

		doctor, err := selector.Select(context.Background(), nil, &BookingRequest{DoctorID: &doctorID, ScheduledAt: at})
		assert.NoError(t, err)
		assert.Equal(t, doctorID, doctor.ID)
	})

	t.Run("picks an eligible doctor by specialty", func(t *testing.T) {
		eligible := &entity.Doctor{ID: uuid.New(), Specialty: entity.SpecialtyPediatrics}
		selector := NewDoctorSelector(&fakeDoctorRepo{
			FindOneEligibleFunc: func(ctx context.Context, db *gorm.DB, specialty entity.Specialty, when time.Time) (*entity.Doctor, error) {
				assert.Equal(t, entity.SpecialtyPediatrics, specialty)
				assert.Equal(t, at, when)
				return eligible, nil
			},
		})

		doctor, err := selector.Select(context.Background(), nil, &BookingRequest{Specialty: entity.SpecialtyPediatrics, ScheduledAt: at})
		assert.NoError(t, err)
		assert.Equal(t, eligible.ID, doctor.ID)
	})

	t.Run("reports when nobody is available", func(t *testing.T) {
		selector := NewDoctorSelector(&fakeDoctorRepo{})

		doctor, err := selector.Select(context.Background(), nil, &BookingRequest{Specialty: entity.SpecialtyCardiology, ScheduledAt: at})
		assert.Nil(t, doctor)
		assert.ErrorIs(t, err, ErrNoDoctorAvailable)
	})

	t.Run("rejects when neither doctor nor specialty is given", func(t *testing.T) {
		selector := NewDoctorSelector(&fakeDoctorRepo{})

		_, err := selector.Select(context.Background(), nil, &BookingRequest{ScheduledAt: at})
		_, ok := AsRejection(err)
		assert.True(t, ok)
	})
}
