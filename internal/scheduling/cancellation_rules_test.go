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

func TestAppointmentExistsRule(t *testing.T) {
	appointmentID := uuid.New()

	t.Run("rejects an unknown appointment id", func(t *testing.T) {
		rule := NewAppointmentExistsRule(&fakeAppointmentRepo{})

		err := rule.Validate(context.Background(), nil, &CancellationRequest{AppointmentID: appointmentID})
		rej, ok := AsRejection(err)
		assert.True(t, ok)
		assert.Equal(t, "the given appointment id does not exist", rej.Reason)
	})

	t.Run("passes for an existing appointment", func(t *testing.T) {
		rule := NewAppointmentExistsRule(&fakeAppointmentRepo{
			ExistsByIDFunc: func(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
				return true, nil
			},
		})

		err := rule.Validate(context.Background(), nil, &CancellationRequest{AppointmentID: appointmentID})
		assert.NoError(t, err)
	})
}

func TestNotCancelledRule(t *testing.T) {
	appointmentID := uuid.New()

	t.Run("rejects an already cancelled appointment", func(t *testing.T) {
		reason := entity.CancelledByPatient
		rule := NewNotCancelledRule(&fakeAppointmentRepo{
			FindByIDFunc: func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
				return &entity.Appointment{ID: id, CancellationReason: &reason}, nil
			},
		})

		err := rule.Validate(context.Background(), nil, &CancellationRequest{AppointmentID: appointmentID})
		rej, ok := AsRejection(err)
		assert.True(t, ok)
		assert.Equal(t, "appointment has already been cancelled", rej.Reason)
	})

	t.Run("passes for an active appointment", func(t *testing.T) {
		rule := NewNotCancelledRule(&fakeAppointmentRepo{
			FindByIDFunc: func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
				return &entity.Appointment{ID: id}, nil
			},
		})

		err := rule.Validate(context.Background(), nil, &CancellationRequest{AppointmentID: appointmentID})
		assert.NoError(t, err)
	})
}

func TestMinimumNoticeRule(t *testing.T) {
	appointmentID := uuid.New()
	now := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)

	newRule := func(scheduledAt time.Time) *MinimumNoticeRule {
		rule := NewMinimumNoticeRule(24*time.Hour, &fakeAppointmentRepo{
			FindByIDFunc: func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
				return &entity.Appointment{ID: id, ScheduledAt: scheduledAt}, nil
			},
		})
		rule.now = func() time.Time { return now }
		return rule
	}

	t.Run("rejects under 24 hours of notice", func(t *testing.T) {
		rule := newRule(now.Add(23 * time.Hour))

		err := rule.Validate(context.Background(), nil, &CancellationRequest{AppointmentID: appointmentID})
		rej, ok := AsRejection(err)
		assert.True(t, ok)
		assert.Equal(t, "appointment can only be cancelled with a minimum notice of 24 hours", rej.Reason)
	})

	t.Run("accepts exactly 24 hours of notice", func(t *testing.T) {
		rule := newRule(now.Add(24 * time.Hour))

		err := rule.Validate(context.Background(), nil, &CancellationRequest{AppointmentID: appointmentID})
		assert.NoError(t, err)
	})

	t.Run("accepts more than 24 hours of notice", func(t *testing.T) {
		rule := newRule(now.Add(48 * time.Hour))

		err := rule.Validate(context.Background(), nil, &CancellationRequest{AppointmentID: appointmentID})
		assert.NoError(t, err)
	})
}

func TestRegistryFailFast(t *testing.T) {
	appointmentID := uuid.New()
	secondRan := false

	first := NewAppointmentExistsRule(&fakeAppointmentRepo{})
	second := NewNotCancelledRule(&fakeAppointmentRepo{
		FindByIDFunc: func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
			secondRan = true
			return nil, nil
		},
	})

	registry := NewRegistry(nil, []CancellationRule{first, second})

	err := registry.ValidateCancellation(context.Background(), nil, &CancellationRequest{AppointmentID: appointmentID})
	rej, ok := AsRejection(err)
	assert.True(t, ok)
	assert.Equal(t, "the given appointment id does not exist", rej.Reason)
	assert.False(t, secondRan, "later rules must not run after a rejection")
}
