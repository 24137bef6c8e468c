package entity

import (
	"time"

	"github.com/google/uuid"
)

// CancellationReason enumerates who asked for an appointment to be cancelled
type CancellationReason string

const (
	CancelledByPatient        CancellationReason = "patient"
	CancelledByDoctor         CancellationReason = "doctor"
	CancelledAdministratively CancellationReason = "administrative"
)

// IsValid reports whether the reason is one of the known codes
func (r CancellationReason) IsValid() bool {
	switch r {
	case CancelledByPatient, CancelledByDoctor, CancelledAdministratively:
		return true
	}
	return false
}

// Appointment links a patient to a doctor at a scheduled time. The
// cancellation reason stays nil for the whole life of an active appointment;
// once set the appointment is cancelled and no longer counts as a conflict
// for its doctor/time slot.
type Appointment struct {
	ID                 uuid.UUID           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID           uuid.UUID           `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PatientID          uuid.UUID           `gorm:"type:uuid;not null;index" json:"patient_id"`
	ScheduledAt        time.Time           `gorm:"not null;index" json:"scheduled_at"`
	CancellationReason *CancellationReason `gorm:"type:varchar(30)" json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time           `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks whether a cancellation reason has been recorded
func (a *Appointment) IsCancelled() bool {
	return a.CancellationReason != nil
}

// Cancel records the reason; the reason field is the only mutable part of
// an appointment after creation
func (a *Appointment) Cancel(reason CancellationReason) {
	a.CancellationReason = &reason
}
