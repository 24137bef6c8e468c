package entity

import (
	"time"

	"github.com/google/uuid"
)

// Specialty enumerates the medical specialties the clinic offers
type Specialty string

const (
	SpecialtyCardiology      Specialty = "cardiology"
	SpecialtyDermatology     Specialty = "dermatology"
	SpecialtyGeneralMedicine Specialty = "general-medicine"
	SpecialtyOrthopedics     Specialty = "orthopedics"
	SpecialtyPediatrics      Specialty = "pediatrics"
)

// Doctor is a registry entry. Deactivated doctors stay in the table (logical
// delete) but are never offered by the selector or listed.
type Doctor struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone         string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	LicenseNumber string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	Specialty     Specialty `gorm:"type:varchar(50);not null;index" json:"specialty"`
	Active        *bool     `gorm:"not null;default:true;index" json:"active"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
