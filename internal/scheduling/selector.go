package scheduling

import (
	"context"

	"clinic-scheduling-api/internal/domain/entity"
	"clinic-scheduling-api/internal/domain/repository"

	"gorm.io/gorm"
)

// DoctorSelector resolves which doctor fulfills a booking. A requested
// doctor id wins outright (its existence was already validated by the rule
// pipeline); otherwise any one active doctor of the requested specialty with
// a free slot at the requested time is picked, with no ordering promise.
type DoctorSelector struct {
	doctorRepo repository.DoctorRepository
}

func NewDoctorSelector(doctorRepo repository.DoctorRepository) *DoctorSelector {
	return &DoctorSelector{doctorRepo: doctorRepo}
}

func (s *DoctorSelector) Select(ctx context.Context, db *gorm.DB, req *BookingRequest) (*entity.Doctor, error) {
	if req.DoctorID != nil {
		return s.doctorRepo.FindActiveByID(ctx, db, *req.DoctorID)
	}
	if req.Specialty == "" {
		return nil, Reject("a specialty is required when no doctor is specified")
	}
	doctor, err := s.doctorRepo.FindOneEligible(ctx, db, req.Specialty, req.ScheduledAt)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrNoDoctorAvailable
	}
	return doctor, nil
}
