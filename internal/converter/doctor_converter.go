package converter

import (
	"clinic-scheduling-api/internal/delivery/dto"
	"clinic-scheduling-api/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:            doctor.ID,
		Name:          doctor.Name,
		Email:         doctor.Email,
		Phone:         doctor.Phone,
		LicenseNumber: doctor.LicenseNumber,
		Specialty:     string(doctor.Specialty),
		Active:        doctor.Active,
	}
}

// DoctorsToResponses converts a slice of Doctor entities
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = *DoctorToResponse(&doctor)
	}
	return responses
}
