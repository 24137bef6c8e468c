package converter

import (
	"clinic-scheduling-api/internal/delivery/dto"
	"clinic-scheduling-api/internal/domain/entity"
	"clinic-scheduling-api/internal/scheduling"
)

// BookedToDetailResponse converts a booking result to the detail view
// returned to the caller.
func BookedToDetailResponse(booked *scheduling.Booked) *dto.AppointmentDetailResponse {
	if booked == nil || booked.Appointment == nil {
		return nil
	}

	return &dto.AppointmentDetailResponse{
		ID: booked.Appointment.ID,
		Doctor: dto.DoctorSummary{
			ID:        booked.Doctor.ID,
			Name:      booked.Doctor.Name,
			Specialty: string(booked.Doctor.Specialty),
		},
		Patient: dto.PatientSummary{
			ID:   booked.Patient.ID,
			Name: booked.Patient.Name,
		},
		ScheduledAt: booked.Appointment.ScheduledAt,
		CreatedAt:   booked.Appointment.CreatedAt,
	}
}

// AppointmentToResponse converts an Appointment entity to its list/detail DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:          appointment.ID,
		DoctorID:    appointment.DoctorID,
		DoctorName:  appointment.Doctor.Name,
		PatientID:   appointment.PatientID,
		ScheduledAt: appointment.ScheduledAt,
		CreatedAt:   appointment.CreatedAt,
		UpdatedAt:   appointment.UpdatedAt,
	}
	if appointment.CancellationReason != nil {
		response.CancellationReason = string(*appointment.CancellationReason)
	}
	return response
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
