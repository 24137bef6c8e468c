package usecase

import (
	"context"
	"errors"

	"clinic-scheduling-api/internal/converter"
	"clinic-scheduling-api/internal/delivery/dto"
	"clinic-scheduling-api/internal/delivery/http/middleware"
	"clinic-scheduling-api/internal/domain/entity"
	"clinic-scheduling-api/internal/domain/repository"
	"clinic-scheduling-api/internal/scheduling"
	"clinic-scheduling-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrAppointmentPatientNotFound = errors.New("patient not found")

type AppointmentUsecase interface {
	Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentDetailResponse, error)
	Cancel(ctx context.Context, req *dto.CancelAppointmentRequest) error
	GetPatientAppointments(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	scheduler       *scheduling.Scheduler
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduler *scheduling.Scheduler,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		scheduler:       scheduler,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

// Book runs the whole booking pipeline inside one transaction: nothing is
// committed when any check, rule or the insert fails.
func (u *appointmentUsecase) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentDetailResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booked, err := u.scheduler.Schedule(ctx, tx, &scheduling.BookingRequest{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		Specialty:   entity.Specialty(req.Specialty),
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		if _, ok := scheduling.AsRejection(err); !ok {
			u.log.Warnf("Failed to book appointment: %+v", err)
		}
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogAction(ctx, tx, &userID, entity.AuditActionAppointmentBook, "appointment", booked.Appointment.ID.String(), converter.BookedToDetailResponse(booked)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BookedToDetailResponse(booked), nil
}

// Cancel validates and records a cancellation inside one transaction.
func (u *appointmentUsecase) Cancel(ctx context.Context, req *dto.CancelAppointmentRequest) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	cancellation := &scheduling.CancellationRequest{
		AppointmentID: req.AppointmentID,
		Reason:        entity.CancellationReason(req.Reason),
	}
	if err := u.scheduler.Cancel(ctx, tx, cancellation); err != nil {
		if _, ok := scheduling.AsRejection(err); !ok {
			u.log.Warnf("Failed to cancel appointment: %+v", err)
		}
		return err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogAction(ctx, tx, &userID, entity.AuditActionAppointmentCancel, "appointment", req.AppointmentID.String(), map[string]string{"reason": req.Reason}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// GetPatientAppointments lists a patient's appointments, newest first.
func (u *appointmentUsecase) GetPatientAppointments(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	exists, err := u.patientRepo.Exists(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to check patient %s: %+v", patientID, err)
		return nil, err
	}
	if !exists {
		return nil, ErrAppointmentPatientNotFound
	}

	appointments, err := u.appointmentRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}
