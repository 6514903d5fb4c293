package usecase

import (
	"context"
	"errors"

	"health-appointment-service/internal/converter"
	"health-appointment-service/internal/delivery/dto"
	"health-appointment-service/internal/domain/entity"
	"health-appointment-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type AppointmentUsecase interface {
	Book(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.BookingConfirmation, error)
	ListForPatient(ctx context.Context, patientName string) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
	}
}

// Book writes one ledger entry after confirming the doctor exists. Date and
// time pass through untouched, and nothing prevents two bookings for the
// same doctor and slot.
func (u *appointmentUsecase) Book(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.BookingConfirmation, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointment := &entity.Appointment{
		DoctorID:        req.DoctorID,
		PatientName:     req.PatientName,
		AppointmentDate: req.Date,
		AppointmentTime: req.Time,
		Status:          entity.AppointmentStatusBooked,
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Errorf("Failed to insert appointment for doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}

	u.log.Infof("Appointment booked: id=%d, doctor=%d, patient=%s", appointment.ID, req.DoctorID, req.PatientName)

	return &dto.BookingConfirmation{
		Status:        "Success",
		Message:       "Appointment booked successfully!",
		AppointmentID: appointment.ID,
		DoctorName:    doctor.Name,
		PatientName:   req.PatientName,
		Date:          req.Date,
		Time:          req.Time,
	}, nil
}

// ListForPatient returns every booking stored under exactly this patient
// name, joined with the doctor's directory entry.
func (u *appointmentUsecase) ListForPatient(ctx context.Context, patientName string) (*dto.AppointmentListResponse, error) {
	rows, err := u.appointmentRepo.FindByPatientName(u.db.WithContext(ctx), patientName)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %q: %+v", patientName, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.PatientAppointmentsToResponses(rows),
		Total:        len(rows),
	}, nil
}
