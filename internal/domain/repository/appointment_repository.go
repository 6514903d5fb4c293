package repository

import (
	"health-appointment-service/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByPatientName(db *gorm.DB, patientName string) ([]entity.PatientAppointment, error)
}
