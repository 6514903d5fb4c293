package repository

import (
	"health-appointment-service/internal/domain/entity"
	domainRepo "health-appointment-service/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

// FindByPatientName matches the stored patient name byte for byte. A lookup
// under "alice" will not see a booking made under "Alice".
func (r *appointmentRepository) FindByPatientName(db *gorm.DB, patientName string) ([]entity.PatientAppointment, error) {
	var rows []entity.PatientAppointment
	err := db.Table("appointments").
		Select("doctors.name AS doctor_name, doctors.hospital_name AS hospital, appointments.appointment_date, appointments.appointment_time, doctors.consultation_fee").
		Joins("JOIN doctors ON doctors.id = appointments.doctor_id").
		Where("appointments.patient_name = ?", patientName).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
