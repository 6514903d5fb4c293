package converter

import (
	"health-appointment-service/internal/delivery/dto"
	"health-appointment-service/internal/domain/entity"
)

// PatientAppointmentsToResponses converts lookup join rows to response DTOs
func PatientAppointmentsToResponses(rows []entity.PatientAppointment) []dto.PatientAppointmentResponse {
	responses := make([]dto.PatientAppointmentResponse, len(rows))
	for i, row := range rows {
		responses[i] = dto.PatientAppointmentResponse{
			DoctorName:      row.DoctorName,
			Hospital:        row.Hospital,
			Date:            row.AppointmentDate,
			Time:            row.AppointmentTime,
			ConsultationFee: row.ConsultationFee,
		}
	}
	return responses
}
