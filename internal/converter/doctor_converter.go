package converter

import (
	"health-appointment-service/internal/delivery/dto"
	"health-appointment-service/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to a DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:              doctor.ID,
		Name:            doctor.Name,
		Specialization:  doctor.Specialization,
		ExperienceYears: doctor.ExperienceYears,
		Location:        doctor.Location,
		HospitalName:    doctor.HospitalName,
		ConsultationFee: doctor.ConsultationFee,
		VisitingHours:   doctor.VisitingHoursMap(),
	}
}

// DoctorsToResponses converts a slice of Doctor entities to DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
