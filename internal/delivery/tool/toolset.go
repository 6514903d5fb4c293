// Package tool exposes the fixed function-call contract the conversational
// orchestration layer binds to. Every operation returns text: JSON on
// success, human-readable guidance or error messages otherwise. Failures
// never cross this boundary as Go errors, because the consuming layer relays
// plain text to an end user.
package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"health-appointment-service/internal/delivery/dto"
	"health-appointment-service/internal/usecase"

	"github.com/sirupsen/logrus"
)

const storageErrorText = "Error: Could not connect to the database."

// doctorResult is the find_doctors wire shape. Location is folded into
// hospital_name ("Fortis Health, Mumbai"); the remaining fields appear
// verbatim.
type doctorResult struct {
	ID              int               `json:"id"`
	Name            string            `json:"name"`
	Specialization  string            `json:"specialization"`
	ExperienceYears int               `json:"experience_years"`
	HospitalName    string            `json:"hospital_name"`
	ConsultationFee float64           `json:"consultation_fee"`
	VisitingHours   map[string]string `json:"visiting_hours"`
}

type Toolset struct {
	log                *logrus.Logger
	searchUsecase      usecase.DoctorSearchUsecase
	appointmentUsecase usecase.AppointmentUsecase
}

func NewToolset(
	log *logrus.Logger,
	searchUsecase usecase.DoctorSearchUsecase,
	appointmentUsecase usecase.AppointmentUsecase,
) *Toolset {
	return &Toolset{
		log:                log,
		searchUsecase:      searchUsecase,
		appointmentUsecase: appointmentUsecase,
	}
}

// FindDoctors searches the directory and returns the top matches as a JSON
// array, or guidance text when nothing matches.
func (t *Toolset) FindDoctors(ctx context.Context, specialization, location string) string {
	result, err := t.searchUsecase.Search(ctx, specialization, location)
	if err != nil {
		if err == usecase.ErrNoDoctorsFound {
			return "No doctors found matching your criteria. Please try a different specialization or location."
		}
		t.log.Warnf("find_doctors failed: %+v", err)
		return storageErrorText
	}

	results := make([]doctorResult, len(result.Doctors))
	for i, d := range result.Doctors {
		results[i] = doctorResult{
			ID:              d.ID,
			Name:            d.Name,
			Specialization:  d.Specialization,
			ExperienceYears: d.ExperienceYears,
			HospitalName:    d.HospitalName,
			ConsultationFee: d.ConsultationFee,
			VisitingHours:   d.VisitingHours,
		}
	}

	encoded, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		t.log.Errorf("find_doctors encode failed: %+v", err)
		return storageErrorText
	}
	return string(encoded)
}

// BookAppointment books with the given doctor and returns the confirmation
// as JSON, or an error message. Date and time are passed through as given;
// the caller is responsible for coercing relative dates to YYYY-MM-DD first.
func (t *Toolset) BookAppointment(ctx context.Context, doctorID int, patientName, date, timeStr string) string {
	confirmation, err := t.appointmentUsecase.Book(ctx, &dto.CreateAppointmentRequest{
		DoctorID:    doctorID,
		PatientName: patientName,
		Date:        date,
		Time:        timeStr,
	})
	if err != nil {
		if err == usecase.ErrDoctorNotFound {
			return fmt.Sprintf("Error: No doctor found with ID %d.", doctorID)
		}
		t.log.Warnf("book_appointment failed: %+v", err)
		return fmt.Sprintf("Error: Could not book appointment. Reason: %v", err)
	}

	encoded, err := json.Marshal(confirmation)
	if err != nil {
		t.log.Errorf("book_appointment encode failed: %+v", err)
		return storageErrorText
	}
	return string(encoded)
}

// ViewMyAppointments lists every booking stored under exactly this patient
// name as a JSON array. An empty array is a valid result here.
func (t *Toolset) ViewMyAppointments(ctx context.Context, patientName string) string {
	result, err := t.appointmentUsecase.ListForPatient(ctx, patientName)
	if err != nil {
		t.log.Warnf("view_my_appointments failed: %+v", err)
		return storageErrorText
	}

	encoded, err := json.MarshalIndent(result.Appointments, "", "  ")
	if err != nil {
		t.log.Errorf("view_my_appointments encode failed: %+v", err)
		return storageErrorText
	}
	return string(encoded)
}
