package tool

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"health-appointment-service/internal/delivery/dto"
	"health-appointment-service/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ usecase.DoctorSearchUsecase = (*mockSearchUsecase)(nil)

type mockSearchUsecase struct {
	SearchFunc func(specialization, location string) (*dto.DoctorListResponse, error)
}

func (m *mockSearchUsecase) Search(_ context.Context, specialization, location string) (*dto.DoctorListResponse, error) {
	return m.SearchFunc(specialization, location)
}

var _ usecase.AppointmentUsecase = (*mockAppointmentUsecase)(nil)

type mockAppointmentUsecase struct {
	BookFunc           func(req *dto.CreateAppointmentRequest) (*dto.BookingConfirmation, error)
	ListForPatientFunc func(patientName string) (*dto.AppointmentListResponse, error)
}

func (m *mockAppointmentUsecase) Book(_ context.Context, req *dto.CreateAppointmentRequest) (*dto.BookingConfirmation, error) {
	return m.BookFunc(req)
}

func (m *mockAppointmentUsecase) ListForPatient(_ context.Context, patientName string) (*dto.AppointmentListResponse, error) {
	return m.ListForPatientFunc(patientName)
}

func TestFindDoctorsNoMatchReturnsGuidanceText(t *testing.T) {
	toolset := NewToolset(logrus.New(), &mockSearchUsecase{
		SearchFunc: func(specialization, location string) (*dto.DoctorListResponse, error) {
			return nil, usecase.ErrNoDoctorsFound
		},
	}, &mockAppointmentUsecase{})

	result := toolset.FindDoctors(context.Background(), "Cardiologist", "Nowhere")
	assert.Equal(t, "No doctors found matching your criteria. Please try a different specialization or location.", result)
}

func TestFindDoctorsStorageFailureReturnsErrorText(t *testing.T) {
	toolset := NewToolset(logrus.New(), &mockSearchUsecase{
		SearchFunc: func(specialization, location string) (*dto.DoctorListResponse, error) {
			return nil, errors.New("disk I/O error")
		},
	}, &mockAppointmentUsecase{})

	result := toolset.FindDoctors(context.Background(), "", "")
	assert.Equal(t, "Error: Could not connect to the database.", result)
}

func TestFindDoctorsReturnsJSONArray(t *testing.T) {
	toolset := NewToolset(logrus.New(), &mockSearchUsecase{
		SearchFunc: func(specialization, location string) (*dto.DoctorListResponse, error) {
			return &dto.DoctorListResponse{
				Doctors: []dto.DoctorResponse{{
					ID:              3,
					Name:            "Dr. Asha Rao",
					Specialization:  "Dermatologist",
					ExperienceYears: 12,
					Location:        "Pune",
					HospitalName:    "Apollo Clinic, Pune",
					ConsultationFee: 1400,
					VisitingHours:   map[string]string{"Mon,Wed,Fri": "10:00-13:00"},
				}},
				Total: 1,
			}, nil
		},
	}, &mockAppointmentUsecase{})

	result := toolset.FindDoctors(context.Background(), "Dermatologist", "Pune")

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(result), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, float64(3), decoded[0]["id"])
	assert.Equal(t, "Dr. Asha Rao", decoded[0]["name"])
	assert.Equal(t, "Apollo Clinic, Pune", decoded[0]["hospital_name"])
	assert.Equal(t, float64(1400), decoded[0]["consultation_fee"])
	assert.Equal(t, map[string]interface{}{"Mon,Wed,Fri": "10:00-13:00"}, decoded[0]["visiting_hours"])
}

func TestBookAppointmentUnknownDoctorText(t *testing.T) {
	toolset := NewToolset(logrus.New(), &mockSearchUsecase{}, &mockAppointmentUsecase{
		BookFunc: func(req *dto.CreateAppointmentRequest) (*dto.BookingConfirmation, error) {
			return nil, usecase.ErrDoctorNotFound
		},
	})

	result := toolset.BookAppointment(context.Background(), 99, "Alice", "2026-09-01", "10 AM")
	assert.Equal(t, "Error: No doctor found with ID 99.", result)
}

func TestBookAppointmentReturnsConfirmationJSON(t *testing.T) {
	toolset := NewToolset(logrus.New(), &mockSearchUsecase{}, &mockAppointmentUsecase{
		BookFunc: func(req *dto.CreateAppointmentRequest) (*dto.BookingConfirmation, error) {
			return &dto.BookingConfirmation{
				Status:        "Success",
				Message:       "Appointment booked successfully!",
				AppointmentID: 42,
				DoctorName:    "Dr. Meera Iyer",
				PatientName:   req.PatientName,
				Date:          req.Date,
				Time:          req.Time,
			}, nil
		},
	})

	result := toolset.BookAppointment(context.Background(), 3, "Alice", "2026-09-01", "15:00")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(result), &decoded))
	assert.Equal(t, "Success", decoded["status"])
	assert.Equal(t, float64(42), decoded["appointment_id"])
	assert.Equal(t, "Dr. Meera Iyer", decoded["doctor_name"])
	assert.Equal(t, "2026-09-01", decoded["date"])
	assert.Equal(t, "15:00", decoded["time"])
}

func TestViewMyAppointmentsEmptyIsValidJSON(t *testing.T) {
	toolset := NewToolset(logrus.New(), &mockSearchUsecase{}, &mockAppointmentUsecase{
		ListForPatientFunc: func(patientName string) (*dto.AppointmentListResponse, error) {
			return &dto.AppointmentListResponse{
				Appointments: []dto.PatientAppointmentResponse{},
				Total:        0,
			}, nil
		},
	})

	result := toolset.ViewMyAppointments(context.Background(), "alice")

	var decoded []dto.PatientAppointmentResponse
	require.NoError(t, json.Unmarshal([]byte(result), &decoded))
	assert.Empty(t, decoded)
}
