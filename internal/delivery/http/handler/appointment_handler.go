package handler

import (
	"encoding/json"
	"net/http"

	"health-appointment-service/internal/delivery/dto"
	"health-appointment-service/internal/usecase"
	"health-appointment-service/pkg/response"
	"health-appointment-service/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	authUsecase        usecase.AuthUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(
	appointmentUsecase usecase.AppointmentUsecase,
	authUsecase usecase.AuthUsecase,
	validator *validator.CustomValidator,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		authUsecase:        authUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	confirmation, err := h.appointmentUsecase.Book(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", confirmation)
}

// ListAppointments handles GET /appointments?patient_name=
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	patientName := r.URL.Query().Get("patient_name")
	if patientName == "" {
		response.Error(w, http.StatusBadRequest, "patient_name is required", nil)
		return
	}

	appointments, err := h.appointmentUsecase.ListForPatient(r.Context(), patientName)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// ListMyAppointments looks up bookings under the authenticated user's
// stored full name. Bookings made under a differently-spelled name will not
// show up; lookup is exact-string by contract.
func (h *AppointmentHandler) ListMyAppointments(w http.ResponseWriter, r *http.Request) {
	user, err := h.authUsecase.Me(r.Context())
	if err != nil {
		response.Unauthorized(w, "User not found")
		return
	}

	appointments, err := h.appointmentUsecase.ListForPatient(r.Context(), user.FullName)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}
