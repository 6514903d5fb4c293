package handler

import (
	"net/http"

	"health-appointment-service/internal/usecase"
	"health-appointment-service/pkg/response"
)

type DoctorHandler struct {
	searchUsecase usecase.DoctorSearchUsecase
}

func NewDoctorHandler(searchUsecase usecase.DoctorSearchUsecase) *DoctorHandler {
	return &DoctorHandler{
		searchUsecase: searchUsecase,
	}
}

// SearchDoctors handles GET /doctors?specialization=&location=
func (h *DoctorHandler) SearchDoctors(w http.ResponseWriter, r *http.Request) {
	specialization := r.URL.Query().Get("specialization")
	location := r.URL.Query().Get("location")

	doctors, err := h.searchUsecase.Search(r.Context(), specialization, location)
	if err != nil {
		switch err {
		case usecase.ErrNoDoctorsFound:
			response.NotFound(w, "No doctors found matching your criteria. Please try a different specialization or location.")
		default:
			response.InternalServerError(w, "Failed to search doctors")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}
