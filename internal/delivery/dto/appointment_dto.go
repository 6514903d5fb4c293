package dto

// Request DTOs

// CreateAppointmentRequest validates presence only. Date is expected in
// YYYY-MM-DD form by caller contract and time is free text; neither is
// parsed or reformatted here.
type CreateAppointmentRequest struct {
	DoctorID    int    `json:"doctor_id" validate:"required,min=1"`
	PatientName string `json:"patient_name" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
}

// Response DTOs

type BookingConfirmation struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	AppointmentID int    `json:"appointment_id"`
	DoctorName    string `json:"doctor_name"`
	PatientName   string `json:"patient_name"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

type PatientAppointmentResponse struct {
	DoctorName      string  `json:"doctor_name"`
	Hospital        string  `json:"hospital"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	ConsultationFee float64 `json:"consultation_fee"`
}

type AppointmentListResponse struct {
	Appointments []PatientAppointmentResponse `json:"appointments"`
	Total        int                          `json:"total"`
}
