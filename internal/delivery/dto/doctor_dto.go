package dto

// Response DTOs

// DoctorResponse carries every directory field; consumers must present the
// record in full, never a subset.
type DoctorResponse struct {
	ID              int               `json:"id"`
	Name            string            `json:"name"`
	Specialization  string            `json:"specialization"`
	ExperienceYears int               `json:"experience_years"`
	Location        string            `json:"location"`
	HospitalName    string            `json:"hospital_name"`
	ConsultationFee float64           `json:"consultation_fee"`
	VisitingHours   map[string]string `json:"visiting_hours"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
