package entity

// PatientAppointment is the appointments×doctors join projection returned by
// the per-patient lookup.
type PatientAppointment struct {
	DoctorName      string  `gorm:"column:doctor_name" json:"doctor_name"`
	Hospital        string  `gorm:"column:hospital" json:"hospital"`
	AppointmentDate string  `gorm:"column:appointment_date" json:"date"`
	AppointmentTime string  `gorm:"column:appointment_time" json:"time"`
	ConsultationFee float64 `gorm:"column:consultation_fee" json:"consultation_fee"`
}
