package entity

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

// Appointments are append-only: Booked is the only status ever written.
const (
	AppointmentStatusBooked AppointmentStatus = "Booked"
)

// Appointment represents one ledger entry referencing a directory doctor.
// Date and time are stored exactly as the caller supplied them; the
// conversational layer is responsible for coercing dates to YYYY-MM-DD
// before calling in.
type Appointment struct {
	ID              int               `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID        int               `gorm:"not null;index" json:"doctor_id"`
	PatientName     string            `gorm:"type:text;not null;index" json:"patient_name"`
	AppointmentDate string            `gorm:"type:text;not null" json:"appointment_date"`
	AppointmentTime string            `gorm:"type:text;not null" json:"appointment_time"`
	Status          AppointmentStatus `gorm:"type:text;not null;default:'Booked'" json:"status"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
