package entity

import "encoding/json"

// Doctor represents a single directory entry. Rows are created in bulk when
// the directory is first seeded and are never updated or deleted afterwards.
type Doctor struct {
	ID              int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string  `gorm:"type:text;not null" json:"name"`
	Specialization  string  `gorm:"type:text;not null;index" json:"specialization"`
	ExperienceYears int     `gorm:"not null" json:"experience_years"`
	Location        string  `gorm:"type:text;index" json:"location"`
	HospitalName    string  `gorm:"type:text" json:"hospital_name"`
	ConsultationFee float64 `gorm:"not null" json:"consultation_fee"`
	VisitingHours   string  `gorm:"type:text" json:"visiting_hours"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// VisitingHoursMap decodes the stored visiting hours JSON, e.g.
// {"Mon,Wed,Fri": "09:00-12:00"}.
func (d *Doctor) VisitingHoursMap() map[string]string {
	hours := make(map[string]string)
	if d.VisitingHours == "" {
		return hours
	}
	if err := json.Unmarshal([]byte(d.VisitingHours), &hours); err != nil {
		return map[string]string{}
	}
	return hours
}
