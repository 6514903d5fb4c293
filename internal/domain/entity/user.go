package entity

import (
	"encoding/json"

	"github.com/google/uuid"
)

// User represents a chat user with credentials and a free-form health
// profile. Users live in their own storage file, separate from the doctor
// directory.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"type:text;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	FullName     string    `gorm:"type:text;not null" json:"full_name"`
	ProfileJSON  string    `gorm:"column:profile_json;type:text" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// Profile decodes the stored profile blob (age, gender, known conditions).
func (u *User) Profile() map[string]interface{} {
	profile := make(map[string]interface{})
	if u.ProfileJSON == "" {
		return profile
	}
	if err := json.Unmarshal([]byte(u.ProfileJSON), &profile); err != nil {
		return map[string]interface{}{}
	}
	return profile
}
