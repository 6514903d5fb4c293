package repository

import (
	"health-appointment-service/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	CreateBatch(db *gorm.DB, doctors []entity.Doctor) error
	Count(db *gorm.DB) (int64, error)
	FindByID(db *gorm.DB, id int) (*entity.Doctor, error)
	Search(db *gorm.DB, filter entity.DoctorFilter, limit int) ([]entity.Doctor, error)
}
