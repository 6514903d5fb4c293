package usecase

import (
	"errors"
	"testing"

	"health-appointment-service/internal/domain/entity"
	"health-appointment-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB returns a throwaway in-memory handle; the mocks below ignore it.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	return db
}

// --- mockDoctorRepo ---

var _ repository.DoctorRepository = (*mockDoctorRepo)(nil)

type mockDoctorRepo struct {
	CreateBatchFunc func(doctors []entity.Doctor) error
	CountFunc       func() (int64, error)
	FindByIDFunc    func(id int) (*entity.Doctor, error)
	SearchFunc      func(filter entity.DoctorFilter, limit int) ([]entity.Doctor, error)
}

func (m *mockDoctorRepo) CreateBatch(_ *gorm.DB, doctors []entity.Doctor) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(doctors)
	}
	return nil
}

func (m *mockDoctorRepo) Count(_ *gorm.DB) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc()
	}
	return 0, nil
}

func (m *mockDoctorRepo) FindByID(_ *gorm.DB, id int) (*entity.Doctor, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *mockDoctorRepo) Search(_ *gorm.DB, filter entity.DoctorFilter, limit int) ([]entity.Doctor, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(filter, limit)
	}
	return nil, errors.New("SearchFunc not implemented in mock")
}

// --- mockAppointmentRepo ---

var _ repository.AppointmentRepository = (*mockAppointmentRepo)(nil)

type mockAppointmentRepo struct {
	CreateFunc            func(appointment *entity.Appointment) error
	FindByPatientNameFunc func(patientName string) ([]entity.PatientAppointment, error)

	CreateCallCount int
}

func (m *mockAppointmentRepo) Create(_ *gorm.DB, appointment *entity.Appointment) error {
	m.CreateCallCount++
	if m.CreateFunc != nil {
		return m.CreateFunc(appointment)
	}
	return nil
}

func (m *mockAppointmentRepo) FindByPatientName(_ *gorm.DB, patientName string) ([]entity.PatientAppointment, error) {
	if m.FindByPatientNameFunc != nil {
		return m.FindByPatientNameFunc(patientName)
	}
	return nil, errors.New("FindByPatientNameFunc not implemented in mock")
}

// --- mockUserRepo ---

var _ repository.UserRepository = (*mockUserRepo)(nil)

type mockUserRepo struct {
	CreateFunc         func(user *entity.User) error
	FindByIDFunc       func(id uuid.UUID) (*entity.User, error)
	FindByUsernameFunc func(username string) (*entity.User, error)
}

func (m *mockUserRepo) Create(_ *gorm.DB, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(user)
	}
	return nil
}

func (m *mockUserRepo) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByUsername(_ *gorm.DB, username string) (*entity.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(username)
	}
	return nil, nil
}
