package usecase

import (
	"context"
	"testing"
	"time"

	"health-appointment-service/internal/domain/entity"
	"health-appointment-service/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newSearchUsecase(t *testing.T, repo *mockDoctorRepo) DoctorSearchUsecase {
	t.Helper()
	log := logrus.New()
	cache := service.NewSearchCache(nil, time.Minute, log)
	return NewDoctorSearchUsecase(testDB(t), log, repo, cache)
}

func TestSearchPhysicianAliasCanonicalizes(t *testing.T) {
	var captured entity.DoctorFilter
	repo := &mockDoctorRepo{
		SearchFunc: func(filter entity.DoctorFilter, limit int) ([]entity.Doctor, error) {
			captured = filter
			return []entity.Doctor{{ID: 1, Name: "Dr. A", Specialization: "General Physician"}}, nil
		},
	}

	u := newSearchUsecase(t, repo)

	cases := []string{"physician", "PHYSICIAN", "senior Physician consult"}
	for _, input := range cases {
		_, err := u.Search(context.Background(), input, "")
		assert.NoError(t, err)
		assert.Equal(t, "General Physician", captured.Specialization, "input %q", input)
	}
}

func TestSearchPassesThroughNonAliasTerm(t *testing.T) {
	var captured entity.DoctorFilter
	repo := &mockDoctorRepo{
		SearchFunc: func(filter entity.DoctorFilter, limit int) ([]entity.Doctor, error) {
			captured = filter
			return []entity.Doctor{{ID: 1}}, nil
		},
	}

	u := newSearchUsecase(t, repo)

	_, err := u.Search(context.Background(), " Cardiologist ", "Mumbai")
	assert.NoError(t, err)
	assert.Equal(t, "Cardiologist", captured.Specialization)
	assert.Equal(t, "Mumbai", captured.Location)
}

func TestSearchAppliesResultLimit(t *testing.T) {
	var capturedLimit int
	repo := &mockDoctorRepo{
		SearchFunc: func(filter entity.DoctorFilter, limit int) ([]entity.Doctor, error) {
			capturedLimit = limit
			return []entity.Doctor{{ID: 1}}, nil
		},
	}

	u := newSearchUsecase(t, repo)

	_, err := u.Search(context.Background(), "", "")
	assert.NoError(t, err)
	assert.Equal(t, 5, capturedLimit)
}

func TestSearchZeroRowsIsDistinctSignal(t *testing.T) {
	repo := &mockDoctorRepo{
		SearchFunc: func(filter entity.DoctorFilter, limit int) ([]entity.Doctor, error) {
			return nil, nil
		},
	}

	u := newSearchUsecase(t, repo)

	result, err := u.Search(context.Background(), "Cardiologist", "Nowhere")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNoDoctorsFound)
}

func TestSearchCarriesEveryDoctorField(t *testing.T) {
	repo := &mockDoctorRepo{
		SearchFunc: func(filter entity.DoctorFilter, limit int) ([]entity.Doctor, error) {
			return []entity.Doctor{{
				ID:              7,
				Name:            "Dr. Asha Rao",
				Specialization:  "Dermatologist",
				ExperienceYears: 12,
				Location:        "Pune",
				HospitalName:    "Apollo Clinic, Pune",
				ConsultationFee: 1400,
				VisitingHours:   `{"Mon,Wed,Fri":"10:00-13:00"}`,
			}}, nil
		},
	}

	u := newSearchUsecase(t, repo)

	result, err := u.Search(context.Background(), "Dermatologist", "Pune")
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Total)

	doctor := result.Doctors[0]
	assert.Equal(t, 7, doctor.ID)
	assert.Equal(t, "Dr. Asha Rao", doctor.Name)
	assert.Equal(t, "Dermatologist", doctor.Specialization)
	assert.Equal(t, 12, doctor.ExperienceYears)
	assert.Equal(t, "Pune", doctor.Location)
	assert.Equal(t, "Apollo Clinic, Pune", doctor.HospitalName)
	assert.Equal(t, float64(1400), doctor.ConsultationFee)
	assert.Equal(t, map[string]string{"Mon,Wed,Fri": "10:00-13:00"}, doctor.VisitingHours)
}
