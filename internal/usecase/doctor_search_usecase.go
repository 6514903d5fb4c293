package usecase

import (
	"context"
	"errors"
	"strings"

	"health-appointment-service/internal/converter"
	"health-appointment-service/internal/delivery/dto"
	"health-appointment-service/internal/domain/entity"
	"health-appointment-service/internal/domain/repository"
	"health-appointment-service/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNoDoctorsFound = errors.New("no doctors found matching the criteria")

// searchResultLimit caps every search at the five most experienced matches.
const searchResultLimit = 5

type DoctorSearchUsecase interface {
	Search(ctx context.Context, specialization, location string) (*dto.DoctorListResponse, error)
}

type doctorSearchUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	doctorRepo  repository.DoctorRepository
	searchCache *service.SearchCache
}

func NewDoctorSearchUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	searchCache *service.SearchCache,
) DoctorSearchUsecase {
	return &doctorSearchUsecase{
		db:          db,
		log:         log,
		doctorRepo:  doctorRepo,
		searchCache: searchCache,
	}
}

// Search filters the directory by specialization and location (both
// optional, AND semantics) and returns at most five doctors ranked by
// experience. Zero matches is a distinct outcome, not an empty list.
func (u *doctorSearchUsecase) Search(ctx context.Context, specialization, location string) (*dto.DoctorListResponse, error) {
	filter := entity.DoctorFilter{
		Specialization: canonicalSpecialization(specialization),
		Location:       strings.TrimSpace(location),
	}

	if cached, ok := u.searchCache.Get(ctx, filter); ok {
		return &dto.DoctorListResponse{
			Doctors: converter.DoctorsToResponses(cached),
			Total:   len(cached),
		}, nil
	}

	doctors, err := u.doctorRepo.Search(u.db.WithContext(ctx), filter, searchResultLimit)
	if err != nil {
		u.log.Warnf("Failed to search doctors: %+v", err)
		return nil, err
	}
	if len(doctors) == 0 {
		return nil, ErrNoDoctorsFound
	}

	u.searchCache.Set(ctx, filter, doctors)

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

// canonicalSpecialization resolves the alias rule: any input mentioning
// "physician" searches for exactly "General Physician", discarding the
// user's literal wording.
func canonicalSpecialization(specialization string) string {
	term := strings.TrimSpace(specialization)
	if strings.Contains(strings.ToLower(term), "physician") {
		return "General Physician"
	}
	return term
}
