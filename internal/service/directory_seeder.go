package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"health-appointment-service/internal/domain/entity"
	"health-appointment-service/internal/domain/repository"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Catalogs the synthetic directory draws from.
var (
	Specializations = []string{
		"Cardiologist", "Neurologist", "Dermatologist", "Orthopedic Surgeon",
		"General Physician", "Pediatrician", "Oncologist", "Endocrinologist",
		"Gastroenterologist",
	}
	Locations = []string{
		"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata", "Hyderabad",
		"Pune", "Ahmedabad",
	}
	Hospitals = []string{
		"City Hospital", "Apollo Clinic", "Fortis Health", "Manipal Center",
		"Max Healthcare", "Global Medical", "Sunrise Institute",
	}
	VisitingDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
)

// DirectorySeeder populates an empty doctor directory with synthetic
// records. Randomness comes from the injected faker, so a fixed seed gives a
// reproducible directory.
type DirectorySeeder struct {
	log        *logrus.Logger
	faker      *gofakeit.Faker
	doctorRepo repository.DoctorRepository
}

func NewDirectorySeeder(log *logrus.Logger, faker *gofakeit.Faker, doctorRepo repository.DoctorRepository) *DirectorySeeder {
	return &DirectorySeeder{
		log:        log,
		faker:      faker,
		doctorRepo: doctorRepo,
	}
}

// Populate generates count doctors if the directory is empty, otherwise it
// is a no-op.
func (s *DirectorySeeder) Populate(db *gorm.DB, count int) error {
	existing, err := s.doctorRepo.Count(db)
	if err != nil {
		return fmt.Errorf("failed to count doctors: %w", err)
	}
	if existing > 0 {
		s.log.Info("Doctor directory already populated")
		return nil
	}

	s.log.Infof("Directory is empty, generating %d doctor records", count)

	doctors := make([]entity.Doctor, count)
	for i := range doctors {
		doctors[i] = s.generateDoctor()
	}

	if err := s.doctorRepo.CreateBatch(db, doctors); err != nil {
		return fmt.Errorf("failed to insert doctors: %w", err)
	}

	s.log.Infof("Successfully populated directory with %d doctors", count)
	return nil
}

func (s *DirectorySeeder) generateDoctor() entity.Doctor {
	location := s.faker.RandomString(Locations)

	return entity.Doctor{
		Name:            fmt.Sprintf("Dr. %s %s", s.faker.FirstName(), s.faker.LastName()),
		Specialization:  s.faker.RandomString(Specializations),
		ExperienceYears: s.faker.Number(5, 25),
		Location:        location,
		HospitalName:    fmt.Sprintf("%s, %s", s.faker.RandomString(Hospitals), location),
		ConsultationFee: float64(s.faker.Number(8, 25) * 100),
		VisitingHours:   s.generateVisitingHours(),
	}
}

// generateVisitingHours builds a single-entry mapping from an ordered
// weekday subset to an HH:00-HH:00 range, serialized as JSON text.
func (s *DirectorySeeder) generateVisitingHours() string {
	startHour := s.faker.Number(9, 14)
	endHour := startHour + s.faker.Number(2, 4)

	shuffled := make([]string, len(VisitingDays))
	copy(shuffled, VisitingDays)
	s.faker.ShuffleStrings(shuffled)
	picked := shuffled[:s.faker.Number(3, 5)]

	// Keep the chosen days in weekday order
	days := make([]string, 0, len(picked))
	for _, day := range VisitingDays {
		for _, p := range picked {
			if p == day {
				days = append(days, day)
				break
			}
		}
	}

	hours := map[string]string{
		strings.Join(days, ","): fmt.Sprintf("%02d:00-%02d:00", startHour, endHour),
	}
	encoded, _ := json.Marshal(hours)
	return string(encoded)
}
