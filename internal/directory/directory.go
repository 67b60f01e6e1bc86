// Package directory holds the read-only reference catalog: doctors available
// for video consultations, surgical departments, popular surgeries and common
// health concerns. A real deployment would source this from an admin-managed
// database; here it is fixed demo data for the process lifetime.
package directory

import (
	"sort"

	"github.com/pkg/errors"

	"ondoctor-server/internal/models"
)

// ErrDoctorNotFound is returned when a doctor id does not match any known doctor.
var ErrDoctorNotFound = errors.New("doctor not found")

// Registry is the in-memory reference-data catalog. All data is immutable
// after construction, so lookups are safe for concurrent use.
type Registry struct {
	doctors     []models.Doctor
	doctorsByID map[string]models.Doctor

	departments    []models.Department
	surgeries      []models.Surgery
	healthConcerns []models.HealthConcern
}

// NewRegistry builds a registry with the platform's demo catalog.
func NewRegistry() *Registry {
	r := &Registry{
		doctors: []models.Doctor{
			{ID: "doc1", Name: "Dr. Alice Smith", Specialty: "Cardiology"},
			{ID: "doc2", Name: "Dr. Bob Johnson", Specialty: "Pediatrics"},
			{ID: "doc3", Name: "Dr. Carol Williams", Specialty: "Dermatology"},
		},
		departments: []models.Department{
			{Name: "General Surgery", AilmentsCount: 9},
			{Name: "Proctology", AilmentsCount: 5},
			{Name: "Ophthalmology", AilmentsCount: 4},
			{Name: "Urology", AilmentsCount: 12},
			{Name: "Cosmetic Surgery", AilmentsCount: 6},
			{Name: "Orthopedics", AilmentsCount: 8},
			{Name: "Advanced Cosmetic Procedures", AilmentsCount: 12},
		},
		surgeries: []models.Surgery{
			{Name: "Piles", Department: "Proctology"},
			{Name: "Hernia Treatment", Department: "General Surgery"},
			{Name: "Kidney Stone", Department: "Urology"},
			{Name: "Cataract", Department: "Ophthalmology"},
			{Name: "Circumcision", Department: "Urology"},
			{Name: "Lasik", Department: "Ophthalmology"},
			{Name: "Varicose Veins", Department: "General Surgery"},
			{Name: "Gallstone", Department: "General Surgery"},
			{Name: "Anal Fistula", Department: "Proctology"},
			{Name: "Gynaecomastia", Department: "Cosmetic Surgery"},
			{Name: "Anal Fissure", Department: "Proctology"},
			{Name: "Lipoma Removal", Department: "General Surgery"},
			{Name: "Sebaceous Cyst", Department: "General Surgery"},
			{Name: "Pilonidal Sinus", Department: "Proctology"},
			{Name: "Lump in Breast", Department: "General Surgery"},
			{Name: "TURP", Department: "Urology"},
			{Name: "Hydrocele", Department: "Urology"},
			{Name: "Knee Replacement", Department: "Orthopedics"},
			{Name: "Hair Transplant", Department: "Advanced Cosmetic Procedures"},
		},
		healthConcerns: []models.HealthConcern{
			{Name: "Fatigue & Weakness"},
			{Name: "Digestive Issues"},
			{Name: "Breathing Problems"},
			{Name: "Joint Pain"},
			{Name: "Skin Conditions"},
			{Name: "Headaches & Migraines"},
		},
	}

	r.doctorsByID = make(map[string]models.Doctor, len(r.doctors))
	for _, d := range r.doctors {
		r.doctorsByID[d.ID] = d
	}
	return r
}

// Doctors returns all doctors sorted by id.
func (r *Registry) Doctors() []models.Doctor {
	out := make([]models.Doctor, len(r.doctors))
	copy(out, r.doctors)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DoctorByID looks up a doctor by id.
func (r *Registry) DoctorByID(id string) (models.Doctor, error) {
	d, ok := r.doctorsByID[id]
	if !ok {
		return models.Doctor{}, errors.Wrapf(ErrDoctorNotFound, "id %q", id)
	}
	return d, nil
}

// Departments returns the department catalog.
func (r *Registry) Departments() []models.Department {
	out := make([]models.Department, len(r.departments))
	copy(out, r.departments)
	return out
}

// Surgeries returns the popular surgeries catalog.
func (r *Registry) Surgeries() []models.Surgery {
	out := make([]models.Surgery, len(r.surgeries))
	copy(out, r.surgeries)
	return out
}

// HealthConcerns returns the common health concerns list.
func (r *Registry) HealthConcerns() []models.HealthConcern {
	out := make([]models.HealthConcern, len(r.healthConcerns))
	copy(out, r.healthConcerns)
	return out
}
