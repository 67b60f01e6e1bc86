package models

import "time"

// Doctor represents immutable reference data for a consulting physician.
type Doctor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// DoctorRef is the denormalized doctor snapshot embedded in an appointment.
// The name and specialty are copied at booking time so the record stays
// historically accurate even if the directory entry changes later.
type DoctorRef struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// Ref returns the snapshot view of the doctor.
func (d Doctor) Ref() DoctorRef {
	return DoctorRef{Name: d.Name, Specialty: d.Specialty}
}

// TimeSlot is a fixed 30-minute bookable interval for one doctor on one day.
// Slots are generated fresh per query and never persisted.
type TimeSlot struct {
	ID          string    `json:"id"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	IsAvailable bool      `json:"isAvailable"`
}
