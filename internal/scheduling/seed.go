package scheduling

import (
	"time"

	"ondoctor-server/internal/models"
)

// SeedDemoData loads a handful of sample appointments relative to the current
// day so the appointments screens have something to show on a fresh boot:
// one today, one tomorrow, one yesterday, one a few days out, and one
// cancelled a couple of days back. Intended for development installs only.
func (s *Store) SeedDemoData() {
	now := s.now()
	at := func(base time.Time, hour, minute int) time.Time {
		return time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, base.Location())
	}

	demo := []struct {
		draft    CreateAppointment
		doctorID string
		status   models.AppointmentStatus
	}{
		{
			draft: CreateAppointment{
				PatientName:     "John Doe",
				PatientEmail:    "john.doe@example.com",
				Reason:          "Chest pain follow-up",
				DateTime:        at(now, 10, 0),
				AppointmentType: models.TypeVideo,
			},
			doctorID: "doc1",
		},
		{
			draft: CreateAppointment{
				PatientName:     "Jane Roe",
				PatientEmail:    "jane.roe@example.com",
				Reason:          "Child regular checkup",
				DateTime:        at(now.AddDate(0, 0, 1), 14, 30),
				AppointmentType: models.TypeVideo,
			},
			doctorID: "doc2",
		},
		{
			draft: CreateAppointment{
				PatientName:     "Peter Pan",
				PatientEmail:    "peter.pan@example.com",
				Reason:          "Skin rash",
				DateTime:        at(now.AddDate(0, 0, -1), 11, 0),
				AppointmentType: models.TypeVideo,
			},
			doctorID: "doc3",
		},
		{
			draft: CreateAppointment{
				PatientName:     "Alice Wonderland",
				PatientEmail:    "alice.wonderland@example.com",
				Reason:          "Annual heart checkup",
				DateTime:        at(now.AddDate(0, 0, 3), 16, 0),
				AppointmentType: models.TypeVideo,
			},
			doctorID: "doc1",
		},
		{
			draft: CreateAppointment{
				PatientName:     "Richard Miles",
				PatientEmail:    "richard.miles@example.com",
				Reason:          "Routine check",
				DateTime:        at(now.AddDate(0, 0, -2), 9, 0),
				AppointmentType: models.TypeVideo,
			},
			doctorID: "doc2",
			status:   models.StatusCancelled,
		},
	}

	for _, d := range demo {
		apt, err := s.Create(d.draft, d.doctorID)
		if err != nil {
			s.log.Warn().Err(err).Str("patient", d.draft.PatientName).Msg("skipping demo appointment")
			continue
		}
		if d.status != "" {
			s.overrideStatus(apt.ID, d.status)
		}
	}
}

// overrideStatus force-sets a stored status. Seeding only; the public API
// goes through Cancel.
func (s *Store) overrideStatus(id string, status models.AppointmentStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.byID[id]; ok {
		s.appointments[i].Status = status
	}
}
