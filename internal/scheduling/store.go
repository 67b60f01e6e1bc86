package scheduling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"ondoctor-server/internal/directory"
	"ondoctor-server/internal/models"
)

var (
	// ErrAppointmentNotFound is returned when an appointment id does not exist.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAppointmentElapsed is returned when cancelling an appointment whose
	// stored status is already Past. Past is a terminal state.
	ErrAppointmentElapsed = errors.New("appointment already took place")
)

// CreateAppointment is the draft submitted to book a consultation.
type CreateAppointment struct {
	PatientName     string
	PatientEmail    string
	Reason          string
	DateTime        time.Time
	AppointmentType models.AppointmentType
}

// Validate checks the draft before the store is touched. Malformed drafts
// never reach the appointment list.
func (d CreateAppointment) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.PatientName, validation.Required),
		validation.Field(&d.PatientEmail, validation.Required, is.Email),
		validation.Field(&d.Reason, validation.Required),
		validation.Field(&d.DateTime, validation.Required),
		validation.Field(&d.AppointmentType,
			validation.Required,
			validation.In(models.TypeVideo, models.TypePhone)),
	)
}

// Store exclusively owns the appointment records for the process lifetime.
// Create and Cancel serialize through a mutex so concurrent callers cannot
// corrupt the list; List and Get take the shared lock.
type Store struct {
	directory *directory.Registry
	now       func() time.Time
	videoBase string
	log       zerolog.Logger

	mu           sync.RWMutex
	appointments []models.Appointment
	byID         map[string]int
}

// NewStore creates an empty appointment store. videoBase is the meeting-link
// prefix assigned to video consultations. A nil now falls back to time.Now.
func NewStore(reg *directory.Registry, videoBase string, logger zerolog.Logger, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		directory: reg,
		now:       now,
		videoBase: strings.TrimRight(videoBase, "/"),
		log:       logger,
		byID:      make(map[string]int),
	}
}

// Create books an appointment with the given doctor. It resolves the doctor
// to a denormalized name/specialty snapshot, assigns a fresh id, and sets the
// initial status from the draft's dateTime: Past if it has already elapsed,
// Upcoming otherwise. Video consultations get a generated meeting link.
func (s *Store) Create(draft CreateAppointment, doctorID string) (models.Appointment, error) {
	if err := draft.Validate(); err != nil {
		return models.Appointment{}, err
	}
	doctor, err := s.directory.DoctorByID(doctorID)
	if err != nil {
		return models.Appointment{}, err
	}

	now := s.now()
	status := models.StatusUpcoming
	if draft.DateTime.Before(now) {
		status = models.StatusPast
	}

	apt := models.Appointment{
		ID:              uuid.New().String(),
		PatientName:     draft.PatientName,
		PatientEmail:    draft.PatientEmail,
		Doctor:          doctor.Ref(),
		DateTime:        draft.DateTime,
		Reason:          draft.Reason,
		Status:          status,
		AppointmentType: draft.AppointmentType,
		CreatedAt:       now,
	}
	if apt.AppointmentType == models.TypeVideo {
		apt.VideoLink = fmt.Sprintf("%s/consult/%s", s.videoBase, apt.ID)
	}

	s.mu.Lock()
	s.appointments = append(s.appointments, apt)
	s.byID[apt.ID] = len(s.appointments) - 1
	s.mu.Unlock()

	s.log.Info().
		Str("appointment_id", apt.ID).
		Str("doctor_id", doctorID).
		Time("date_time", apt.DateTime).
		Str("status", string(apt.Status)).
		Msg("appointment booked")
	return apt, nil
}

// Cancel moves an Upcoming appointment to Cancelled. Cancelling an already
// Cancelled appointment is a no-op that returns the record unchanged;
// cancelling a Past appointment fails with ErrAppointmentElapsed. An Upcoming
// appointment whose time has elapsed (displayed as Missed) can still be
// cancelled: the stored status is what counts.
func (s *Store) Cancel(id string) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[id]
	if !ok {
		return models.Appointment{}, errors.Wrapf(ErrAppointmentNotFound, "id %q", id)
	}
	apt := s.appointments[i]
	switch apt.Status {
	case models.StatusCancelled:
		return apt, nil
	case models.StatusPast:
		return models.Appointment{}, errors.Wrapf(ErrAppointmentElapsed, "id %q", id)
	}

	apt.Status = models.StatusCancelled
	s.appointments[i] = apt

	s.log.Info().Str("appointment_id", id).Msg("appointment cancelled")
	return apt, nil
}

// Get returns one appointment by id.
func (s *Store) Get(id string) (models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return models.Appointment{}, errors.Wrapf(ErrAppointmentNotFound, "id %q", id)
	}
	return s.appointments[i], nil
}

// List returns all appointments, most recent dateTime first.
func (s *Store) List() []models.Appointment {
	s.mu.RLock()
	out := make([]models.Appointment, len(s.appointments))
	copy(out, s.appointments)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].DateTime.After(out[j].DateTime) })
	return out
}

// Partition splits the appointments into the upcoming view and the history
// view, both most recent first. An Upcoming appointment whose time has
// elapsed without cancellation falls into history (rendered as Missed) while
// its stored status stays Upcoming.
func (s *Store) Partition() (upcoming, history []models.Appointment) {
	now := s.now()
	for _, a := range s.List() {
		if a.IsUpcoming(now) {
			upcoming = append(upcoming, a)
		} else {
			history = append(history, a)
		}
	}
	return upcoming, history
}

// Len reports the number of stored appointments.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.appointments)
}
