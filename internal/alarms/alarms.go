// Package alarms holds the medicine reminder store and the dispatcher that
// fires them. Delivery is simulated: a firing alarm produces a structured log
// line standing in for the SMS/chime a real system would send.
package alarms

import (
	"sort"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"ondoctor-server/internal/models"
)

// ErrAlarmNotFound is returned when an alarm id does not exist.
var ErrAlarmNotFound = errors.New("alarm not found")

const timeLayout = "15:04"

// Draft is the submitted alarm before an id is assigned.
type Draft struct {
	MedicineName string
	Time         string // "HH:MM", 24-hour
	SoundFile    string
	MobileNumber string
}

// Validate checks the draft. Time must parse as HH:MM.
func (d Draft) Validate() error {
	if err := validation.ValidateStruct(&d,
		validation.Field(&d.MedicineName, validation.Required),
		validation.Field(&d.Time, validation.Required),
	); err != nil {
		return err
	}
	if _, err := time.Parse(timeLayout, d.Time); err != nil {
		return errors.Errorf("time %q is not in HH:MM 24-hour format", d.Time)
	}
	return nil
}

// Store keeps the medicine alarms in memory for the process lifetime.
type Store struct {
	mu     sync.RWMutex
	alarms map[string]models.MedicineAlarm
}

// NewStore creates an empty alarm store.
func NewStore() *Store {
	return &Store{alarms: make(map[string]models.MedicineAlarm)}
}

// Add registers a new alarm and returns it with its assigned id.
func (s *Store) Add(d Draft) (models.MedicineAlarm, error) {
	if err := d.Validate(); err != nil {
		return models.MedicineAlarm{}, err
	}
	alarm := models.MedicineAlarm{
		ID:           uuid.New().String(),
		MedicineName: d.MedicineName,
		Time:         d.Time,
		SoundFile:    d.SoundFile,
		MobileNumber: d.MobileNumber,
	}
	s.mu.Lock()
	s.alarms[alarm.ID] = alarm
	s.mu.Unlock()
	return alarm, nil
}

// Update replaces the fields of an existing alarm.
func (s *Store) Update(id string, d Draft) (models.MedicineAlarm, error) {
	if err := d.Validate(); err != nil {
		return models.MedicineAlarm{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	alarm, ok := s.alarms[id]
	if !ok {
		return models.MedicineAlarm{}, errors.Wrapf(ErrAlarmNotFound, "id %q", id)
	}
	alarm.MedicineName = d.MedicineName
	alarm.Time = d.Time
	alarm.SoundFile = d.SoundFile
	alarm.MobileNumber = d.MobileNumber
	s.alarms[id] = alarm
	return alarm, nil
}

// Remove deletes an alarm.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.alarms[id]; !ok {
		return errors.Wrapf(ErrAlarmNotFound, "id %q", id)
	}
	delete(s.alarms, id)
	return nil
}

// List returns all alarms ordered by time of day, then medicine name.
func (s *Store) List() []models.MedicineAlarm {
	s.mu.RLock()
	out := make([]models.MedicineAlarm, 0, len(s.alarms))
	for _, a := range s.alarms {
		out = append(out, a)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].MedicineName < out[j].MedicineName
	})
	return out
}

// Due returns the alarms scheduled for the given instant's HH:MM.
func (s *Store) Due(at time.Time) []models.MedicineAlarm {
	hhmm := at.Format(timeLayout)
	var due []models.MedicineAlarm
	for _, a := range s.List() {
		if a.Time == hhmm {
			due = append(due, a)
		}
	}
	return due
}
