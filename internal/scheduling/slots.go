package scheduling

import (
	"fmt"
	"time"

	"ondoctor-server/internal/models"
)

const (
	slotsPerDay   = 16
	slotDuration  = 30 * time.Minute
	firstSlotHour = 9
	slotIDFormat  = "200601021504"
)

// Generator produces a day's bookable time slots for a doctor. It performs no
// I/O; repeated calls with the same inputs at the same wall-clock instant
// yield identical output. The clock is injected so tests can pin "now".
type Generator struct {
	now func() time.Time
}

// NewGenerator creates a slot generator. A nil now falls back to time.Now.
func NewGenerator(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

// AvailableTimeSlots returns the ordered 30-minute slots for doctorID on the
// given calendar date: start times 09:00 through 16:30, endTime 30 minutes
// later. Slots whose start time has already passed are excluded entirely, so
// a query for today returns fewer than 16 slots.
//
// Availability follows a deterministic pattern seeded from the doctor id's
// first byte plus the day of month, with modulus (day mod 3) + 2: a slot is
// available iff (index + seed) mod modulus != 0. This is a reproducible
// stand-in for real scheduling data, not a business rule.
func (g *Generator) AvailableTimeSlots(date time.Time, doctorID string) []models.TimeSlot {
	now := g.now()

	seed := date.Day()
	if doctorID != "" {
		seed += int(doctorID[0])
	}
	modulus := date.Day()%3 + 2

	slots := make([]models.TimeSlot, 0, slotsPerDay)
	for i := 0; i < slotsPerDay; i++ {
		hour := firstSlotHour + i/2
		minute := (i % 2) * 30
		start := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
		if start.Before(now) {
			continue
		}
		slots = append(slots, models.TimeSlot{
			ID:          fmt.Sprintf("slot-%s-%s", start.Format(slotIDFormat), doctorID),
			StartTime:   start,
			EndTime:     start.Add(slotDuration),
			IsAvailable: (i+seed)%modulus != 0,
		})
	}
	return slots
}
