package alarms

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Dispatcher wakes once a minute and fires the alarms due at that minute.
// Firing an alarm logs the simulated delivery; real SMS delivery is out of
// scope for the platform.
type Dispatcher struct {
	store *Store
	log   zerolog.Logger
	tick  time.Duration
}

// NewDispatcher wires a dispatcher over the alarm store.
func NewDispatcher(store *Store, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{store: store, log: logger, tick: time.Minute}
}

// Run blocks, firing due alarms each minute until ctx is cancelled. Intended
// to be started on its own goroutine from main.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.log.Info().Msg("alarm dispatcher stopped")
			return
		case now := <-ticker.C:
			d.fire(now)
		}
	}
}

func (d *Dispatcher) fire(now time.Time) {
	for _, alarm := range d.store.Due(now) {
		evt := d.log.Info().
			Str("alarm_id", alarm.ID).
			Str("medicine", alarm.MedicineName).
			Str("time", alarm.Time)
		if alarm.MobileNumber != "" {
			evt = evt.Str("mobile", alarm.MobileNumber)
		}
		evt.Msg("medicine reminder due (simulated delivery)")
	}
}
